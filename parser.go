package gotreesitter

import (
	"errors"
	"io"
)

// errMalformedTable is the one out-of-band error Parse can return: every
// other parse outcome, however broken the input, is data in the returned
// tree (§7).
var errMalformedTable = errors.New("gotreesitter: parse table entry has an unrecognized action tag")

// Parser drives the shift/reduce loop against a Language. It owns a
// persistent parse stack across calls, which is what lets Parse reuse a
// prefix of the previous parse via breakdownStack instead of starting over.
type Parser struct {
	lang  *Language
	stack *parseStack

	lexer *Lexer
	arena *nodeArena

	lookahead     *Node
	nextLookahead *Node
	tokenStart    Length

	debug debugTrace
}

// ParserOption configures a Parser at construction, in the usual Go
// functional-options shape for optional, rarely-changed settings.
type ParserOption func(*Parser)

// WithDebugWriter directs the trace channel (§6) to w.
func WithDebugWriter(w io.Writer) ParserOption {
	return func(p *Parser) { p.debug.w = w }
}

// WithDebugEnabled turns the trace channel on or off. It starts off.
func WithDebugEnabled(on bool) ParserOption {
	return func(p *Parser) { p.debug.on = on }
}

// NewParser builds a fresh parser over lang with an empty stack and the
// debug channel off, per §6's make(language) contract.
func NewParser(lang *Language, opts ...ParserOption) *Parser {
	p := &Parser{lang: lang, stack: newParseStack()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Destroy releases the parser's stack and any parked lookahead shares,
// per §6's destroy(parser) contract. The Parser must not be used afterward.
func (p *Parser) Destroy() {
	p.stack.clear()
	release(p.lookahead)
	release(p.nextLookahead)
	p.lookahead = nil
	p.nextLookahead = nil
}

// Parse re-parses source, reusing whatever prefix of the parser's own
// persisted stack survives edit (nil for a full reparse), and returns the
// resulting tree. Parse always returns a tree, even when recovery exhausts
// the input (§7) — a non-nil error means the table itself is malformed, not
// that the input failed to parse.
func (p *Parser) Parse(source []byte, edit *InputEdit) (*Tree, error) {
	restart := p.breakdownStack(edit)

	class := arenaClassFull
	if p.stack.size() > 0 {
		class = arenaClassIncremental
	}
	p.arena = acquireNodeArena(class)
	defer func() {
		p.arena.release()
		p.arena = nil
	}()

	p.lexer = newLexer(source)
	p.lexer.reset(restart)
	p.debug.resume(restart)

	release(p.lookahead)
	release(p.nextLookahead)
	p.lookahead = nil
	p.nextLookahead = nil

	for {
		state := p.stack.topState()
		if p.lookahead == nil {
			p.doLex(p.lang.LexStateFor(state))
		}
		p.debug.lookahead(p.lookahead.Symbol())

		action := p.lang.ActionFor(state, p.lookahead.Symbol())
		switch action.Type {
		case ActionShift:
			if p.lookahead.Symbol() == SymError {
				if !p.handleError() {
					root := p.getRoot()
					return newTree(root, source), nil
				}
				continue
			}
			p.shift(action.ToState)

		case ActionShiftExtra:
			p.shiftExtra()

		case ActionReduce:
			p.reduce(action.Symbol, action.ChildCount)

		case ActionReduceExtra:
			p.reduceExtra(action.Symbol)

		case ActionAccept:
			p.debug.accept()
			root := p.getRoot()
			return newTree(root, source), nil

		case ActionError:
			p.debug.error(p.lookahead.Symbol(), state)
			if !p.handleError() {
				root := p.getRoot()
				return newTree(root, source), nil
			}

		default:
			return nil, errMalformedTable
		}
	}
}

// doLex fills p.lookahead (and p.tokenStart) by lexing in the given
// lex-state, per the Lexer adaptor contract (§4.2). A LexFn that recognizes
// nothing at the current position is left alone: doLex reports a zero-width
// SYM_ERROR lookahead at that position without consuming anything. That
// symbol alone is enough to route the main loop into handleError, whose own
// re-lex/advance cycle (§4.6b) is what actually figures out how much input
// the resulting error span should cover.
func (p *Parser) doLex(state uint16) {
	before := p.lexer.position()
	sym, padding, size, ok := p.lexer.lex(p.lang, state)
	if ok {
		p.tokenStart = before.Add(padding)
		p.setLookahead(newLeafNode(p.arena, sym, padding, size, false))
		return
	}

	p.tokenStart = before.Add(padding)
	if p.lexer.atEOF() {
		p.setLookahead(newLeafNode(p.arena, SymEOF, padding, ZeroLength, false))
		return
	}
	p.setLookahead(newLeafNode(p.arena, SymError, padding, ZeroLength, false))
}

func (p *Parser) setLookahead(n *Node) {
	release(p.lookahead)
	p.lookahead = retain(n)
}

func (p *Parser) setNextLookahead(n *Node) {
	release(p.nextLookahead)
	p.nextLookahead = retain(n)
}

// shift pushes the current lookahead (§4.4). An extra token is invisible to
// the automaton: it is pushed at the current top state rather than the
// action's target state, so it never advances a parse decision.
func (p *Parser) shift(toState StateID) {
	tok := p.lookahead
	dest := toState
	if tok.IsExtra() {
		dest = p.stack.topState()
	}
	p.stack.push(dest, tok)
	p.debug.shift(tok.Symbol(), dest, tok.IsExtra())

	release(p.lookahead)
	p.lookahead = p.nextLookahead
	p.nextLookahead = nil
}

// shiftExtra marks the lookahead extra, then shifts it with a dummy target
// state: shift's own state-preservation rule does the rest (§4.4).
func (p *Parser) shiftExtra() {
	p.lookahead.markExtra()
	p.shift(InitialStateID)
}

// doReduce implements both reduce and reduceExtra (§4.5): it builds a new
// node of kind sym from the top childCount grammar-visible stack entries,
// absorbing any extras interleaved among them without counting them toward
// childCount, and parks the triggering lookahead so it is not re-lexed.
func (p *Parser) doReduce(sym Symbol, childCount int, extra bool) {
	p.setNextLookahead(p.lookahead)

	want := childCount
	i := 0
	for i < want {
		node := p.stack.nodeFromTop(i)
		if node == nil {
			break
		}
		if node.IsExtra() {
			want++
		}
		i++
	}

	children := p.stack.popChildren(i)
	parent := newParentNode(p.arena, sym, children, p.lang.IsHidden(sym))
	if extra {
		parent.markExtra()
	}
	p.debug.reduce(sym, childCount, extra)
	p.setLookahead(parent)
}

func (p *Parser) reduce(sym Symbol, childCount int) { p.doReduce(sym, childCount, false) }
func (p *Parser) reduceExtra(sym Symbol)            { p.doReduce(sym, 1, true) }

// breakdownStack rewinds the persisted stack to the longest usable prefix
// ending at or before edit's position, unwinding interior nodes one
// child-level at a time rather than discarding the whole stack (§4.3). A
// node whose right edge lands exactly on the edit's start is kept whole —
// none of its own bytes are touched — so an edit immediately after a token
// still reuses that token by identity instead of needlessly breaking it
// down. A nil edit means a full reparse: the entire stack is discarded.
func (p *Parser) breakdownStack(edit *InputEdit) Length {
	if edit == nil {
		p.stack.clear()
		return ZeroLength
	}
	target := edit.position()

	for {
		top := p.stack.topNode()
		if top == nil {
			break
		}
		pos := p.stack.rightPosition()
		if !target.Less(pos) && top.ChildCount() == 0 {
			break
		}

		poppedState, popped := p.stack.popOne()
		p.debug.pop(1, poppedState)
		children := popped.Children()
		kept := 0
		for _, child := range children {
			if !p.stack.rightPosition().Less(target) {
				break
			}
			toState := p.stack.topState()
			if act := p.lang.ActionFor(toState, child.Symbol()); act.Type == ActionShift {
				toState = act.ToState
			}
			p.stack.push(toState, child)
			p.debug.putBack(child.Symbol())
			kept++
		}
		for _, child := range children[kept:] {
			release(child)
		}
		releaseSelf(popped)
	}

	return p.stack.rightPosition()
}

// findRecoveryPoint scans the stack top to bottom for an entry whose state
// shifts on SYM_ERROR into a state that also accepts the current lookahead
// (§4.6 step 2a). depth counts entries from the top; depth equal to the
// stack's size means only the bottom sentinel qualifies.
func (p *Parser) findRecoveryPoint() (depth int, to StateID, ok bool) {
	if p.lookahead == nil {
		return 0, 0, false
	}
	for i := 0; i <= p.stack.size(); i++ {
		s := p.stack.stateFromTop(i)
		onError := p.lang.ActionFor(s, SymError)
		if onError.Type != ActionShift {
			continue
		}
		if p.lang.ActionFor(onError.ToState, p.lookahead.Symbol()).Type == ActionError {
			continue
		}
		return i, onError.ToState, true
	}
	return 0, 0, false
}

// handleError runs recovery (§4.6). It returns true once an SYM_ERROR node
// has been shifted at a state that accepts the parser's current lookahead,
// and false if recovery exhausted the input first (the caller must then
// finalize with whatever the stack holds).
//
// errNode, not p.lookahead, is the node that ends up on the stack: the
// lookahead register keeps getting reassigned to freshly relexed candidates
// while the outer loop searches for a recovery point, but errNode is the
// original trigger, widened at the end to span everything that was skipped
// and retagged SYM_ERROR regardless of what it started out as — the trigger
// can just as easily be an ordinary token the table has no entry for (an
// ActionError case) as an unrecognized character, and either way the node
// that survives onto the stack must read back as an error span, not as
// whatever symbol happened to trigger recovery. A trigger lookahead of
// SYM_ERROR itself (doLex found an unrecognized character) never validates
// against anything on the first scan — checking "does a recovery state
// accept SYM_ERROR" is never meaningful — so that case always falls through
// to relexing immediately, exactly as if the first scan had already failed.
func (p *Parser) handleError() bool {
	errNode := retain(p.lookahead)
	defer release(errNode)

	for {
		if depth, to, ok := p.findRecoveryPoint(); ok {
			p.debug.recover(depth, to)
			p.stack.shrink(p.stack.size() - depth)
			errNode.symbol = SymError
			errNode.padding = ZeroLength
			errNode.size = p.tokenStart.Sub(p.stack.rightPosition())
			// The error span already runs up to tokenStart, so the
			// lookahead's own padding would count those bytes twice.
			p.lookahead.padding = ZeroLength
			p.stack.push(to, errNode)
			return true
		}

		p.debug.lexAgain()
		release(p.lookahead)
		p.lookahead = nil

		before := p.lexer.position()
		sym, padding, size, matched := p.lexer.lex(p.lang, LexStateError)
		if matched {
			p.tokenStart = before.Add(padding)
			p.lookahead = retain(newLeafNode(p.arena, sym, padding, size, false))
			continue
		}

		if !p.lexer.advance() {
			errNode.symbol = SymError
			errNode.padding = ZeroLength
			errNode.size = p.lexer.position().Sub(p.stack.rightPosition())
			p.stack.push(InitialStateID, errNode)
			p.debug.failToRecover()
			return false
		}
	}
}

// getRoot finalizes the parse (§4.7): it collapses whatever remains on the
// stack into a single SYM_DOCUMENT node and leaves it as the stack's sole
// entry, so the next incremental call's breakdownStack has something to
// rewind from.
//
// Whatever is still parked in the lookahead register at this point is the
// EOF token: doLex folds any whitespace between the last real token and end
// of input into its padding (lexer.go's skip-span handling), and Accept
// fires without ever shifting that token onto the stack. Carry its padding
// onto DOCUMENT's own padding field before discarding the token itself, or
// those trailing bytes — the ones the lexer actually advanced past — never
// show up in any leaf's padding/size and TotalSize(root) undercounts the
// input. DOCUMENT has no following sibling, so there is no ambiguity about
// whose leading gap this trailing span could otherwise be mistaken for.
func (p *Parser) getRoot() *Node {
	if p.stack.size() == 0 {
		p.stack.push(InitialStateID, newLeafNode(p.arena, SymError, ZeroLength, ZeroLength, false))
	}
	trailing := ZeroLength
	if p.lookahead != nil {
		trailing = p.lookahead.Padding()
	}
	p.doReduce(SymDocument, p.stack.size(), false)
	p.lookahead.options = 0
	p.lookahead.padding = trailing
	root := p.lookahead
	p.shift(InitialStateID)
	return root
}
