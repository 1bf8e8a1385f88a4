package gotreesitter

// ActionType distinguishes the six cases of Action. ActionError is
// deliberately the zero value: a sparse hand-built ParseTable (or one
// generated by zeroing a slice and filling in only the reachable entries)
// then defaults every un-populated (state, symbol) pair to an error rather
// than to a silently-wrong Shift-to-state-0.
type ActionType uint8

const (
	ActionError ActionType = iota
	ActionShift
	ActionShiftExtra
	ActionReduce
	ActionReduceExtra
	ActionAccept
)

// Action is a single parse action, the tagged variant §3 describes.
// Only the fields relevant to Type are meaningful.
type Action struct {
	Type       ActionType
	ToState    StateID // Shift
	Symbol     Symbol  // Reduce, ReduceExtra
	ChildCount int     // Reduce
}

// errorAction is the zero-value sentinel returned by ActionFor when a
// (state, symbol) pair is out of range entirely — treated identically to an
// explicit in-table ActionError.
var errorAction = Action{Type: ActionError}

// LexFn is the language's lex function (§6): given a view of the remaining
// input and a lex-state hint, it recognizes the next token. ok is false if
// no rule matches at the current position at all. A returned symbol of
// SymEOF (0) means the matched span should be skipped (ignored whitespace)
// rather than becoming a token — the Lexer adaptor folds consecutive skips
// into the padding of whatever real token follows. A LexFn never needs to
// report true end of input itself; the adaptor detects that directly and
// reports SymEOF as a real token only then, so reusing 0 for "skip" here is
// unambiguous.
type LexFn func(ctx LexContext, lexState uint16) (symbol Symbol, size Length, ok bool)

// LexContext is the read-only view of input a LexFn scans from. It is
// deliberately just the remaining bytes: the core never hands a language's
// lex function a stateful cursor object, since the lexer adaptor (lexer.go)
// owns position tracking and row/column bookkeeping itself.
type LexContext struct {
	Remaining []byte
}

// Language is the read-only table view supplied at Parser construction.
// It mirrors the six-field contract in spec §6 exactly: symbol metadata,
// a dense (state, symbol) -> Action table, a lex-state-per-parse-state
// table, and the language's lex function.
type Language struct {
	Name string

	SymbolCount  int
	SymbolNames  []string
	HiddenSymbol []bool // index by Symbol; true if that symbol is hidden

	// ParseTable[state*SymbolCount+symbol] -> Action, flattened for cache
	// locality per DESIGN NOTES §9 ("retain the state*symbol_count+symbol
	// layout"). Hidden behind ActionFor so callers never index it directly.
	ParseTable []Action

	// LexStates[state] -> the lex-state id the lexer adaptor should hint
	// to LexFn when lexing from that parse state.
	LexStates []uint16

	LexFn LexFn
}

// ActionFor looks up the parse action for (state, symbol). An out-of-range
// lookup is treated as ActionError, matching a hand-built table that simply
// omits an entry rather than populating it explicitly.
func (l *Language) ActionFor(state StateID, sym Symbol) Action {
	idx := int(state)*l.SymbolCount + int(sym)
	if idx < 0 || idx >= len(l.ParseTable) {
		return errorAction
	}
	return l.ParseTable[idx]
}

// LexStateFor returns the lex-state id declared for parse state s, or 0
// (the default lex state) if s has no table entry.
func (l *Language) LexStateFor(s StateID) uint16 {
	if int(s) < 0 || int(s) >= len(l.LexStates) {
		return 0
	}
	return l.LexStates[s]
}

// IsHidden reports whether sym is marked hidden in the language's metadata.
func (l *Language) IsHidden(sym Symbol) bool {
	if int(sym) < 0 || int(sym) >= len(l.HiddenSymbol) {
		return false
	}
	return l.HiddenSymbol[sym]
}

// SymbolName returns sym's declared name, or "" if unknown.
func (l *Language) SymbolName(sym Symbol) string {
	if int(sym) < 0 || int(sym) >= len(l.SymbolNames) {
		return ""
	}
	return l.SymbolNames[sym]
}
