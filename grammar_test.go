package gotreesitter

// buildLetterLanguage constructs a hand-built grammar for the single
// production this package's tests trace by hand:
//
//	S -> a b c
//	S -> a ERROR c
//
// the second alternative is not a real production — it is what the parser
// falls back to when a "b" position can't be lexed, resynchronizing on the
// next "c" it finds. Symbols:
//
//	0: EOF (reserved)
//	1: ERROR (reserved)
//	2: DOCUMENT (reserved, the root symbol getRoot wraps everything in)
//	3: a
//	4: b
//	5: c
//	6: S
//
// States:
//
//	0 (start):        a -> shift 1; S -> goto 6
//	1 (saw a):        b -> shift 2; ERROR -> shift 4 (recovery point)
//	2 (saw a b):      c -> shift 3
//	3 (saw a b c):    EOF -> reduce S (3 children)
//	4 (saw a ERROR):  c -> shift 5
//	5 (saw a ERROR c): EOF -> reduce S (3 children)
//	6 (saw S):        EOF -> accept
//
// Lexing is state-independent: every parse state uses lex state 0, which
// recognizes single-character "a", "b", "c" tokens, a "#"-to-end-of-line
// comment (symbol 7, declared extra in every state so it can appear between
// any two tokens without disturbing the grammar), and treats runs of space,
// tab, and newline as ignorable padding.
const (
	symA       Symbol = 3
	symB       Symbol = 4
	symC       Symbol = 5
	symS       Symbol = 6
	symComment Symbol = 7
)

const letterSymbolCount = 8

func letterLexFn(ctx LexContext, lexState uint16) (Symbol, Length, bool) {
	if len(ctx.Remaining) == 0 {
		return 0, ZeroLength, false
	}
	switch ctx.Remaining[0] {
	case ' ', '\t', '\n':
		return SymEOF, lengthOfText(ctx.Remaining[:1]), true
	case 'a':
		return symA, lengthOfText(ctx.Remaining[:1]), true
	case 'b':
		return symB, lengthOfText(ctx.Remaining[:1]), true
	case 'c':
		return symC, lengthOfText(ctx.Remaining[:1]), true
	case '#':
		end := 1
		for end < len(ctx.Remaining) && ctx.Remaining[end] != '\n' {
			end++
		}
		return symComment, lengthOfText(ctx.Remaining[:end]), true
	default:
		return 0, ZeroLength, false
	}
}

func buildLetterLanguage() *Language {
	const stateCount = 7
	table := make([]Action, stateCount*letterSymbolCount)
	set := func(state StateID, sym Symbol, a Action) {
		table[int(state)*letterSymbolCount+int(sym)] = a
	}

	// symComment floats outside every production: every state shifts it as
	// extra rather than treating it as a grammar decision.
	for s := StateID(0); s < stateCount; s++ {
		set(s, symComment, Action{Type: ActionShiftExtra})
	}

	set(0, symA, Action{Type: ActionShift, ToState: 1})
	set(0, symS, Action{Type: ActionShift, ToState: 6}) // GOTO

	set(1, symB, Action{Type: ActionShift, ToState: 2})
	set(1, SymError, Action{Type: ActionShift, ToState: 4})

	set(2, symC, Action{Type: ActionShift, ToState: 3})

	set(3, SymEOF, Action{Type: ActionReduce, Symbol: symS, ChildCount: 3})

	set(4, symC, Action{Type: ActionShift, ToState: 5})

	set(5, SymEOF, Action{Type: ActionReduce, Symbol: symS, ChildCount: 3})

	set(6, SymEOF, Action{Type: ActionAccept})

	lexStates := make([]uint16, stateCount)

	return &Language{
		Name:        "letters",
		SymbolCount: letterSymbolCount,
		SymbolNames: []string{"EOF", "ERROR", "DOCUMENT", "a", "b", "c", "S", "comment"},
		HiddenSymbol: []bool{
			false, false, false, false, false, false, false, false,
		},
		ParseTable: table,
		LexStates:  lexStates,
		LexFn:      letterLexFn,
	}
}
