package gotreesitter

// Symbol is a grammar symbol id — a small nonnegative integer. Every id
// other than the two reserved below is declared by the language table.
type Symbol uint16

// StateID is a parser state index. State 0 is both the initial state and
// the sentinel used when no parse decision is needed (e.g. pushing the
// finalized root).
type StateID uint16

// FieldID is a named-field index, reserved for collaborators that attach
// field names to children; the driver itself never inspects it.
type FieldID uint16

// Symbol 0 is always EOF (the lexer adaptor returns it directly, never via
// LexFn) and symbol 1 is always SYM_ERROR, mirroring where real generated
// tree-sitter tables put their own built-ins — both need a small id because
// action_for(state, SYM_ERROR) is a genuine dense-table lookup (recovery
// points are ordinary Shift entries in that column), not a sentinel that
// never appears in the table. A language's declared symbols start at 3;
// SymDocument occupies 2 and never appears in a LexFn's output or the
// table's input columns, only as the symbol reduce builds at getRoot.
const (
	// SymEOF is the reserved symbol the lexer adaptor reports at end of
	// input.
	SymEOF Symbol = 0
	// SymError is the reserved symbol for the built-in error token.
	SymError Symbol = 1
	// SymDocument is the reserved symbol for the built-in root nonterminal
	// that getRoot wraps the whole parse in.
	SymDocument Symbol = 2
)

// LexStateError is the reserved lex-state id that recognizes every token
// kind regardless of the current parse state. handleError re-lexes in this
// state while searching for a point to resynchronize on.
const LexStateError uint16 = 0xFFFF

// InitialStateID is the parser's start state and the sentinel state pushed
// under the very first stack entry.
const InitialStateID StateID = 0
