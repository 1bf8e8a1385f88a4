package gotreesitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func symbols(n *Node) []Symbol {
	syms := make([]Symbol, n.ChildCount())
	for i := range syms {
		syms[i] = n.Child(i).Symbol()
	}
	return syms
}

func equalSymbols(t *testing.T, got, want []Symbol) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("child symbols mismatch (-want +got):\n%s", diff)
	}
}

// TestParseWellFormedInput covers the "a b c" happy path: no extras, no
// errors, and the stack finalizes to a single DOCUMENT entry ready for the
// next incremental call.
func TestParseWellFormedInput(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte("abc"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	if doc.Symbol() != SymDocument {
		t.Fatalf("root symbol = %v, want SymDocument", doc.Symbol())
	}
	if doc.ChildCount() != 1 || doc.Child(0).Symbol() != symS {
		t.Fatalf("DOCUMENT children = %v, want [S]", symbols(doc))
	}
	s := doc.Child(0)
	equalSymbols(t, symbols(s), []Symbol{symA, symB, symC})
	for i, want := range []uint32{1, 1, 1} {
		if got := s.Child(i).Size().Bytes; got != want {
			t.Errorf("child %d size = %d, want %d", i, got, want)
		}
	}
	if TotalSize(doc).Bytes != 3 {
		t.Errorf("TotalSize(doc) = %d, want 3", TotalSize(doc).Bytes)
	}

	if p.stack.size() != 1 {
		t.Fatalf("parser stack size after Parse = %d, want 1", p.stack.size())
	}
	if p.stack.topNode() != doc {
		t.Fatalf("stack's sole entry is not the tree's own root by identity")
	}
}

// TestParseRecoversSingleBadCharacter covers spec scenario 2: "axc" should
// resynchronize on 'c' and wrap the unrecognized byte in a one-byte ERROR
// node, producing DOCUMENT[S[a, ERROR, c]].
func TestParseRecoversSingleBadCharacter(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte("axc"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	s := doc.Child(0)
	equalSymbols(t, symbols(s), []Symbol{symA, SymError, symC})

	errNode := s.Child(1)
	if got := errNode.Size().Bytes; got != 1 {
		t.Errorf("ERROR size = %d, want 1", got)
	}
	if TotalSize(doc).Bytes != 3 {
		t.Errorf("TotalSize(doc) = %d, want 3", TotalSize(doc).Bytes)
	}
}

// TestParseUnrecoverableInputStillCoversAllBytes covers spec scenario 3: "ab"
// has no 'c' for recovery to resynchronize on, so the parser gives up at end
// of input. The finalized tree still accounts for every byte of the input,
// split between whatever was shifted and a trailing zero-width ERROR.
func TestParseUnrecoverableInputStillCoversAllBytes(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte("ab"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	if doc.Symbol() != SymDocument {
		t.Fatalf("root symbol = %v, want SymDocument", doc.Symbol())
	}
	equalSymbols(t, symbols(doc), []Symbol{symA, symB, SymError})
	if TotalSize(doc).Bytes != 2 {
		t.Errorf("TotalSize(doc) = %d, want 2 (every input byte accounted for)", TotalSize(doc).Bytes)
	}
	last := doc.Child(doc.ChildCount() - 1)
	if last.Symbol() != SymError || last.Size().Bytes != 0 {
		t.Errorf("trailing node = %v size %d, want zero-width ERROR", last.Symbol(), last.Size().Bytes)
	}
}

// TestParseEmptyInput covers spec scenario where there is nothing to parse
// at all: the result is DOCUMENT wrapping a single zero-width ERROR.
func TestParseEmptyInput(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte(""), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	if doc.ChildCount() != 1 {
		t.Fatalf("DOCUMENT children = %v, want exactly one ERROR", symbols(doc))
	}
	errNode := doc.Child(0)
	if errNode.Symbol() != SymError || errNode.Size().Bytes != 0 {
		t.Fatalf("child = symbol %v size %d, want zero-width ERROR", errNode.Symbol(), errNode.Size().Bytes)
	}
}

// TestParseExtraIsTransparentButPreserved covers the extras mechanism: a
// "#comment" token shifted via ActionShiftExtra must not influence which
// parse decisions get made (the surrounding a/b/c still reduce to S exactly
// as if the comment weren't there), yet it still shows up, flagged extra,
// among S's children.
func TestParseExtraIsTransparentButPreserved(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte("a#note\nbc"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	s := doc.Child(0)
	equalSymbols(t, symbols(s), []Symbol{symA, symComment, symB, symC})

	comment := s.Child(1)
	if !comment.IsExtra() {
		t.Errorf("comment node should be flagged extra")
	}
	if got := comment.Size().Bytes; got != uint32(len("#note")) {
		t.Errorf("comment size = %d, want %d", got, len("#note"))
	}
	for _, i := range []int{0, 2, 3} {
		if s.Child(i).IsExtra() {
			t.Errorf("child %d unexpectedly flagged extra", i)
		}
	}
}

// TestParseIsDeterministic re-parses identical input from a fresh parser
// twice and requires identical tree shapes (§8's determinism property): the
// driver has no hidden state that would make two parses of the same bytes
// diverge.
func TestParseIsDeterministic(t *testing.T) {
	run := func() []Symbol {
		p := NewParser(buildLetterLanguage())
		defer p.Destroy()
		tree, err := p.Parse([]byte("axc"), nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		defer tree.Close()
		return symbols(tree.RootNode().Child(0))
	}
	first, second := run(), run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("two parses of the same input diverged (-first +second):\n%s", diff)
	}
}

// TestIncrementalReuseKeepsUneditedSubtreeByIdentity covers the incremental
// restart path (§4.3): editing the input strictly after "a" must let the
// second Parse call reuse the very same "a" Node the first call built,
// rather than allocating a fresh one.
func TestIncrementalReuseKeepsUneditedSubtreeByIdentity(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree1, err := p.Parse([]byte("abc"), nil)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	original := tree1.RootNode().Child(0).Child(0) // DOCUMENT -> S -> a
	if original.Symbol() != symA {
		t.Fatalf("expected to capture the 'a' leaf, got symbol %v", original.Symbol())
	}

	edit := InputEdit{
		StartByte:  1,
		OldEndByte: 2,
		NewEndByte: 2,
		StartPoint: Point{Column: 1},
	}
	tree1.Edit(edit)

	tree2, err := p.Parse([]byte("aXc"), &edit)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	defer tree2.Close()

	reused := tree2.RootNode().Child(0).Child(0)
	if reused != original {
		t.Fatalf("breakdownStack did not reuse the 'a' leaf by identity")
	}
}

// TestParseAccountsForTrailingPadding covers §8 Property 1 (text
// faithfulness): whitespace between the last real token and end of input
// must still show up somewhere in the tree, even though Accept fires
// without ever shifting the EOF token that carries it.
func TestParseAccountsForTrailingPadding(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()

	tree, err := p.Parse([]byte("abc  "), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	doc := tree.RootNode()
	if doc.ChildCount() != 1 || doc.Child(0).Symbol() != symS {
		t.Fatalf("DOCUMENT children = %v, want [S]", symbols(doc))
	}
	if got := doc.Padding().Bytes; got != 2 {
		t.Errorf("DOCUMENT padding = %d, want 2 (trailing spaces before EOF)", got)
	}
	if got := TotalSize(doc).Bytes; got != 5 {
		t.Errorf("TotalSize(doc) = %d, want 5 (every byte the lexer advanced)", got)
	}
}

// TestNewParserStartsWithDebugOff confirms WithDebugEnabled's documented
// default.
func TestNewParserStartsWithDebugOff(t *testing.T) {
	p := NewParser(buildLetterLanguage())
	defer p.Destroy()
	if p.debug.enabled() {
		t.Fatalf("debug trace should start disabled")
	}
}
