package gotreesitter

// InputEdit describes a single text change, in both byte and row/column
// coordinates, so a caller can report an edit without the driver ever
// needing to re-derive Points by scanning text (§3, §4.3). StartByte and
// StartPoint are the only fields breakdownStack reads (through position),
// and its comparisons use only the byte count: everything else exists so a
// caller (and Tree.Edit, for bookkeeping) has a complete record of what
// changed.
type InputEdit struct {
	StartByte  uint32
	OldEndByte uint32
	NewEndByte uint32

	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// position is the Length breakdownStack compares against stack entries'
// running rightPosition: the point in the (old) text at which the edit
// starts, and therefore the earliest position any reused node may cover.
func (e InputEdit) position() Length {
	return Length{Bytes: e.StartByte, Point: e.StartPoint}
}

// Tree is the result of a parse: an immutable root node plus the source text
// it was built from and the edits applied since. A Tree is a borrowed
// reference — the parser that produced it keeps its own stack alive across
// edits — but it holds its own share of root, so it stays valid even after
// the parser that produced it parses again.
type Tree struct {
	root   *Node
	source []byte
	edits  []InputEdit
}

// newTree wraps root (taking a share of it) together with the source text
// it was parsed from.
func newTree(root *Node, source []byte) *Tree {
	return &Tree{root: retain(root), source: source}
}

// RootNode returns the tree's root node.
func (t *Tree) RootNode() *Node { return t.root }

// Source returns the exact bytes this tree was parsed from.
func (t *Tree) Source() []byte { return t.source }

// Edits returns the edits recorded against this tree via Edit, oldest first.
func (t *Tree) Edits() []InputEdit { return t.edits }

// Edit records that edit was applied to the text this tree describes. It is
// pure bookkeeping: because every node's padding and size are relative to
// its left sibling rather than absolute offsets into the source, an edit
// anywhere in the text leaves every other node's Lengths correct as they
// stand, so there is nothing here to walk or rewrite. The authoritative
// incremental restart happens in Parser.Parse, which takes the InputEdit
// directly and drives breakdownStack; Edit only keeps the tree's own record
// in sync for callers that inspect history later.
func (t *Tree) Edit(e InputEdit) {
	t.edits = append(t.edits, e)
}

// Close gives up this tree's share of its root node. A Tree that is never
// closed is still reclaimed normally by the garbage collector; Close only
// lets the underlying arena slabs return to their pool sooner.
func (t *Tree) Close() {
	release(t.root)
	t.root = nil
}
