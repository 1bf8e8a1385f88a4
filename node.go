package gotreesitter

// Node is an immutable syntax tree node, shared by refcount once built (see
// arena.go — a node's share is really a share of the arena slab it was
// allocated from). A leaf's children slice is empty; total text extent is
// never stored directly, only derived via TotalSize.
type Node struct {
	symbol   Symbol
	children []*Node
	padding  Length // whitespace/ignored text preceding this node's first byte
	size     Length // this node's own text, excluding padding
	isExtra  bool   // floats outside the normal derivation (e.g. a comment)
	isHidden bool   // spliced away when the parent's children are exposed
	options  uint32 // root-only bag, cleared by getRoot's finalization step

	arena *nodeArena // owning slab; retain/release operate at this granularity
}

// optionRootFinalized is the one bit defined for the options bag. Nothing in
// this package sets or reads it; getRoot's finalization clears the whole
// options field.
const optionRootFinalized uint32 = 1 << 0

// Symbol returns the node's grammar symbol.
func (n *Node) Symbol() Symbol { return n.symbol }

// IsExtra reports whether this token floats outside the normal derivation.
func (n *Node) IsExtra() bool { return n.isExtra }

// IsHidden reports whether this node's symbol should be spliced away when
// its parent's children are exposed.
func (n *Node) IsHidden() bool { return n.isHidden }

// Padding returns the Length of text preceding this node's first byte.
func (n *Node) Padding() Length { return n.padding }

// Size returns the Length of this node's own text, excluding padding.
func (n *Node) Size() Length { return n.size }

// ChildCount returns the number of children (zero for a leaf token).
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the node's children in left-to-right order.
func (n *Node) Children() []*Node { return n.children }

// markExtra flags a freshly lexed token as floating outside the derivation.
// It is the one controlled mutation in this file: shift_extra (§4.4) decides
// a token is extra only after it has already been lexed, and does so before
// the token becomes visible to anything but the lookahead register — once
// shifted onto the stack the node is immutable like any other.
func (n *Node) markExtra() { n.isExtra = true }

// TotalSize is the authoritative text extent of n: its own padding and size
// plus the total size of every child. total_size(n) = n.padding + n.size +
// Σ total_size(child_i), per spec §3.
func TotalSize(n *Node) Length {
	if n == nil {
		return ZeroLength
	}
	total := n.padding.Add(n.size)
	for _, c := range n.children {
		total = total.Add(TotalSize(c))
	}
	return total
}

// newLeafNode builds a terminal token node from an arena.
func newLeafNode(a *nodeArena, sym Symbol, padding, size Length, extra bool) *Node {
	n := a.allocNode()
	n.symbol = sym
	n.padding = padding
	n.size = size
	n.isExtra = extra
	n.arena = a
	return n
}

// newParentNode builds a nonterminal node from exactly the children slice
// given (extras included, per §4.5 step 3). The parent's own size is the
// span of its children; it carries no padding of its own — any padding
// belongs to its first child. The one exception is getRoot's DOCUMENT wrap,
// which has no following sibling to hand trailing whitespace off to and so
// sets its own padding after the fact to the pending EOF token's.
func newParentNode(a *nodeArena, sym Symbol, children []*Node, hidden bool) *Node {
	n := a.allocNode()
	n.symbol = sym
	n.children = children
	n.isHidden = hidden
	n.arena = a
	return n
}

// retain takes a share in n on behalf of a new owner (a stack slot, a
// lookahead register, or a caller holding onto a returned tree). Nil is a
// no-op so callers never need a nil check before retaining.
//
// Sharing happens at arena granularity (arena.go), so a child built from the
// same arena as its parent needs no share of its own: the parent's single
// share already keeps the whole same-arena subtree alive. Only a child
// pulled in from an older arena — the incremental-reuse case, where a
// subtree survives across edits untouched — needs its own recursive share.
func retain(n *Node) *Node {
	if n == nil {
		return nil
	}
	n.arena.retain()
	for _, c := range n.children {
		if c.arena != n.arena {
			retain(c)
		}
	}
	return n
}

// release gives up a share in n, the exact inverse walk retain performs.
// Nil is a no-op.
func release(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		if c.arena != n.arena {
			release(c)
		}
	}
	n.arena.release()
}

// releaseSelf gives up n's own share without walking into its children. It
// is for callers that have already settled each child's fate individually
// (breakdownStack, redistributing a broken-down node's children one at a
// time) and would otherwise have release's recursive descent double-handle
// children that were just re-retained elsewhere.
func releaseSelf(n *Node) {
	if n != nil {
		n.arena.release()
	}
}
