package gotreesitter

// stackEntry pairs a parser state with the tree node shifted or reduced
// into it — the same shape as the teacher's stackEntry (parser.go), kept
// as-is since spec §4.1 describes exactly this pair.
type stackEntry struct {
	state StateID
	node  *Node // nil only for the bottom sentinel entry
}

// parseStack is the driver's working memory: a flat, randomly-accessible
// sequence of (state, owned node) entries (§4.1 — "not a linked structure:
// error recovery needs random access from the top down"). Entry 0 always
// has state InitialStateID and a nil node.
type parseStack struct {
	entries []stackEntry
}

func newParseStack() *parseStack {
	return &parseStack{entries: []stackEntry{{state: InitialStateID}}}
}

// push takes ownership of a new share of node and appends (state, node).
func (s *parseStack) push(state StateID, node *Node) {
	s.entries = append(s.entries, stackEntry{state: state, node: retain(node)})
}

// topState returns the state at the top of the stack, or 0 if empty.
func (s *parseStack) topState() StateID {
	if len(s.entries) == 0 {
		return InitialStateID
	}
	return s.entries[len(s.entries)-1].state
}

// topNode returns the node at the top of the stack, or nil if empty.
func (s *parseStack) topNode() *Node {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].node
}

// size reports the number of entries above the bottom sentinel (i.e. the
// number of grammar-visible-or-extra nodes currently on the stack).
func (s *parseStack) size() int {
	if len(s.entries) == 0 {
		return 0
	}
	return len(s.entries) - 1
}

// popChildren removes the top n entries and returns their nodes in stack
// order (oldest first), WITHOUT releasing them: this is for reduce (§4.5),
// where ownership moves from the stack slots directly into a new parent's
// children slice rather than being discarded. A same-arena child needs no
// compensating retain to make this transfer safe — see retain in node.go.
func (s *parseStack) popChildren(n int) []*Node {
	if n > s.size() {
		n = s.size()
	}
	start := len(s.entries) - n
	children := make([]*Node, n)
	for i := 0; i < n; i++ {
		children[i] = s.entries[start+i].node
	}
	s.entries = s.entries[:start]
	return children
}

// popOne removes and returns the top entry without releasing its node: the
// caller is taking over its single share, typically to redistribute it (in
// pieces, or wholesale) back onto the stack. Returns (InitialStateID, nil)
// once only the sentinel remains.
func (s *parseStack) popOne() (StateID, *Node) {
	if len(s.entries) <= 1 {
		return InitialStateID, nil
	}
	last := len(s.entries) - 1
	e := s.entries[last]
	s.entries = s.entries[:last]
	return e.state, e.node
}

// shrink releases every entry above newSize, leaving exactly newSize
// entries above the bottom sentinel.
func (s *parseStack) shrink(newSize int) {
	keep := newSize + 1
	if keep >= len(s.entries) {
		return
	}
	if keep < 1 {
		keep = 1
	}
	for i := keep; i < len(s.entries); i++ {
		release(s.entries[i].node)
	}
	s.entries = s.entries[:keep]
}

// rightPosition is the running Length sum of TotalSize across every node on
// the stack — the text extent the stack has consumed so far.
func (s *parseStack) rightPosition() Length {
	total := ZeroLength
	for _, e := range s.entries {
		total = total.Add(TotalSize(e.node))
	}
	return total
}

// nodeFromTop returns the node offset entries below the top (0 is the top
// entry itself), or nil once offset reaches the bottom sentinel or beyond.
func (s *parseStack) nodeFromTop(offset int) *Node {
	i := len(s.entries) - 1 - offset
	if i < 1 {
		return nil
	}
	return s.entries[i].node
}

// stateFromTop returns the state offset entries below the top (0 is the top
// entry itself), or InitialStateID once offset reaches or passes the
// sentinel.
func (s *parseStack) stateFromTop(offset int) StateID {
	i := len(s.entries) - 1 - offset
	if i < 0 {
		return InitialStateID
	}
	return s.entries[i].state
}

// iterFromTop visits entries above the sentinel in reverse (top to bottom),
// stopping early if visit returns false. Index 0 is the topmost entry.
func (s *parseStack) iterFromTop(visit func(index int, state StateID, node *Node) bool) {
	for i := len(s.entries) - 1; i >= 1; i-- {
		e := s.entries[i]
		if !visit(len(s.entries)-1-i, e.state, e.node) {
			return
		}
	}
}

// clear releases every entry and resets to the empty stack (size 0).
func (s *parseStack) clear() {
	s.shrink(0)
}
