package gotreesitter

import (
	"sync"
	"sync/atomic"
)

// Chunk sizing, in nodes rather than bytes: the incremental class budgets
// for a restart that reuses most of the prior tree and only builds a
// handful of new nodes; the full class budgets for a parse built entirely
// from scratch. A class is never a single fixed-size slab — allocNode grows
// it by appending further chunks once the current one fills, so an
// error-recovery-heavy input that needs far more nodes than the common case
// still draws every node from arena-owned memory instead of spilling to
// individually heap-allocated ones the arena can never reclaim as a unit.
const (
	incrementalChunkNodes = 256
	fullChunkNodes        = 4096
	minChunkNodes         = 64
)

type arenaClass uint8

const (
	arenaClassIncremental arenaClass = iota
	arenaClassFull
)

// nodeArena is a chained slab allocator for Node structs: a growing list of
// fixed-size chunks, handed out by index. Every Node it hands out carries a
// pointer back to the arena; retaining or releasing a node really retains
// or releases the whole arena, which is the sharing granularity spec §5
// describes ("the refcount operations themselves are assumed atomic by the
// node collaborator").
type nodeArena struct {
	class      arenaClass
	chunkNodes int
	chunks     [][]Node
	cur        int // next free index in chunks[len(chunks)-1]
	refs       atomic.Int32
}

var (
	incrementalArenaPool = sync.Pool{
		New: func() any { return newNodeArena(arenaClassIncremental, incrementalChunkNodes) },
	}
	fullArenaPool = sync.Pool{
		New: func() any { return newNodeArena(arenaClassFull, fullChunkNodes) },
	}
)

func newNodeArena(class arenaClass, chunkNodes int) *nodeArena {
	if chunkNodes < minChunkNodes {
		chunkNodes = minChunkNodes
	}
	return &nodeArena{
		class:      class,
		chunkNodes: chunkNodes,
		chunks:     [][]Node{make([]Node, chunkNodes)},
	}
}

func acquireNodeArena(class arenaClass) *nodeArena {
	var a *nodeArena
	switch class {
	case arenaClassIncremental:
		a = incrementalArenaPool.Get().(*nodeArena)
	default:
		a = fullArenaPool.Get().(*nodeArena)
	}
	a.refs.Store(1)
	return a
}

func (a *nodeArena) retain() {
	if a == nil {
		return
	}
	a.refs.Add(1)
}

func (a *nodeArena) release() {
	if a == nil {
		return
	}
	if a.refs.Add(-1) != 0 {
		return
	}
	a.reset()
	switch a.class {
	case arenaClassIncremental:
		incrementalArenaPool.Put(a)
	default:
		fullArenaPool.Put(a)
	}
}

// reset zeroes the live nodes and rewinds to the first chunk, dropping any
// growth chunks a one-off oversized parse appended — otherwise a single
// pathological parse would permanently inflate the slab every future arena
// drawn from this class's pool carries.
func (a *nodeArena) reset() {
	if len(a.chunks) > 1 {
		a.chunks = a.chunks[:1]
	}
	first := a.chunks[0]
	for i := range first {
		first[i] = Node{}
	}
	a.cur = 0
}

// allocNode hands out the next free slot, growing the arena by one more
// chunk of the same size once the current chunk fills.
func (a *nodeArena) allocNode() *Node {
	if a == nil {
		return &Node{}
	}
	last := a.chunks[len(a.chunks)-1]
	if a.cur >= len(last) {
		a.chunks = append(a.chunks, make([]Node, a.chunkNodes))
		last = a.chunks[len(a.chunks)-1]
		a.cur = 0
	}
	n := &last[a.cur]
	a.cur++
	*n = Node{}
	return n
}
