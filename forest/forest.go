package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/modal"
)

// NodeID indexes a node within one forest.
type NodeID int32

// NullNode is the invalid node index.
const NullNode NodeID = -1

// DefaultNodesMax is the default arena capacity of a forest.
const DefaultNodesMax = 512

// ErrArenaFull is returned by every append operation once the arena
// capacity is exhausted. The capacity is an exclusive upper bound.
var ErrArenaFull = errors.New("not enough free nodes in arena")

// Forest is a bounded, append-only arena of tree nodes. Trees are stored as
// contiguous runs, each starting at a root node whose parent index is its
// own index. For every non-root node, the parent index is strictly smaller
// than the node's index and lies within the same run.
type Forest struct {
	symbols []modal.Symbol
	parents []NodeID
	max     int
}

// New creates an empty forest with capacity for maxNodes nodes.
func New(maxNodes int) *Forest {
	return &Forest{
		symbols: make([]modal.Symbol, 0, maxNodes),
		parents: make([]NodeID, 0, maxNodes),
		max:     maxNodes,
	}
}

// NodeCount returns the number of nodes appended so far.
func (f *Forest) NodeCount() int {
	return len(f.symbols)
}

// Reset empties the forest. Node storage is retained for reuse.
func (f *Forest) Reset() {
	f.symbols = f.symbols[:0]
	f.parents = f.parents[:0]
}

// Symbol returns the symbol stored at a node.
func (f *Forest) Symbol(id NodeID) modal.Symbol {
	return f.symbols[id]
}

// Parent returns the parent index of a node. Roots are their own parent.
func (f *Forest) Parent(id NodeID) NodeID {
	return f.parents[id]
}

// IsRoot reports whether a node starts a tree.
func (f *Forest) IsRoot(id NodeID) bool {
	return f.parents[id] == id
}

func (f *Forest) newNode(sym modal.Symbol, parent NodeID) (NodeID, error) {
	if len(f.symbols) >= f.max {
		return NullNode, ErrArenaFull
	}
	id := NodeID(len(f.symbols))
	f.symbols = append(f.symbols, sym)
	f.parents = append(f.parents, parent)
	return id, nil
}

// NewRoot appends a node which is the root of a new tree.
func (f *Forest) NewRoot(sym modal.Symbol) (NodeID, error) {
	id := NodeID(len(f.symbols))
	return f.newNode(sym, id)
}

// NewChild appends a node as a child of an existing node. The parent must
// precede the new node; this holds by construction for append-only forests.
func (f *Forest) NewChild(sym modal.Symbol, parent NodeID) (NodeID, error) {
	return f.newNode(sym, parent)
}

// TreeSize returns the number of nodes in the tree (or subtree) starting at
// id: the length of the contiguous run of indices whose parents point at or
// behind id, up to the next root.
func (f *Forest) TreeSize(id NodeID) int {
	n := 0
	i := id
	for {
		i++
		n++
		if int(i) >= len(f.symbols) || f.parents[i] < id || f.IsRoot(i) {
			break
		}
	}
	return n
}

// AppendTree copies the tree rooted at id in src to the end of f, returning
// the new root. The copy is a linear sweep: every parent index is shifted
// by the constant offset between the two roots.
func (f *Forest) AppendTree(src *Forest, id NodeID) (NodeID, error) {
	size := src.TreeSize(id)
	newRoot, err := f.NewRoot(src.symbols[id])
	if err != nil {
		return NullNode, err
	}
	for i := 1; i < size; i++ { // the root at offset 0 exists already
		at := id + NodeID(i)
		if _, err := f.NewChild(src.symbols[at], newRoot+src.parents[at]-id); err != nil {
			return NullNode, err
		}
	}
	return newRoot, nil
}

// SetParent re-points the parent link of a node. It is used by template
// instantiation, where the root of a substituted subtree adopts the parent
// of the register node it replaces.
func (f *Forest) SetParent(id, parent NodeID) {
	f.parents[id] = parent
}

// Equal reports whether two trees are structurally equal: identical size,
// identical symbol at every offset, and identical parent offset at every
// non-root offset. The trees may live in different forests.
func Equal(f1 *Forest, id1 NodeID, f2 *Forest, id2 NodeID) bool {
	size := f1.TreeSize(id1)
	if size != f2.TreeSize(id2) {
		return false
	}
	for i := 0; i < size; i++ {
		o1, o2 := id1+NodeID(i), id2+NodeID(i)
		if f1.symbols[o1] != f2.symbols[o2] {
			return false
		}
		// The roots' parents point outside the subtrees and need not agree.
		if i != 0 && f1.parents[o1]-id1 != f2.parents[o2]-id2 {
			tracer().Debugf("trees diverge structurally at offset %d", i)
			return false
		}
	}
	return true
}

// Snapshot returns the forest's symbol and parent arrays. The slices alias
// the arena and are only valid until the next append or reset. Used by the
// rewriting engine to fingerprint an arena between passes.
func (f *Forest) Snapshot() ([]modal.Symbol, []NodeID) {
	return f.symbols, f.parents
}

// --- Dual arenas ------------------------------------------------------------

// Pair couples two arenas for generational copying. A processing step
// consumes Src and produces Dst; Swap then exchanges the two and empties
// the new destination, discarding the previous generation wholesale.
type Pair struct {
	Src *Forest
	Dst *Forest
}

// NewPair creates two empty arenas of the same capacity.
func NewPair(maxNodes int) *Pair {
	return &Pair{Src: New(maxNodes), Dst: New(maxNodes)}
}

// Swap exchanges the roles of the two arenas and resets the new Dst.
func (p *Pair) Swap() {
	p.Src, p.Dst = p.Dst, p.Src
	p.Dst.Reset()
}
