package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/modal"
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/symtab"
)

// DefaultRegisterNodesMax is the default capacity of the registers forest.
const DefaultRegisterNodesMax = 256

// Registers maps register symbols to captured subtrees. Captures live in a
// dedicated forest; both the forest and the bindings are valid only within
// a single match attempt and are reset before the next one.
type Registers struct {
	forest *forest.Forest
	slots  []forest.NodeID // indexed by register symbol, NullNode = unbound
}

// NewRegisters creates a register table covering the register range of tab,
// with a capture forest of nodesMax nodes.
func NewRegisters(tab *symtab.Table, nodesMax int) *Registers {
	r := &Registers{
		forest: forest.New(nodesMax),
		slots:  make([]forest.NodeID, tab.RegisterCount()),
	}
	r.Reset()
	return r
}

// Reset unbinds all registers and empties the capture forest.
func (r *Registers) Reset() {
	r.forest.Reset()
	for i := range r.slots {
		r.slots[i] = forest.NullNode
	}
}

// Binding returns the captured tree bound to a register, if any.
func (r *Registers) Binding(sym modal.Symbol) (forest.NodeID, bool) {
	id := r.slots[sym]
	return id, id != forest.NullNode
}

// capture copies the subject subtree at id into the capture forest and
// binds the register to the copy.
func (r *Registers) capture(sym modal.Symbol, subject *forest.Forest, id forest.NodeID) error {
	root, err := r.forest.AppendTree(subject, id)
	if err != nil {
		return err
	}
	r.slots[sym] = root
	return nil
}

// Forest returns the capture forest.
func (r *Registers) Forest() *forest.Forest {
	return r.forest
}
