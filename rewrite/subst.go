package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/lang"
)

// instantiate copies a rule's template into the destination arena,
// substituting every bound register by a copy of its captured subtree. The
// substituted tree replaces the register node: its root adopts the parent
// the register node would have had. Registers without a binding are emitted
// literally; a well-formed rule uses only registers its pattern binds.
func (e *Engine) instantiate(r lang.Rule) (forest.NodeID, error) {
	rules := e.rules.Forest()
	dst := e.pair.Dst
	id := r.RHS
	rootSym := rules.Symbol(id)
	if e.tab.IsRegister(rootSym) {
		if bound, ok := e.regs.Binding(rootSym); ok {
			return dst.AppendTree(e.regs.Forest(), bound)
		}
	}
	size := rules.TreeSize(id)
	// Substituted subtrees shift all following nodes, so template offsets
	// are mapped to destination nodes explicitly instead of by a constant.
	ids := make([]forest.NodeID, size)
	root, err := dst.NewRoot(rootSym)
	if err != nil {
		return forest.NullNode, err
	}
	ids[0] = root
	for i := 1; i < size; i++ {
		at := id + forest.NodeID(i)
		sym := rules.Symbol(at)
		parent := ids[rules.Parent(at)-id]
		if e.tab.IsRegister(sym) {
			if bound, ok := e.regs.Binding(sym); ok {
				sub, err := dst.AppendTree(e.regs.Forest(), bound)
				if err != nil {
					return forest.NullNode, err
				}
				dst.SetParent(sub, parent)
				ids[i] = sub
				continue
			}
		}
		ch, err := dst.NewChild(sym, parent)
		if err != nil {
			return forest.NullNode, err
		}
		ids[i] = ch
	}
	return root, nil
}
