package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/modal/forest"
)

// match walks a pattern tree (in the rule forest) and the subject tree at
// id in parallel. A register atom in the pattern consumes one whole subject
// subtree: on first occurrence it captures it, on re-occurrence the current
// subject subtree must be structurally equal to the existing capture. Any
// other pattern node must agree with the subject node in symbol and in
// parent offset. The match succeeds when the pattern is exhausted and the
// subject subtree is fully consumed.
//
// Callers must reset the registers before each attempt. The only error
// condition is capture-forest exhaustion.
func (e *Engine) match(lhs forest.NodeID, id forest.NodeID) (bool, error) {
	rules := e.rules.Forest()
	subject := e.pair.Src
	size1 := rules.TreeSize(lhs)
	size2 := subject.TreeSize(id)
	i2 := forest.NodeID(0)
	for i1 := forest.NodeID(0); int(i1) < size1; i1++ {
		if int(i2) >= size2 {
			return false, nil // pattern needs more material than the subject has
		}
		sym := rules.Symbol(lhs + i1)
		if e.tab.IsRegister(sym) {
			if bound, ok := e.regs.Binding(sym); ok {
				if !forest.Equal(e.regs.Forest(), bound, subject, id+i2) {
					tracer().Debugf("match fails: register %d bound to a different tree", sym)
					return false, nil
				}
			} else if err := e.regs.capture(sym, subject, id+i2); err != nil {
				return false, err
			}
			i2 += forest.NodeID(subject.TreeSize(id + i2))
		} else {
			if sym != subject.Symbol(id+i2) {
				return false, nil
			}
			if rules.Parent(lhs+i1)-lhs != subject.Parent(id+i2)-id {
				return false, nil
			}
			i2++
		}
	}
	return int(i2) == size2, nil
}
