package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/symtab"
)

// Parse errors.
var (
	ErrUnmatchedClose = errors.New("unexpected ')'")
	ErrUnclosedParen  = errors.New("unclosed '(' at end of input")
)

// Parse reads the flat token run in src and writes nested trees into dst.
// Each "(" opens a subtree (its node keeps the paren symbol), each ")"
// returns to the enclosing parent, and every other token becomes a node
// under the current parent, or a new top-level tree if there is none.
//
// The token run is left in src untouched; callers typically swap the arena
// pair afterwards so that the parsed forest becomes the source of the next
// stage.
func Parse(src, dst *forest.Forest, tab *symtab.Table) error {
	currentParent := forest.NullNode
	var err error
	for i := 0; i < src.NodeCount(); i++ {
		sym := src.Symbol(forest.NodeID(i))
		switch sym {
		case tab.OpenParen:
			if currentParent == forest.NullNode {
				currentParent, err = dst.NewRoot(sym)
			} else {
				currentParent, err = dst.NewChild(sym, currentParent)
			}
		case tab.CloseParen:
			if currentParent == forest.NullNode {
				return ErrUnmatchedClose
			}
			if dst.IsRoot(currentParent) {
				currentParent = forest.NullNode
			} else {
				currentParent = dst.Parent(currentParent)
			}
		default:
			if currentParent == forest.NullNode {
				_, err = dst.NewRoot(sym)
			} else {
				_, err = dst.NewChild(sym, currentParent)
			}
		}
		if err != nil {
			return err
		}
	}
	if currentParent != forest.NullNode {
		return ErrUnclosedParen
	}
	tracer().Debugf("parsed %d token nodes into %d tree nodes", src.NodeCount(), dst.NodeCount())
	return nil
}
