package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/modal"
	"github.com/npillmayer/modal/symtab"
)

// FlatString renders the tree at id in flat parenthesized form: symbols in
// run order, with a ")" emitted whenever the parent chain unwinds. This is
// the interpreter's output format for residual subjects.
func (f *Forest) FlatString(id NodeID, tab *symtab.Table) (string, error) {
	var b strings.Builder
	size := f.TreeSize(id)
	oldParent := id
	for i := 0; i < size; i++ {
		at := id + NodeID(i)
		newParent := f.parents[at]
		for newParent < oldParent {
			b.WriteString(") ")
			oldParent = f.parents[oldParent]
		}
		name, err := tab.Name(f.symbols[at])
		if err != nil {
			return "", err
		}
		b.WriteString(name)
		b.WriteString(" ")
		oldParent = newParent
	}
	// Unwind the chain of still-open parents behind the last node.
	n := id + NodeID(size) - 1
	for !f.IsRoot(n) {
		b.WriteString(") ")
		n = f.parents[n]
	}
	return strings.TrimRight(b.String(), " "), nil
}

// IndentedString renders the tree at id with one node per line, indented by
// nesting depth. Diagnostics only.
func (f *Forest) IndentedString(id NodeID, tab *symtab.Table) (string, error) {
	var b strings.Builder
	size := f.TreeSize(id)
	for i := 0; i < size; i++ {
		at := id + NodeID(i)
		b.WriteString(strings.Repeat(" ", 4*f.depth(id, at)))
		name, err := tab.Name(f.symbols[at])
		if err != nil {
			return "", err
		}
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// depth counts the parent hops from a node up to the run root.
func (f *Forest) depth(root, id NodeID) int {
	d := 0
	for id != root {
		id = f.parents[id]
		d++
	}
	return d
}

// DumpTree writes a raw view of the tree at id (indices, symbols, parents)
// to the tracer at debug level.
func (f *Forest) DumpTree(id NodeID, tab *symtab.Table) {
	size := f.TreeSize(id)
	ids := make([]NodeID, size)
	syms := make([]string, size)
	parents := make([]NodeID, size)
	for i := 0; i < size; i++ {
		at := id + NodeID(i)
		ids[i] = at
		parents[i] = f.parents[at]
		syms[i] = f.symbolName(f.symbols[at], tab)
	}
	tracer().Debugf("IDs:     %v", ids)
	tracer().Debugf("symbols: %v", syms)
	tracer().Debugf("parents: %v", parents)
}

func (f *Forest) symbolName(s modal.Symbol, tab *symtab.Table) string {
	name, err := tab.Name(s)
	if err != nil {
		return "?!"
	}
	return name
}
