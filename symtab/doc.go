/*
Package symtab interns atom strings to dense symbol IDs.

The symbol table is write-once-per-atom: interning the same byte content
twice yields the same symbol, and symbols are never revoked. A fresh table
pre-interns the reserved atoms of the Modal language in a fixed order, so
their numeric values are stable for a run:

First all register atoms "?X", for X in byte range 33…255, are interned.
Registers thus occupy a contiguous range of symbols starting at 0, and the
register check is a single comparison against Table.LastRegister. Then the
rule-definition marker "<>" and the two parentheses follow.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'modal.term'.
func tracer() tracing.Trace {
	return tracing.Select("modal.term")
}
