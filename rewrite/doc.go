/*
Package rewrite implements the matching and rewriting machinery of the
Modal interpreter.

An Engine owns the dual subject arenas, the rule table produced by package
lang, and the register bindings. Running the engine performs left-to-right
passes over the top-level subject trees: for each tree, rules are tried in
declaration order and the first match wins; its template is instantiated
into the destination arena with all register occurrences substituted by
their captured subtrees. Trees no rule matches are copied verbatim. After a
pass the arenas swap, and the loop stops at the first pass that performs no
rewrite.

Matching happens at the root of each top-level tree only; the engine never
descends into children to look for redexes. Inner structure is only ever
rewritten after a previous pass has lifted it to the top level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'modal.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("modal.rewrite")
}
