/*
Package lang is the front-end for the Modal language.

Modal source is a raw byte stream. Tokens are "(", ")" and atoms, where an
atom is a maximal run of bytes other than space, newline and the two
parentheses. The front-end runs in three stages: the first reads the input
bytes, the other two each read one arena, and every stage writes its result
into an arena:

Scanning (Tokenize) turns the input bytes into a flat run of root nodes,
one per token, interning every atom on the way. Parsing (Parse) folds the
flat token run into nested trees, guided solely by the parentheses. Rule
extraction (RuleSet.Extract) splits the parsed top-level trees into the
ordered rule table and the residual subject forest.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'modal.lang'.
func tracer() tracing.Trace {
	return tracing.Select("modal.lang")
}
