/*
Package modal implements an interpreter for Modal, a small term-rewriting
language over S-expressions.

A Modal program is a stream of whitespace- and parenthesis-delimited
S-expressions. The reserved atom "<>" introduces a rewriting rule: the two
expressions following it form a pattern and a template. All remaining
top-level expressions are subjects. The interpreter extracts the rule set
and then rewrites every subject, outermost-first and leftmost, applying
the first matching rule, until a pass performs no rewrite.

Atoms of the form "?X" (with X a single byte) are registers: they act as
capture variables in patterns and are substituted into templates.

Package structure is as follows:

■ symtab: Package symtab interns atom strings to dense symbol IDs and
establishes the reserved symbols, including the register range.

■ forest: Package forest implements the arena-based tree representation
used for every tree the interpreter touches: token runs, parsed terms,
rules, subjects and register captures.

■ lang: Package lang is the language front-end: scanning, parsing and
rule extraction.

■ rewrite: Package rewrite implements pattern matching, template
instantiation and the rewriting loop.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package modal
