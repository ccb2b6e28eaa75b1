/*
Package forest implements the arena-based tree representation of the Modal
interpreter.

A Forest is a bounded, append-only array of nodes. Each node carries a
symbol and the index of its parent; a node whose parent is its own index is
a root. Every tree is stored as one contiguous run of indices starting at
its root, with each parent preceding its children and siblings appearing in
source order. Tree identity is (forest, root index); the size of a tree is
recovered by walking forward from the root.

There is no per-node free operation. Forests are reclaimed wholesale: the
interpreter runs a generational scheme over a pair of arenas, copying the
live trees of a pass from the source arena into the destination arena and
then swapping the two (see Pair).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'modal.term'.
func tracer() tracing.Trace {
	return tracing.Select("modal.term")
}
