package forest

import (
	"errors"
	"testing"

	"github.com/npillmayer/modal/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildPair builds the tree for (pair foo bar) by hand and returns the
// forest, the root, and the symbol table used.
func buildPair(t *testing.T) (*Forest, NodeID, *symtab.Table) {
	tab := symtab.New()
	f := New(DefaultNodesMax)
	root, err := f.NewRoot(tab.OpenParen)
	if err != nil {
		t.Fatal(err)
	}
	for _, atom := range []string{"pair", "foo", "bar"} {
		sym, err := tab.Intern(atom)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.NewChild(sym, root); err != nil {
			t.Fatal(err)
		}
	}
	return f, root, tab
}

func TestWellFormedness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	f, root, _ := buildPair(t)
	if !f.IsRoot(root) {
		t.Errorf("Expected node %d to be a root", root)
	}
	for i := 0; i < f.NodeCount(); i++ {
		id := NodeID(i)
		if f.Parent(id) > id {
			t.Errorf("Expected parent(%d) <= %d, is %d", id, id, f.Parent(id))
		}
		if id != root && f.IsRoot(id) {
			t.Errorf("Expected %d to be the only root", root)
		}
	}
	if size := f.TreeSize(root); size != 4 {
		t.Errorf("Expected tree size 4, is %d", size)
	}
}

func TestTreeSizeSiblingTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	tab := symtab.New()
	f := New(DefaultNodesMax)
	a, _ := tab.Intern("a")
	r1, _ := f.NewRoot(a)
	f.NewChild(a, r1)
	r2, _ := f.NewRoot(a)
	if size := f.TreeSize(r1); size != 2 {
		t.Errorf("Expected first tree to stop before the second root, size is %d", size)
	}
	if size := f.TreeSize(r2); size != 1 {
		t.Errorf("Expected second tree to have size 1, is %d", size)
	}
}

func TestAppendTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	f, root, _ := buildPair(t)
	dst := New(DefaultNodesMax)
	dst.NewRoot(f.Symbol(root)) // shift the copy away from index 0
	copied, err := dst.AppendTree(f, root)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(f, root, dst, copied) {
		t.Errorf("Expected copied tree to be structurally equal to its source")
	}
}

func TestEqualIsEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	f, root, tab := buildPair(t)
	g := New(DefaultNodesMax)
	otherRoot, err := g.AppendTree(f, root)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(f, root, f, root) {
		t.Errorf("Expected Equal to be reflexive")
	}
	if !Equal(f, root, g, otherRoot) || !Equal(g, otherRoot, f, root) {
		t.Errorf("Expected Equal to be symmetric")
	}
	k := New(DefaultNodesMax)
	thirdRoot, err := k.AppendTree(g, otherRoot)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(g, otherRoot, k, thirdRoot) || !Equal(f, root, k, thirdRoot) {
		t.Errorf("Expected Equal to be transitive")
	}
	// A tree with one diverging symbol must not compare equal.
	h := New(DefaultNodesMax)
	hr, _ := h.NewRoot(tab.OpenParen)
	pair, _ := tab.Intern("pair")
	foo, _ := tab.Intern("foo")
	baz, _ := tab.Intern("baz")
	h.NewChild(pair, hr)
	h.NewChild(foo, hr)
	h.NewChild(baz, hr)
	if Equal(f, root, h, hr) {
		t.Errorf("Expected trees with different symbols to differ")
	}
}

func TestArenaFull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	tab := symtab.New()
	f := New(2)
	a, _ := tab.Intern("a")
	if _, err := f.NewRoot(a); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewRoot(a); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewRoot(a); !errors.Is(err, ErrArenaFull) {
		t.Errorf("Expected ErrArenaFull, got %v", err)
	}
}

func TestFlatString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	f, root, tab := buildPair(t)
	s, err := f.FlatString(root, tab)
	if err != nil {
		t.Fatal(err)
	}
	if s != "( pair foo bar )" {
		t.Errorf("Expected flat form \"( pair foo bar )\", is %q", s)
	}
}

func TestFlatStringNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	tab := symtab.New()
	f := New(DefaultNodesMax)
	fsym, _ := tab.Intern("f")
	gsym, _ := tab.Intern("g")
	d, _ := tab.Intern("d")
	root, _ := f.NewRoot(tab.OpenParen)
	f.NewChild(fsym, root)
	inner, _ := f.NewChild(tab.OpenParen, root)
	f.NewChild(gsym, inner)
	f.NewChild(d, root)
	s, err := f.FlatString(root, tab)
	if err != nil {
		t.Fatal(err)
	}
	if s != "( f ( g ) d )" {
		t.Errorf("Expected flat form \"( f ( g ) d )\", is %q", s)
	}
}

func TestPairSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.term")
	defer teardown()
	//
	tab := symtab.New()
	p := NewPair(8)
	a, _ := tab.Intern("a")
	p.Src.NewRoot(a)
	p.Dst.NewRoot(a)
	p.Dst.NewRoot(a)
	src := p.Src
	p.Swap()
	if p.Src.NodeCount() != 2 {
		t.Errorf("Expected old Dst to become Src with 2 nodes, has %d", p.Src.NodeCount())
	}
	if p.Dst != src || p.Dst.NodeCount() != 0 {
		t.Errorf("Expected old Src to become the empty Dst")
	}
}
