package rewrite

import (
	"errors"
	"testing"

	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/lang"
	"github.com/npillmayer/modal/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// load runs the front-end on a program and returns an engine ready to run.
func load(t *testing.T, program string, opts ...Option) *Engine {
	tab := symtab.New()
	pair := forest.NewPair(forest.DefaultNodesMax)
	if err := lang.Tokenize([]byte(program), tab, pair.Src); err != nil {
		t.Fatal(err)
	}
	if err := lang.Parse(pair.Src, pair.Dst, tab); err != nil {
		t.Fatal(err)
	}
	pair.Swap()
	rules := lang.NewRuleSet(lang.DefaultRulesMax, lang.DefaultRuleNodesMax)
	if err := rules.Extract(pair, tab); err != nil {
		t.Fatal(err)
	}
	pair.Swap()
	return NewEngine(tab, rules, pair, opts...)
}

// run rewrites a program to its fixed point and returns the residuals.
func run(t *testing.T, program string, opts ...Option) []string {
	e := load(t, program, opts...)
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	out, err := e.Residuals()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func expectOutput(t *testing.T, program string, expected ...string) {
	out := run(t, program)
	if len(out) != len(expected) {
		t.Fatalf("Expected %d residuals for %q, got %v", len(expected), program, out)
	}
	for i, e := range expected {
		if out[i] != e {
			t.Errorf("Expected residual %d of %q to be %q, is %q", i, program, e, out[i])
		}
	}
}

func TestIdentityWithoutRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "hello", "hello")
}

func TestConstantRewrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> a b a", "b")
}

func TestRegisterCaptureAndReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (pair ?x ?x) ?x (pair foo foo)", "foo")
}

func TestRegisterConsistencyFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (pair ?x ?x) ?x (pair foo bar)", "( pair foo bar )")
}

func TestRuleOrderDeterminesResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> a b <> a c a", "b")
}

func TestStructuralMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (f (g ?x)) ?x (f (g hello))", "hello")
	expectOutput(t, "<> (f (g ?x)) ?x (f (g2 hello))", "( f ( g2 hello ) )")
}

func TestRegisterCapturesSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (w ?x) (r ?x) (w (a b))", "( r ( a b ) )")
	expectOutput(t, "<> (pair ?x ?x) ok (pair (a b) (a b))", "ok")
}

func TestRegisterDuplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (w ?x) (r ?x ?x) (w foo)", "( r foo foo )")
}

func TestRegisterAfterNestedSibling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	// The substituted subtree replaces the register node; it must hang
	// below the template root, not below the preceding nested sibling.
	expectOutput(t, "<> (w ?y) (q (k a) ?y) (w foo)", "( q ( k a ) foo )")
}

func TestMultipleSubjectsKeepOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> a b a c a", "b", "c", "b")
}

func TestPatternLongerThanSubject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (a b) c (a)", "( a )")
}

func TestSubjectLongerThanPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> (a) c (a b)", "( a b )")
}

func TestNoDescentIntoChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	// The redex sits below the top level; rules match at roots only.
	expectOutput(t, "<> a b (c a)", "( c a )")
}

func TestFixedPointIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	e := load(t, "<> a b a (c d)")
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	rewritten, err := e.pass()
	if err != nil {
		t.Fatal(err)
	}
	if rewritten {
		t.Errorf("Expected a pass after the fixed point to rewrite nothing")
	}
}

func TestMatchResetsRegistersBetweenRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	// The first rule binds ?x and fails on the second occurrence; the
	// second rule must start from clean registers.
	expectOutput(t, "<> (pair ?x ?x) bad <> (pair ?x ?y) (?y ?x) (pair foo bar)", "( bar foo )")
}

func TestPassLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	e := load(t, "<> a b <> b a a", WithPassLimit(5))
	if err := e.Run(); !errors.Is(err, ErrPassLimit) {
		t.Errorf("Expected ErrPassLimit for an oscillating program, got %v", err)
	}
}

func TestCycleDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	e := load(t, "<> a b <> b a a", WithCycleDetection())
	if err := e.Run(); !errors.Is(err, ErrCycle) {
		t.Errorf("Expected ErrCycle for an oscillating program, got %v", err)
	}
}

func TestCaptureForestExhaustion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	e := load(t, "<> (w ?x) ?x (w (a b c d))", WithRegisterCapacity(2))
	if err := e.Run(); !errors.Is(err, forest.ErrArenaFull) {
		t.Errorf("Expected ErrArenaFull from register capture, got %v", err)
	}
}

func TestUnboundRegisterEmittedLiterally(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modal.rewrite")
	defer teardown()
	//
	expectOutput(t, "<> a (b ?z) a", "( b ?z )")
}
