package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/symtab"
)

// Default capacities of a rule set.
const (
	DefaultRulesMax     = 256
	DefaultRuleNodesMax = 256
)

// Rule-extraction errors.
var (
	ErrRuleSpace     = errors.New("not enough free rules")
	ErrTruncatedRule = errors.New("rule definition lacks pattern or template")
)

// Rule is a rewriting rule: a pattern and a template, both rooted in the
// rule set's dedicated forest.
type Rule struct {
	LHS forest.NodeID // pattern
	RHS forest.NodeID // template
}

// RuleSet is the ordered table of rewriting rules of a program, together
// with the forest holding their trees. Order is semantic: the rewriter
// applies the first matching rule, so rules are kept in declaration order.
// The rule forest is written once, during extraction, and never mutated.
type RuleSet struct {
	rules  *arraylist.List
	forest *forest.Forest
	max    int
}

// NewRuleSet creates an empty rule set holding at most rulesMax rules with
// at most nodesMax tree nodes in total.
func NewRuleSet(rulesMax, nodesMax int) *RuleSet {
	return &RuleSet{
		rules:  arraylist.New(),
		forest: forest.New(nodesMax),
		max:    rulesMax,
	}
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return rs.rules.Size()
}

// Rule returns the i-th rule in declaration order.
func (rs *RuleSet) Rule(i int) Rule {
	r, _ := rs.rules.Get(i)
	return r.(Rule)
}

// Forest returns the forest holding the rule trees.
func (rs *RuleSet) Forest() *forest.Forest {
	return rs.forest
}

func (rs *RuleSet) add(r Rule) error {
	if rs.rules.Size() >= rs.max {
		return ErrRuleSpace
	}
	rs.rules.Add(r)
	return nil
}

// Extract scans the top-level trees of p.Src in order. Every tree whose
// root carries the "<>" marker consumes the two following top-level trees
// as pattern and template of a new rule; their trees are copied into the
// rule forest. All other trees are subjects and are copied verbatim into
// p.Dst. Callers swap the pair afterwards, leaving only subjects in the
// active arena.
func (rs *RuleSet) Extract(p *forest.Pair, tab *symtab.Table) error {
	src, dst := p.Src, p.Dst
	i := forest.NodeID(0)
	for int(i) < src.NodeCount() {
		if src.Symbol(i) == tab.Define {
			i++
			lhs, err := rs.takeTree(src, i)
			if err != nil {
				return err
			}
			i += forest.NodeID(src.TreeSize(i))
			rhs, err := rs.takeTree(src, i)
			if err != nil {
				return err
			}
			i += forest.NodeID(src.TreeSize(i))
			if err := rs.add(Rule{LHS: lhs, RHS: rhs}); err != nil {
				return err
			}
		} else {
			if _, err := dst.AppendTree(src, i); err != nil {
				return err
			}
			i += forest.NodeID(src.TreeSize(i))
		}
	}
	tracer().Debugf("extracted %d rules, %d subject nodes remain", rs.Len(), dst.NodeCount())
	return nil
}

// takeTree copies one tree into the rule forest, rejecting a missing tree
// (a "<>" too close to the end of the program).
func (rs *RuleSet) takeTree(src *forest.Forest, id forest.NodeID) (forest.NodeID, error) {
	if int(id) >= src.NodeCount() {
		return forest.NullNode, ErrTruncatedRule
	}
	return rs.forest.AppendTree(src, id)
}

// ListString renders the rule table as "pattern --> template" lines, for
// diagnostics and the REPL.
func (rs *RuleSet) ListString(tab *symtab.Table) (string, error) {
	var b strings.Builder
	var err error
	rs.rules.Each(func(_ int, value interface{}) {
		r := value.(Rule)
		lhs, e1 := rs.forest.FlatString(r.LHS, tab)
		rhs, e2 := rs.forest.FlatString(r.RHS, tab)
		if e1 != nil || e2 != nil {
			if err == nil {
				err = symtab.ErrInvalidSymbol
			}
			return
		}
		b.WriteString(lhs)
		b.WriteString(" --> ")
		b.WriteString(rhs)
		b.WriteString("\n")
	})
	return b.String(), err
}
