package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/cnf/structhash"
	"github.com/npillmayer/modal"
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/lang"
	"github.com/npillmayer/modal/symtab"
)

// Errors raised by guarded engine runs. A plain engine raises neither:
// a divergent program simply never returns (or exhausts its arenas).
var (
	ErrPassLimit = errors.New("rewriting pass limit exceeded")
	ErrCycle     = errors.New("rewriting cycle detected")
)

// Engine rewrites the subject trees of a program to a fixed point.
//
// The engine consumes the pair's Src arena pass by pass, producing the next
// generation of subjects in Dst and swapping. It matches rules at the roots
// of top-level subject trees only; children are not searched for redexes
// within a pass.
type Engine struct {
	tab          *symtab.Table
	rules        *lang.RuleSet
	pair         *forest.Pair
	regs         *Registers
	passLimit    int
	detectCycles bool
}

// Option configures an engine.
type Option func(*Engine)

// WithPassLimit makes Run fail with ErrPassLimit after n passes that still
// rewrote something. Zero (the default) means unlimited.
func WithPassLimit(n int) Option {
	return func(e *Engine) {
		e.passLimit = n
	}
}

// WithCycleDetection makes Run fingerprint the subject arena after every
// pass and fail with ErrCycle when a fingerprint repeats, catching programs
// that oscillate instead of diverging in size.
func WithCycleDetection() Option {
	return func(e *Engine) {
		e.detectCycles = true
	}
}

// WithRegisterCapacity sets the capacity of the capture forest.
func WithRegisterCapacity(nodesMax int) Option {
	return func(e *Engine) {
		e.regs = NewRegisters(e.tab, nodesMax)
	}
}

// NewEngine creates an engine over a rule set and a subject arena pair.
// The pair's Src arena holds the subjects (the residue of rule extraction).
func NewEngine(tab *symtab.Table, rules *lang.RuleSet, pair *forest.Pair, opts ...Option) *Engine {
	e := &Engine{
		tab:   tab,
		rules: rules,
		pair:  pair,
		regs:  NewRegisters(tab, DefaultRegisterNodesMax),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run rewrites until a fixed point: it repeats passes over the top-level
// subject trees as long as at least one rule application occurred. On
// return, the residual subjects are in Subject().
//
// Termination is up to the program. Run only returns an error for arena
// exhaustion, or when a configured guard (pass limit, cycle detection)
// triggers.
func (e *Engine) Run() error {
	pass := 0
	var seen map[string]bool
	if e.detectCycles {
		seen = make(map[string]bool)
	}
	for {
		rewritten, err := e.pass()
		if err != nil {
			return err
		}
		e.pair.Swap()
		if !rewritten {
			tracer().Debugf("fixed point after %d passes", pass)
			return nil
		}
		pass++
		if e.passLimit > 0 && pass >= e.passLimit {
			return ErrPassLimit
		}
		if e.detectCycles {
			h, err := e.fingerprint()
			if err != nil {
				return err
			}
			if seen[h] {
				return ErrCycle
			}
			seen[h] = true
		}
	}
}

// pass sweeps the current Src arena once, left to right over the top-level
// trees, writing the next generation into Dst. It reports whether any rule
// was applied.
func (e *Engine) pass() (bool, error) {
	src := e.pair.Src
	rewritten := false
	id := forest.NodeID(0)
	for int(id) < src.NodeCount() {
		matched := false
		for r := 0; r < e.rules.Len(); r++ {
			rule := e.rules.Rule(r)
			e.regs.Reset()
			ok, err := e.match(rule.LHS, id)
			if err != nil {
				return false, err
			}
			if ok {
				tracer().Debugf("rule %d matches subject at node %d", r, id)
				if _, err := e.instantiate(rule); err != nil {
					return false, err
				}
				rewritten = true
				matched = true
				break
			}
		}
		if !matched {
			if _, err := e.pair.Dst.AppendTree(src, id); err != nil {
				return false, err
			}
		}
		id += forest.NodeID(src.TreeSize(id))
	}
	return rewritten, nil
}

// fingerprint hashes the subject arena's node arrays, identifying the
// complete rewriting state between passes.
func (e *Engine) fingerprint() (string, error) {
	syms, parents := e.pair.Src.Snapshot()
	hash, err := structhash.Hash(struct {
		Symbols []modal.Symbol
		Parents []forest.NodeID
	}{syms, parents}, 1)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// Subject returns the arena currently holding the subject trees.
func (e *Engine) Subject() *forest.Forest {
	return e.pair.Src
}

// Residuals renders all top-level subject trees in flat form, in order.
// After Run has returned, this is the program's output.
func (e *Engine) Residuals() ([]string, error) {
	src := e.pair.Src
	var out []string
	id := forest.NodeID(0)
	for int(id) < src.NodeCount() {
		s, err := src.FlatString(id, e.tab)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		id += forest.NodeID(src.TreeSize(id))
	}
	return out, nil
}
