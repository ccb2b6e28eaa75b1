package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/lang"
	"github.com/npillmayer/modal/rewrite"
	"github.com/npillmayer/modal/symtab"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() interprets a Modal program. With a file argument the program is
// rewritten to a fixed point and the residual subjects are printed, one
// per line, in flat parenthesized form. Without arguments an interactive
// session starts, where rules accumulate across input lines:
//
//    modal> <> a b a
//    b
//    modal> :rules
//    a --> b
//
// Quit the interactive session with <ctrl>D.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	nodes := flag.Int("nodes", forest.DefaultNodesMax, "Capacity of each subject arena, in nodes")
	rulesMax := flag.Int("rules", lang.DefaultRulesMax, "Maximum number of rules")
	ruleNodes := flag.Int("rulenodes", lang.DefaultRuleNodesMax, "Capacity of the rule forest, in nodes")
	regNodes := flag.Int("regnodes", rewrite.DefaultRegisterNodesMax, "Capacity of the register forest, in nodes")
	symbols := flag.Int("symbols", symtab.DefaultSymbolsMax, "Maximum number of interned symbols")
	passes := flag.Int("passes", 0, "Abort after this many rewriting passes (0 = unlimited)")
	cycles := flag.Bool("cycles", false, "Detect rewriting cycles and abort")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] [file.modal]\n", os.Args[0])
		os.Exit(1)
	}
	intp := &interp{
		tab:       symtab.NewWithLimits(*symbols, symtab.DefaultStringsMax),
		rules:     lang.NewRuleSet(*rulesMax, *ruleNodes),
		arenaSize: *nodes,
	}
	if *passes > 0 {
		intp.opts = append(intp.opts, rewrite.WithPassLimit(*passes))
	}
	if *cycles {
		intp.opts = append(intp.opts, rewrite.WithCycleDetection())
	}
	intp.opts = append(intp.opts, rewrite.WithRegisterCapacity(*regNodes))
	if flag.NArg() == 1 {
		runFile(intp, flag.Arg(0))
		return
	}
	pterm.Info.Println("Welcome to Modal")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// interp holds the state of one interpreter session. In batch mode it lives
// for a single program; in interactive mode the symbol table and the rule
// set persist across input lines.
type interp struct {
	tab       *symtab.Table
	rules     *lang.RuleSet
	arenaSize int
	opts      []rewrite.Option
}

func runFile(intp *interp, path string) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	residuals, err := intp.rewrite(data)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	for _, r := range residuals {
		fmt.Println(r)
	}
}

// rewrite runs the full pipeline on one input: scan, parse, extract rules,
// rewrite to a fixed point. It returns the flat renderings of the residual
// subject trees.
func (intp *interp) rewrite(input []byte) ([]string, error) {
	pair := forest.NewPair(intp.arenaSize)
	if err := lang.Tokenize(input, intp.tab, pair.Src); err != nil {
		return nil, err
	}
	if err := lang.Parse(pair.Src, pair.Dst, intp.tab); err != nil {
		return nil, err
	}
	pair.Swap()
	if err := intp.rules.Extract(pair, intp.tab); err != nil {
		return nil, err
	}
	pair.Swap()
	engine := rewrite.NewEngine(intp.tab, intp.rules, pair, intp.opts...)
	if err := engine.Run(); err != nil {
		return nil, err
	}
	return engine.Residuals()
}

// REPL starts interactive mode.
func (intp *interp) REPL() {
	repl, err := readline.New("modal> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.command(line); quit {
				break
			}
			continue
		}
		residuals, err := intp.rewrite([]byte(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		for _, r := range residuals {
			pterm.Info.Println(r)
		}
	}
	println("Good bye!")
}

// command handles REPL meta commands, returning true on quit.
func (intp *interp) command(line string) bool {
	cmd := line
	arg := ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case ":quit":
		return true
	case ":rules":
		s, err := intp.rules.ListString(intp.tab)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		if s == "" {
			pterm.Info.Println("no rules")
			return false
		}
		pterm.Println(strings.TrimRight(s, "\n"))
	case ":tree":
		intp.showTree(arg)
	default:
		pterm.Error.Println("unknown command " + cmd)
	}
	return false
}

// showTree parses an expression and renders its trees on the terminal.
func (intp *interp) showTree(input string) {
	pair := forest.NewPair(intp.arenaSize)
	if err := lang.Tokenize([]byte(input), intp.tab, pair.Src); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if err := lang.Parse(pair.Src, pair.Dst, intp.tab); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pair.Swap()
	id := forest.NodeID(0)
	for int(id) < pair.Src.NodeCount() {
		root := leveledTree(pair.Src, id, intp.tab)
		pterm.DefaultTree.WithRoot(root).Render()
		id += forest.NodeID(pair.Src.TreeSize(id))
	}
}

// leveledTree converts one subject tree into a pterm tree.
func leveledTree(f *forest.Forest, id forest.NodeID, tab *symtab.Table) pterm.TreeNode {
	size := f.TreeSize(id)
	ll := pterm.LeveledList{}
	for i := 0; i < size; i++ {
		at := id + forest.NodeID(i)
		name, err := tab.Name(f.Symbol(at))
		if err != nil {
			name = "?!"
		}
		level := 0
		for n := at; n != id; n = f.Parent(n) {
			level++
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: name})
	}
	return pterm.NewTreeFromLeveledList(ll)
}

// tracer traces with key 'modal.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("modal.rewrite")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
