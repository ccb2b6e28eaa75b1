package symtab

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/modal"
)

// Default capacities for a symbol table. 256 symbols is tight—223 are taken
// by the register atoms—but matches the footprint the interpreter was
// designed around. Clients with larger programs use NewWithLimits.
const (
	DefaultSymbolsMax = 256
	DefaultStringsMax = 4096
)

// Possible failures of Intern and Name. All capacity checks in this module
// treat the capacity as an exclusive upper bound.
var (
	ErrSymbolSpace   = errors.New("out of space for a new symbol")
	ErrStringSpace   = errors.New("out of memory for interned strings")
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// FirstRegisterByte and LastRegisterByte delimit the byte range X for which
// "?X" is a register atom.
const (
	FirstRegisterByte = 33
	LastRegisterByte  = 255
)

// Table is a symbol table, mapping atom strings to dense symbols and back.
// The zero value is not usable; create tables with New or NewWithLimits.
type Table struct {
	names      []string                // symbol → atom string
	index      map[string]modal.Symbol // atom string → symbol
	stringSize int                     // total bytes interned so far
	symbolsMax int
	stringsMax int

	// Reserved symbols, established at construction time.
	Define       modal.Symbol // the rule-definition marker "<>"
	OpenParen    modal.Symbol // "("
	CloseParen   modal.Symbol // ")"
	LastRegister modal.Symbol // the symbol for "?\xFF"
}

// New creates a symbol table with default capacities and all reserved
// symbols pre-interned.
func New() *Table {
	return NewWithLimits(DefaultSymbolsMax, DefaultStringsMax)
}

// NewWithLimits creates a symbol table holding at most symbolsMax symbols
// totalling at most stringsMax interned bytes. symbolsMax must leave room
// for the reserved symbols; NewWithLimits panics otherwise, as this is a
// configuration error, not an input error.
func NewWithLimits(symbolsMax, stringsMax int) *Table {
	t := &Table{
		names:      make([]string, 0, symbolsMax),
		index:      make(map[string]modal.Symbol, symbolsMax),
		symbolsMax: symbolsMax,
		stringsMax: stringsMax,
	}
	if err := t.reserve(); err != nil {
		panic(fmt.Sprintf("symbol table too small for reserved symbols: %v", err))
	}
	return t
}

// reserve interns the register alphabet and the structural atoms. The order
// is fixed: registers first, so that they occupy a contiguous range
// starting at symbol 0.
func (t *Table) reserve() error {
	reg := []byte{'?', 0}
	for x := FirstRegisterByte; x <= LastRegisterByte; x++ {
		reg[1] = byte(x)
		s, err := t.Intern(string(reg))
		if err != nil {
			return err
		}
		if x == LastRegisterByte {
			t.LastRegister = s
		}
	}
	var err error
	if t.Define, err = t.Intern("<>"); err != nil {
		return err
	}
	if t.OpenParen, err = t.Intern("("); err != nil {
		return err
	}
	if t.CloseParen, err = t.Intern(")"); err != nil {
		return err
	}
	tracer().Debugf("symbol table initialized, %d reserved symbols", t.Size())
	return nil
}

// Intern returns the symbol for an atom string, assigning a new symbol if
// the string has not been seen before. Interning is idempotent.
func (t *Table) Intern(atom string) (modal.Symbol, error) {
	if s, ok := t.index[atom]; ok {
		return s, nil
	}
	if len(t.names) >= t.symbolsMax {
		return 0, ErrSymbolSpace
	}
	if t.stringSize+len(atom) > t.stringsMax {
		return 0, ErrStringSpace
	}
	s := modal.Symbol(len(t.names))
	t.names = append(t.names, atom)
	t.index[atom] = s
	t.stringSize += len(atom)
	return s, nil
}

// Name returns the atom string for a symbol. It fails only for symbols
// which have never been handed out by this table, which indicates internal
// corruption on the caller's side.
func (t *Table) Name(s modal.Symbol) (string, error) {
	if int(s) >= len(t.names) {
		return "", ErrInvalidSymbol
	}
	return t.names[s], nil
}

// IsRegister reports whether s denotes a register atom "?X". Registers form
// a contiguous low range of symbols, so this is a bound comparison.
func (t *Table) IsRegister(s modal.Symbol) bool {
	return s <= t.LastRegister
}

// RegisterCount returns the number of register symbols (the size of the
// contiguous register range).
func (t *Table) RegisterCount() int {
	return int(t.LastRegister) + 1
}

// Size returns the number of interned symbols.
func (t *Table) Size() int {
	return len(t.names)
}
