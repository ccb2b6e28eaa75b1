package modal

import "fmt"

// --- Symbols ----------------------------------------------------------------

// Symbol identifies an interned atom string. Equal atom strings always map to
// equal symbols, and symbol values are stable for the lifetime of a program
// run. Symbols are handed out densely, starting at 0, by symtab.Table.
//
// The interpreter relies on the numeric ordering of symbols in one place:
// the register atoms "?X" occupy a contiguous range starting at 0, because
// they are interned before any user input is read. Whether a symbol denotes
// a register is therefore a single bound comparison (see symtab.Table).
type Symbol uint32

// --- A general purpose interface for tokens ---------------------------------

// TokType is a category type for a Token. The Modal scanner knows only three
// categories, defined in package lang: atoms and the two parentheses.
type TokType int

// Tokens represent input tokens as produced by the scanner. They reflect
// terminals of the Modal language.
//
// An example would be a token for a rule-definition marker:
//
//    TokType = AtomType  // category of this token (lang.AtomType)
//    Lexeme  = "<>"      // lexeme as it appeared in the input stream
//    Span    = 12…14     // occupied bytes 12 and 13 of the input
//
// Lexemes are raw byte runs; Modal is agnostic of text encoding.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
