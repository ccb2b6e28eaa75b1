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
	"sync"

	"github.com/npillmayer/modal"
	"github.com/npillmayer/modal/forest"
	"github.com/npillmayer/modal/symtab"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories of the Modal scanner.
const (
	EOF        modal.TokType = -1
	AtomType   modal.TokType = 1
	LeftParen  modal.TokType = '('
	RightParen modal.TokType = ')'
)

// ErrNoSpaceAfterDefine is returned when the rule-definition marker "<>" is
// not followed by a space byte.
var ErrNoSpaceAfterDefine = errors.New("expected space after <>")

// The scanner is a lexmachine DFA, compiled once per process. Whitespace in
// Modal is space and newline only; every other byte outside "()" may occur
// inside an atom.
var lexOnce sync.Once
var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	lexOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`\(`), makeToken(LeftParen))
		lexer.Add([]byte(`\)`), makeToken(RightParen))
		lexer.Add([]byte(`( |\n)+`), skip)
		lexer.Add([]byte(`[^ \n\(\)]+`), makeToken(AtomType))
		lexerErr = lexer.Compile()
	})
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(toktype modal.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(toktype), string(m.Bytes), m), nil
	}
}

// Scanner scans one Modal input, producing tokens until EOF.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
}

// logError is the default error reporting function for scanners.
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NewScanner creates a scanner for a given input.
func NewScanner(input []byte) (*Scanner, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next input token, or a token of type EOF at the end
// of the input.
func (s *Scanner) NextToken() modal.Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return token{toktype: EOF}
	}
	t := tok.(*lexmachine.Token)
	return token{
		toktype: modal.TokType(t.Type),
		lexeme:  string(t.Lexeme),
		span:    modal.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}
}

// token is the token type produced by the Modal scanner.
type token struct {
	toktype modal.TokType
	lexeme  string
	span    modal.Span
}

func (t token) TokType() modal.TokType {
	return t.toktype
}

func (t token) Lexeme() string {
	return t.lexeme
}

func (t token) Span() modal.Span {
	return t.span
}

// --- Scanning into an arena -------------------------------------------------

// Tokenize scans a complete Modal input and appends one root node per token
// to dst: parentheses carry the reserved paren symbols, atoms carry their
// interned symbol. Hierarchy is added by the subsequent Parse stage.
//
// The rule-definition marker "<>" must be followed by a space byte; a
// newline, parenthesis, end of input, or any atom extending "<>" with
// further bytes yields ErrNoSpaceAfterDefine.
func Tokenize(input []byte, tab *symtab.Table, dst *forest.Forest) error {
	scan, err := NewScanner(input)
	if err != nil {
		return err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		scanErr = e
	})
	for {
		tok := scan.NextToken()
		if scanErr != nil {
			return scanErr
		}
		if tok.TokType() == EOF {
			return nil
		}
		var sym modal.Symbol
		switch tok.TokType() {
		case LeftParen:
			sym = tab.OpenParen
		case RightParen:
			sym = tab.CloseParen
		default:
			lexeme := tok.Lexeme()
			if strings.HasPrefix(lexeme, "<>") && len(lexeme) > 2 {
				return ErrNoSpaceAfterDefine
			}
			if sym, err = tab.Intern(lexeme); err != nil {
				return err
			}
			if sym == tab.Define {
				at := tok.Span().To()
				if at >= uint64(len(input)) || input[at] != ' ' {
					return ErrNoSpaceAfterDefine
				}
			}
		}
		if _, err = dst.NewRoot(sym); err != nil {
			return err
		}
	}
}
