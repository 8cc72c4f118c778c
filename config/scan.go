package config

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

type Scanner struct {
	input []byte
	pos   int
	width int
	char  rune

	Position
}

func Scan(input []byte) *Scanner {
	sc := Scanner{
		input: bytes.ReplaceAll(input, []byte{cr, nl}, []byte{nl}),
	}
	sc.Line++
	sc.read()
	return &sc
}

func (s *Scanner) Scan() Token {
	s.skipBlank()

	var tok Token
	tok.Position = s.Position
	switch {
	case s.done():
		tok.Type = EOF
	case s.isComment():
		s.scanComment(&tok)
	case isNL(s.char):
		s.scanNewline(&tok)
	case isComma(s.char):
		tok.Type = Comma
		s.read()
	case isQuote(s.char):
		s.scanQuote(&tok)
	default:
		s.scanLiteral(&tok)
	}
	return tok
}

func (s *Scanner) scanComment(tok *Token) {
	s.read()
	pos := s.pos
	for !isNL(s.char) && !s.done() {
		s.read()
	}
	tok.Type = Comment
	tok.Literal = strings.TrimSpace(string(s.input[pos:s.pos]))
}

func (s *Scanner) scanLiteral(tok *Token) {
	pos := s.pos
	for !isBlank(s.char) && !isComma(s.char) && !isNL(s.char) && !s.done() {
		s.read()
	}
	tok.Type = Literal
	tok.Literal = string(s.input[pos:s.pos])
	if isKeyword(tok.Literal) {
		tok.Type = Keyword
	}
}

func (s *Scanner) scanNewline(tok *Token) {
	s.skip(func(r rune) bool {
		return isNL(r) || isBlank(r)
	})
	tok.Type = EOL
}

func (s *Scanner) scanQuote(tok *Token) {
	quote := s.char
	s.read()
	pos := s.pos
	for s.char != quote && !isNL(s.char) && !s.done() {
		s.read()
	}
	tok.Type = Literal
	tok.Literal = string(s.input[pos:s.pos])
	if s.char != quote {
		tok.Type = Invalid
		return
	}
	s.read()
}

// isComment reports whether the current # opens a comment. A # directly
// followed by other characters starts a literal such as a color.
func (s *Scanner) isComment() bool {
	if s.char != hash {
		return false
	}
	r := s.peek()
	return r == eof || r == hash || isBlank(r) || isNL(r)
}

func (s *Scanner) skipBlank() {
	s.skip(isBlank)
}

func (s *Scanner) skip(accept func(rune) bool) {
	for accept(s.char) && !s.done() {
		s.read()
	}
}

func (s *Scanner) done() bool {
	return s.char == eof
}

func (s *Scanner) read() {
	if isNL(s.char) {
		s.Line++
		s.Column = 0
	}
	s.pos += s.width
	if s.pos >= len(s.input) {
		s.char, s.width = eof, 0
		return
	}
	s.char, s.width = utf8.DecodeRune(s.input[s.pos:])
	s.Column++
}

func (s *Scanner) peek() rune {
	next := s.pos + s.width
	if next >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRune(s.input[next:])
	return r
}

const (
	eof    rune = -1
	space       = ' '
	tab         = '\t'
	cr          = '\r'
	nl          = '\n'
	comma       = ','
	hash        = '#'
	squote      = '\''
	dquote      = '"'
)

func isComma(r rune) bool {
	return r == comma
}

func isQuote(r rune) bool {
	return r == squote || r == dquote
}

func isBlank(r rune) bool {
	return r == space || r == tab
}

func isNL(r rune) bool {
	return r == nl
}
