package config

import (
	"fmt"
)

const (
	kwSet    = "set"
	kwRender = "render"
	kwTo     = "to"
)

func isKeyword(str string) bool {
	switch str {
	default:
		return false
	case kwSet:
	case kwRender:
	case kwTo:
	}
	return true
}

const (
	Invalid rune = -(iota + 1)
	Keyword
	Literal
	Comment
	Comma
	EOL
	EOF
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	default:
		prefix = "unknown"
	case Invalid:
		prefix = "invalid"
	case Literal:
		prefix = "literal"
	case Comment:
		prefix = "comment"
	case Keyword:
		prefix = "keyword"
	case Comma:
		return "<comma>"
	case EOL:
		return "<eol>"
	case EOF:
		return "<eof>"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
