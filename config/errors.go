package config

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("unsupported definition format")

type OptionError struct {
	Option  string
	Section string
	File    string
	Position
}

func (e OptionError) Error() string {
	return fmt.Sprintf("%s: option %s not recognized in section %s", e.where(), e.Option, e.Section)
}

func (e OptionError) where() string {
	if e.File == "" {
		return e.Position.String()
	}
	return fmt.Sprintf("%s:%s", e.File, e.Position)
}

type DecodeError struct {
	Message string
	File    string
	Position
}

func (e DecodeError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("%s:%s: %s", e.File, e.Position, e.Message)
}
