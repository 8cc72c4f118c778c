package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/slices"
)

type Decoder struct {
	file string
	r    io.Reader

	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		r: r,
	}
	if r, ok := r.(interface{ Name() string }); ok {
		d.file = r.Name()
	}
	return &d
}

// Decode reads a chart definition made of set statements optionally
// followed by a single render statement. Options absent from the input keep
// the value they have in f.
func (d *Decoder) Decode(f *File) error {
	input, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	d.scan = Scan(input)
	d.next()
	d.next()
	return d.decode(f)
}

func (d *Decoder) decode(f *File) error {
	d.skipEOL()
	for d.isKw(kwSet) {
		if err := d.decodeSet(f); err != nil {
			return err
		}
		d.skipEOL()
	}
	if d.isKw(kwRender) {
		if err := d.decodeRender(f); err != nil {
			return err
		}
		d.skipEOL()
	}
	if !d.done() {
		return d.decodeError(fmt.Sprintf("unexpected %s", d.curr))
	}
	return nil
}

func (d *Decoder) decodeRender(f *File) error {
	d.next()
	if err := d.expectKw(kwTo); err != nil {
		return err
	}
	d.next()
	list, err := d.getStringList()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return d.decodeError("at least one output expected")
	}
	f.Output = list
	return d.eol()
}

func (d *Decoder) decodeSet(f *File) error {
	d.next()
	if err := d.expect(Literal, "option expected"); err != nil {
		return err
	}
	var (
		err error
		cmd = d.curr
	)
	d.next()
	switch cmd.Literal {
	case "size":
		var list []float64
		if list, err = d.getFloatList(); err != nil {
			break
		}
		switch len(list) {
		case 1, 2:
			f.Width, f.Height = slices.Fst(list), slices.Lst(list)
		default:
			err = d.decodeError("invalid number of values given for chart size")
		}
	case "width":
		f.Width, err = d.getFloat()
	case "height":
		f.Height, err = d.getFloat()
	case "padding":
		f.Padding, err = d.getFloat()
	case "background":
		f.Background, err = d.getString()
	case "grid":
		err = d.decodeStroke(&f.Grid)
	case "line":
		err = d.decodeStroke(&f.Line)
	case "font":
		err = d.decodeFont(&f.Font)
	case "xdata":
		f.X, err = d.getFloatList()
	case "ydata":
		f.Y, err = d.getFloatList()
	default:
		return OptionError{
			Position: cmd.Position,
			File:     d.file,
			Option:   cmd.Literal,
			Section:  kwSet,
		}
	}
	if err != nil {
		return err
	}
	return d.eol()
}

func (d *Decoder) decodeStroke(s *Stroke) error {
	var err error
	if s.Color, err = d.getString(); err != nil {
		return err
	}
	if d.is(Comma) {
		d.next()
		s.Width, err = d.getFloat()
	}
	return err
}

func (d *Decoder) decodeFont(f *Font) error {
	var err error
	if f.Face, err = d.getString(); err != nil {
		return err
	}
	if d.is(Comma) {
		d.next()
		f.Size, err = d.getFloat()
	}
	return err
}

func (d *Decoder) is(kind rune) bool {
	return d.curr.Type == kind
}

func (d *Decoder) peekIs(kind rune) bool {
	return d.peek.Type == kind
}

func (d *Decoder) isKw(kw string) bool {
	return d.is(Keyword) && d.curr.Literal == kw
}

func (d *Decoder) expectKw(kw string) error {
	if err := d.expect(Keyword, fmt.Sprintf("expected %q keyword", kw)); err != nil {
		return err
	}
	if d.curr.Literal != kw {
		return d.decodeError(fmt.Sprintf("%q expected, got %s", kw, d.curr.Literal))
	}
	return nil
}

func (d *Decoder) expect(kind rune, msg string) error {
	if d.is(kind) {
		return nil
	}
	return d.decodeError(msg)
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
}

func (d *Decoder) done() bool {
	return d.is(EOF)
}

func (d *Decoder) eol() error {
	if d.is(Comment) {
		d.next()
	}
	if !d.is(EOL) && !d.is(EOF) {
		return d.decodeError("expected end of line or end of file")
	}
	if d.is(EOL) {
		d.next()
	}
	return nil
}

func (d *Decoder) decodeError(msg string) error {
	return DecodeError{
		Position: d.curr.Position,
		File:     d.file,
		Message:  msg,
	}
}

func (d *Decoder) skipEOL() {
	for d.is(EOL) || d.is(Comment) {
		d.next()
	}
}

func (d *Decoder) getString() (string, error) {
	if !d.is(Literal) {
		return "", d.decodeError(fmt.Sprintf("expected literal, got %s", d.curr))
	}
	defer d.next()
	return d.curr.Literal, nil
}

func (d *Decoder) getFloat() (float64, error) {
	pos := d.curr.Position
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, DecodeError{
			Position: pos,
			File:     d.file,
			Message:  fmt.Sprintf("%s: number expected", str),
		}
	}
	return f, nil
}

func (d *Decoder) getStringList() ([]string, error) {
	var list []string
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		str, err := d.getString()
		if err != nil {
			return nil, err
		}
		list = append(list, str)
		if err := d.nextListItem(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (d *Decoder) getFloatList() ([]float64, error) {
	var list []float64
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		f, err := d.getFloat()
		if err != nil {
			return nil, err
		}
		list = append(list, f)
		if err := d.nextListItem(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (d *Decoder) nextListItem() error {
	switch d.curr.Type {
	case Comma:
		if d.peekIs(EOL) || d.peekIs(EOF) {
			return d.decodeError("end of line not expected after ','")
		}
		d.next()
	case EOF, EOL, Comment:
	default:
		return d.decodeError("expected ',' or end of line")
	}
	return nil
}
