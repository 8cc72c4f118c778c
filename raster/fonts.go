package raster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var ErrFace = errors.New("unknown font face")

var builtin = map[string][]byte{
	"":        goregular.TTF,
	"sans":    goregular.TTF,
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"italic":  goitalic.TTF,
	"mono":    gomono.TTF,
}

// fontSet keeps one source per face so that faces of different sizes share
// their glyph caches.
type fontSet struct {
	sources map[string]*text.FontSource
}

func newFontSet() *fontSet {
	return &fontSet{
		sources: make(map[string]*text.FontSource),
	}
}

// Get resolves face as one of the bundled Go fonts or as the path of a TrueType
// or OpenType file.
func (f *fontSet) Get(face string) (*text.FontSource, error) {
	key := fontKey(face)
	if src, ok := f.sources[key]; ok {
		return src, nil
	}
	var (
		src *text.FontSource
		err error
	)
	if data, ok := builtin[key]; ok {
		src, err = text.NewFontSource(data)
	} else if isFontFile(face) {
		src, err = text.NewFontSourceFromFile(face)
	} else {
		return nil, fmt.Errorf("%w: %s", ErrFace, face)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", face, err)
	}
	f.sources[key] = src
	return src, nil
}

func (f *fontSet) Close() error {
	var errs []error
	for key, src := range f.sources {
		errs = append(errs, src.Close())
		delete(f.sources, key)
	}
	return errors.Join(errs...)
}

// fontKey folds the case of builtin names only; file paths are kept as given.
func fontKey(face string) string {
	face = strings.TrimSpace(face)
	if isFontFile(face) {
		return face
	}
	return strings.ToLower(face)
}

func isFontFile(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".ttf", ".otf":
		return true
	default:
		return false
	}
}
