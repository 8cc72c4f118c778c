package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	ExtChart = ".chart"
	ExtToml  = ".toml"
	ExtYaml  = ".yaml"
	ExtYml   = ".yml"
)

// Load reads the definition stored in file on top of the default one. The
// format is selected by the extension of the file.
func Load(file string) (File, error) {
	f := Default()

	r, err := os.Open(file)
	if err != nil {
		return f, err
	}
	defer r.Close()

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ExtChart:
		err = NewDecoder(r).Decode(&f)
	case ExtToml:
		err = decodeToml(r, &f)
	case ExtYaml, ExtYml:
		err = decodeYaml(r, &f)
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return f, err
}

func decodeToml(r io.Reader, f *File) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(f)
}

func decodeYaml(r io.Reader, f *File) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
