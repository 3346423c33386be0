package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed builtin
var builtinFS embed.FS

// Builtin returns the scenarios compiled into the binary.
func Builtin() *Library {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	data, err := fs.ReadFile(sub, "scenarios.yaml")
	if err != nil {
		panic(err)
	}
	lib, err := Load(bytes.NewReader(data), sub)
	if err != nil {
		panic(fmt.Sprintf("scenario: builtin library: %v", err))
	}

	return lib
}

// LoadFile reads a library file. PGM paths resolve against its directory.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open library: %w", err)
	}
	defer f.Close()

	return Load(f, os.DirFS(filepath.Dir(path)))
}

// Load decodes a library from r. PGM paths resolve against fsys.
func Load(r io.Reader, fsys fs.FS) (*Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var lib Library
	if err := dec.Decode(&lib); err != nil {
		if errors.Is(err, io.EOF) {
			return &Library{fsys: fsys}, nil
		}
		return nil, fmt.Errorf("scenario: parse library: %w", err)
	}
	lib.fsys = fsys
	for i := range lib.Scenarios {
		s := &lib.Scenarios[i]
		s.fsys = fsys
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	return &lib, nil
}

// Names returns the scenario names in file order.
func (l *Library) Names() []string {
	out := make([]string, len(l.Scenarios))
	for i, s := range l.Scenarios {
		out[i] = s.Name
	}

	return out
}

// Find returns the scenario called name.
func (l *Library) Find(name string) (*Scenario, error) {
	for i := range l.Scenarios {
		if l.Scenarios[i].Name == name {
			return &l.Scenarios[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
