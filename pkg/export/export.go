// Package export writes generated meshes to interchange files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/roadmesh/pkg/mesh"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is a mesh file format.
type Format string

const (
	FormatOBJ Format = "obj"
	FormatSTL Format = "stl"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatOBJ, FormatSTL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Save writes b to path in format f.
func Save(path, name string, b *mesh.Buffers, f Format) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	switch f {
	case FormatOBJ:
		return SaveOBJ(path, name, b)
	case FormatSTL:
		return SaveSTL(path, b)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// DirSink writes every uploaded mesh to its own file in Dir.
type DirSink struct {
	Dir    string
	Format Format
}

// NewDirSink creates dir if needed and returns a sink writing into it.
func NewDirSink(dir string, f Format) (*DirSink, error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &DirSink{Dir: dir, Format: f}, nil
}

// Path returns the file a mesh called name is written to.
func (s *DirSink) Path(name string) string {
	return filepath.Join(s.Dir, sanitize(name)+s.Format.Ext())
}

// Upload writes b, replacing any previous file for the same name.
func (s *DirSink) Upload(name string, b *mesh.Buffers) error {
	return Save(s.Path(name), name, b, s.Format)
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "mesh"
	}
	return name
}
