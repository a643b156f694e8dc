package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a profile asset encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// asset is the on-disk shape of a profile.
type asset struct {
	Name        string        `yaml:"name" toml:"name" json:"name"`
	Vertices    []assetVertex `yaml:"vertices" toml:"vertices" json:"vertices"`
	LineIndices []int         `yaml:"line_indices" toml:"line_indices" json:"line_indices"`
}

type assetVertex struct {
	Point  [2]float32 `yaml:"point" toml:"point" json:"point"`
	Normal [2]float32 `yaml:"normal" toml:"normal" json:"normal"`
	U      float32    `yaml:"u" toml:"u" json:"u"`
}

// FormatFromPath picks the asset format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown profile format for %s", path)
	}
}

// Load reads and validates a profile asset. The format follows the file
// extension. A missing name defaults to the file's base name.
func Load(path string) (*Profile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data, format, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a profile asset. defaultName is used when the asset has no
// name of its own.
func Parse(data []byte, format Format, defaultName string) (*Profile, error) {
	var a asset
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &a)
	case FormatTOML:
		err = toml.Unmarshal(data, &a)
	case FormatJSON:
		err = json.Unmarshal(data, &a)
	default:
		return nil, fmt.Errorf("unknown profile format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if a.Name == "" {
		a.Name = defaultName
	}
	vertices := make([]Vertex, len(a.Vertices))
	for i, v := range a.Vertices {
		vertices[i] = Vertex{
			Point:  math.Vec2{X: v.Point[0], Y: v.Point[1]},
			Normal: math.Vec2{X: v.Normal[0], Y: v.Normal[1]},
			U:      v.U,
		}
	}
	return New(a.Name, vertices, a.LineIndices)
}

// Marshal encodes p in the given format.
func Marshal(p *Profile, format Format) ([]byte, error) {
	a := asset{Name: p.name, LineIndices: p.LineIndices()}
	for _, v := range p.vertices {
		a.Vertices = append(a.Vertices, assetVertex{
			Point:  [2]float32{v.Point.X, v.Point.Y},
			Normal: [2]float32{v.Normal.X, v.Normal.Y},
			U:      v.U,
		})
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(a)
	case FormatTOML:
		return toml.Marshal(a)
	case FormatJSON:
		return json.MarshalIndent(a, "", "  ")
	default:
		return nil, fmt.Errorf("unknown profile format %q", format)
	}
}
