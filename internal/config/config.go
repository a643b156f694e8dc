// Package config handles roadgen configuration loading and management.
package config

import "time"

// Curve kinds a road can follow.
const (
	CurveBezier = "bezier"
	CurveCircle = "circle"
)

// Config holds all generator settings.
type Config struct {
	Road    RoadConfig    `yaml:"road"`
	Ring    RingConfig    `yaml:"ring"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// Path returns the file the config was read from, or "" for pure defaults.
func (c *Config) Path() string {
	return c.path
}

// AnchorConfig is one end of a Bézier road.
type AnchorConfig struct {
	Position [3]float32 `yaml:"position"`
	Forward  [3]float32 `yaml:"forward"`
	Up       [3]float32 `yaml:"up"`
	Scale    float32    `yaml:"scale"` // handle length
}

// CircleConfig describes a closed circular road.
type CircleConfig struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
}

// RoadConfig holds the swept road segment settings.
type RoadConfig struct {
	Profile        string       `yaml:"profile"` // profile asset path; empty uses the built-in road
	Curve          string       `yaml:"curve"`   // bezier or circle
	Start          AnchorConfig `yaml:"start"`
	End            AnchorConfig `yaml:"end"`
	Circle         CircleConfig `yaml:"circle"`
	Segments       int          `yaml:"segments"`
	Scale          float32      `yaml:"cross_section_scale"`
	Precision      int          `yaml:"arc_precision"`
	ReverseWinding bool         `yaml:"reverse_winding"`
	InspectT       float32      `yaml:"inspect_t"`
}

// RingConfig holds the flat ring settings.
type RingConfig struct {
	InnerRadius    float32 `yaml:"inner_radius"`
	Thickness      float32 `yaml:"thickness"`
	Segments       int     `yaml:"segments"`
	UV             string  `yaml:"uv"` // angular_radial or project_z
	ReverseWinding bool    `yaml:"reverse_winding"`
}

// OutputConfig holds where and how meshes are written.
type OutputConfig struct {
	Dir     string        `yaml:"dir"`
	Format  string        `yaml:"format"` // obj or stl
	Preview PreviewConfig `yaml:"preview"`
}

// PreviewConfig holds PNG preview settings.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	View    string `yaml:"view"` // top, front, or side
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// WatchConfig holds the regeneration loop settings.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"` // 0 regenerates on file changes only
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Road: RoadConfig{
			Curve: CurveBezier,
			Start: AnchorConfig{
				Position: [3]float32{0, 0, 0},
				Forward:  [3]float32{0, 0, 1},
				Up:       [3]float32{0, 1, 0},
				Scale:    8,
			},
			End: AnchorConfig{
				Position: [3]float32{12, 0, 20},
				Forward:  [3]float32{1, 0, 0},
				Up:       [3]float32{0, 1, 0},
				Scale:    8,
			},
			Circle: CircleConfig{
				Radius: 10,
			},
			Segments:  8,
			Scale:     0.1,
			Precision: 16,
			InspectT:  0.5,
		},
		Ring: RingConfig{
			InnerRadius: 1,
			Thickness:   0.25,
			Segments:    32,
			UV:          "angular_radial",
		},
		Output: OutputConfig{
			Dir:    "out",
			Format: "obj",
			Preview: PreviewConfig{
				View:   "top",
				Width:  512,
				Height: 512,
			},
		},
		Watch: WatchConfig{
			Interval: 0,
			Debounce: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
