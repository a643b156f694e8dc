package config

import (
	"flag"
	"io"
	"time"
)

// cliFlags holds the flags shared by every roadgen command. They are parsed
// after the command name, e.g. "roadgen road -segments 32".
type cliFlags struct {
	set *flag.FlagSet

	config       string
	debug        bool
	logFile      string
	profile      string
	curve        string
	segments     int
	ringSegments int
	scale        float64
	reverse      bool
	t            float64
	out          string
	format       string
	preview      bool
	view         string
	interval     time.Duration
}

func newFlags() *cliFlags {
	f := &cliFlags{set: flag.NewFlagSet("roadgen", flag.ContinueOnError)}
	s := f.set
	s.StringVar(&f.config, "config", "", "Path to config file")
	s.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	s.StringVar(&f.logFile, "log-file", "", "Also log to this file")
	s.StringVar(&f.profile, "profile", "", "Profile asset (.yaml, .toml, .json)")
	s.StringVar(&f.curve, "curve", "", "Road curve: bezier or circle")
	s.IntVar(&f.segments, "segments", 0, "Road segments along the curve")
	s.IntVar(&f.ringSegments, "ring-segments", 0, "Ring angular segments")
	s.Float64Var(&f.scale, "scale", 0, "Cross-section scale")
	s.BoolVar(&f.reverse, "reverse", false, "Reverse triangle winding")
	s.Float64Var(&f.t, "t", 0, "Curve parameter for inspect")
	s.StringVar(&f.out, "out", "", "Output directory")
	s.StringVar(&f.format, "format", "", "Output format: obj or stl")
	s.BoolVar(&f.preview, "preview", false, "Write a PNG preview")
	s.StringVar(&f.view, "view", "", "Preview view: top, front, or side")
	s.DurationVar(&f.interval, "interval", 0, "Watch: also regenerate on this interval")
	return f
}

var cli = newFlags()

// ParseFlags parses command-line flags following the command name.
func ParseFlags(args []string) error {
	return cli.set.Parse(args)
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return cli.set.Args()
}

// PrintDefaults writes flag usage to w.
func PrintDefaults(w io.Writer) {
	cli.set.SetOutput(w)
	cli.set.PrintDefaults()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return cli.config
}

// applyFlags copies every flag given on the command line over the config.
// Values are copied as given; Validate rejects the ones out of range.
func applyFlags(cfg *Config) {
	cli.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if cli.debug {
				cfg.Logging.Level = "debug"
			}
		case "log-file":
			cfg.Logging.LogFile = cli.logFile
		case "profile":
			cfg.Road.Profile = cli.profile
		case "curve":
			cfg.Road.Curve = cli.curve
		case "segments":
			cfg.Road.Segments = cli.segments
		case "ring-segments":
			cfg.Ring.Segments = cli.ringSegments
		case "scale":
			cfg.Road.Scale = float32(cli.scale)
		case "reverse":
			cfg.Road.ReverseWinding = cli.reverse
			cfg.Ring.ReverseWinding = cli.reverse
		case "t":
			cfg.Road.InspectT = float32(cli.t)
		case "out":
			cfg.Output.Dir = cli.out
		case "format":
			cfg.Output.Format = cli.format
		case "preview":
			cfg.Output.Preview.Enabled = cli.preview
		case "view":
			cfg.Output.Preview.View = cli.view
		case "interval":
			cfg.Watch.Interval = cli.interval
		}
	})
}
