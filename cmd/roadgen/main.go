// roadgen generates road, ring, and quad meshes from a profile and curve
// configuration and writes them as OBJ or STL.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/roadmesh/internal/config"
	"github.com/Faultbox/roadmesh/internal/generator"
	"github.com/Faultbox/roadmesh/internal/logger"
	"github.com/Faultbox/roadmesh/internal/scene"
	"github.com/Faultbox/roadmesh/internal/watch"
	"github.com/Faultbox/roadmesh/pkg/export"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "road":
		err = cmdGenerate(args, generator.KindRoad)
	case "ring":
		err = cmdGenerate(args, generator.KindRing)
	case "quad":
		err = cmdGenerate(args, generator.KindQuad)
	case "inspect":
		err = cmdInspect(args)
	case "watch":
		err = cmdWatch(args)
	case "init":
		err = cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`roadgen - procedural road and ring mesh generator

Usage:
  roadgen <command> [options] [args]

Commands:
  road                   Sweep the profile along the curve and export it
  ring                   Build a flat ring and export it
  quad                   Export a unit quad
  inspect                Print the curve frame and profile outline at -t
  watch [kinds...]       Regenerate when the config or profile changes
  init [dir]             Write a default config and profile to dir

Options:`)
	config.PrintDefaults(os.Stdout)
	fmt.Println(`
Examples:
  roadgen road -profile road.yaml -segments 32 -format stl
  roadgen ring -ring-segments 64 -preview
  roadgen inspect -t 0.25
  roadgen watch -config roadgen.yaml road ring`)
}

// setup parses flags, loads the config, and starts logging.
func setup(args []string) (*config.Config, error) {
	if err := config.ParseFlags(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	logger.Sugar.Debugf("config: %+v", cfg)
	return cfg, nil
}

func newSink(cfg *config.Config) (*export.DirSink, error) {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return export.NewDirSink(cfg.Output.Dir, format)
}

func cmdGenerate(args []string, kind generator.Kind) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	sink, err := newSink(cfg)
	if err != nil {
		return err
	}
	g, err := generator.New(cfg, []generator.Kind{kind}, sink)
	if err != nil {
		return err
	}

	stats, err := g.Update()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", sink.Path(string(kind)), stats.Vertices, stats.Triangles)

	if cfg.Output.Preview.Enabled {
		path, err := g.WritePreview()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

func cmdInspect(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	g, err := generator.New(cfg, []generator.Kind{generator.KindRoad})
	if err != nil {
		return err
	}
	o, err := g.Inspect()
	if err != nil {
		return err
	}

	f := o.Frame
	fmt.Printf("t:        %g\n", o.T)
	fmt.Printf("position: %v\n", f.Position)
	fmt.Printf("forward:  %v\n", f.Forward())
	fmt.Printf("up:       %v\n", f.Up())
	fmt.Printf("right:    %v\n", f.Right())
	fmt.Println()
	fmt.Printf("Profile outline (%d segments):\n", len(o.Outline))
	for i, l := range o.Outline {
		fmt.Printf("  %3d  %v -> %v\n", i, l.From, l.To)
	}

	if cfg.Output.Preview.Enabled {
		if _, err := g.Update(); err != nil {
			return err
		}
		path, err := g.WritePreview()
		if err != nil {
			return err
		}
		fmt.Printf("\nWrote %s\n", path)
	}
	return nil
}

func cmdWatch(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	kinds := []generator.Kind{generator.KindRoad}
	if rest := config.Args(); len(rest) > 0 {
		kinds = kinds[:0]
		for _, k := range rest {
			kinds = append(kinds, generator.Kind(k))
		}
	}

	sink, err := newSink(cfg)
	if err != nil {
		return err
	}
	g, err := generator.New(cfg, kinds, sink)
	if err != nil {
		return err
	}

	regenerate := func(changed []string) error {
		var stats scene.Stats
		var err error
		if len(changed) > 0 {
			logger.Info("inputs changed, reloading", zap.Strings("files", changed))
			stats, err = g.Reload()
		} else {
			stats, err = g.Update()
		}
		if err != nil {
			return err
		}
		logger.Info("regenerated",
			zap.Int("meshes", stats.Regenerated),
			zap.Int("vertices", stats.Vertices),
			zap.Int("triangles", stats.Triangles))
		if g.Config().Output.Preview.Enabled {
			if _, err := g.WritePreview(); err != nil {
				return err
			}
		}
		return nil
	}
	if err := regenerate(nil); err != nil {
		return err
	}

	w, err := watch.New(g.WatchedFiles(), watch.Options{
		Debounce: cfg.Watch.Debounce,
		Interval: cfg.Watch.Interval,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching", zap.Strings("files", w.Files()), zap.Duration("interval", cfg.Watch.Interval))
	return w.Run(ctx, regenerate)
}

func cmdInit(args []string) error {
	if err := config.ParseFlags(args); err != nil {
		return err
	}
	dir := "."
	if rest := config.Args(); len(rest) > 0 {
		dir = rest[0]
	}

	configPath := filepath.Join(dir, "roadgen.yaml")
	profilePath := filepath.Join(dir, "road.yaml")
	for _, p := range []string{configPath, profilePath} {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	cfg := config.Default()
	cfg.Road.Profile = "road.yaml"
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	data, err := profile.Marshal(profile.Road(), profile.FormatYAML)
	if err != nil {
		return err
	}
	if err := os.WriteFile(profilePath, data, 0644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\nWrote %s\n", configPath, profilePath)
	return nil
}
