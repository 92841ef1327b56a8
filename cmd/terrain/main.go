// terrain generates fractal landscapes and writes previews of them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/fractal-terrain/internal/config"
	"github.com/Faultbox/fractal-terrain/internal/engine/debug"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "preview", "render":
		cmdPreview(args)
	case "heightmap", "hm":
		cmdHeightmap(args)
	case "view":
		cmdView(args)
	case "shadows":
		cmdShadows(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terrain - fractal landscape generator

Usage:
  terrain <command> [options]

Commands:
  info                     Generate a terrain and print its statistics
  preview [output.png]     Render the lit terrain from above
  heightmap [output.png]   Render raw heights as grayscale
  view [output.png]        Render the lit terrain in perspective
  shadows [output.png]     Render the shadow mask
  config [save]            Print the effective config, or save it

Options:
  -config <file>    Config file (default ./config.yaml or user config dir)
  -lod <n>          Level of detail, grid is 2^n+1 samples wide
  -roughness <r>    Displacement decay per level, in (0,1)
  -exaggeration <e> Vertical scale
  -seed <n>         Random seed (0 = time based)
  -workers <n>      Worker goroutines (0 = all CPUs)
  -sun              Place the light from the configured sun angles
  -width, -height   Preview size
  -grid <n>         Cell overlay every n cells
  -debug            Debug logging

Examples:
  terrain info -lod 8 -seed 42
  terrain preview -lod 9 -roughness 0.45 -width 1024 -height 1024 out.png
  terrain config save`)
}

// setup parses flags, loads config, starts logging and then normalizes
// the config so clamp warnings are logged.
func setup(args []string) *config.Config {
	if err := config.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Setup(func(lc config.LoggingConfig) error {
		return logger.Init(lc.Level, lc.LogFile)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg
}

// generate runs the pipeline for cfg, exiting on failure.
func generate(cfg *config.Config) *scene.Scene {
	src, seed := cfg.Source()
	logger.Info("generating terrain", zap.Uint64("seed", seed), zap.Int("workers", cfg.Workers()))

	s, err := scene.Generate(cfg.Params(), src)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	return s
}

func cmdInfo(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	s := generate(cfg)
	grid, mesh := s.Grid, s.Mesh
	b := mesh.Bounds

	fmt.Printf("Level of detail: %d (%dx%d samples)\n", grid.LevelOfDetail(), grid.Size(), grid.Size())
	fmt.Printf("Roughness:       %.3f\n", s.Params.Roughness)
	fmt.Printf("Height range:    %.4f .. %.4f\n", grid.Min(), grid.Max())
	fmt.Printf("Vertices:        %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles:       %d\n", len(mesh.Triangles))
	fmt.Printf("Bounds:          (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	light := s.Params.Light.Position
	fmt.Printf("Light:           (%.3f, %.3f, %.3f)\n", light.X, light.Y, light.Z)
	lit := s.Shades.LitCount()
	fmt.Printf("Lit vertices:    %d / %d (%.1f%%)\n", lit, len(s.Shades.Shade),
		100*float64(lit)/float64(len(s.Shades.Shade)))
	fmt.Printf("Center altitude: %.4f\n", s.Altitude(0.5, 0.5))
}

func cmdPreview(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	s := generate(cfg)
	img := debug.TopDown(s)

	out, err := debug.Resize(img, cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Filter)
	if err != nil {
		logger.Error("resizing preview", zap.Error(err))
		os.Exit(1)
	}
	if cfg.Preview.GridEvery > 0 {
		debug.GridOverlay(out, s.Mesh.Divisions, cfg.Preview.GridEvery, debug.GridColor)
	}
	save(cfg, "preview", out)
}

func cmdView(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	s := generate(cfg)
	cam := cfg.Camera(s.Mesh.Bounds)
	logger.Debug("camera framed",
		zap.Float32("distance", cam.Distance),
		zap.Float32("pitch", cam.RotationX),
		zap.Float32("yaw", cam.RotationY))

	img, err := debug.Perspective(s, cam, cfg.Preview.Width, cfg.Preview.Height, cfg.Workers())
	if err != nil {
		logger.Error("rendering view", zap.Error(err))
		os.Exit(1)
	}
	save(cfg, "view", img)
}

func cmdHeightmap(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	s := generate(cfg)
	save(cfg, "heightmap", debug.Heightmap(s.Grid))
}

func cmdShadows(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	s := generate(cfg)
	save(cfg, "shadows", debug.ShadowMask(s.Shades))
}

// save writes img to the first positional argument, or to a timestamped
// file in the preview output dir.
func save(cfg *config.Config, prefix string, img image.Image) {
	capture := debug.NewCapture(cfg.Preview.OutputDir, prefix)

	var (
		path string
		err  error
	)
	if rest := config.Args(); len(rest) > 0 {
		path, err = capture.SaveAs(img, rest[0])
	} else {
		path, err = capture.Save(img)
	}
	if err != nil {
		logger.Error("saving image", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("image written", zap.String("path", path), zap.Stringer("size", img.Bounds().Size()))
	fmt.Println(path)
}

func cmdConfig(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	if rest := config.Args(); len(rest) > 0 && rest[0] == "save" {
		if err := cfg.Save(); err != nil {
			logger.Error("saving config", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Saved to %s\n", config.ConfigDir())
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
