package config

import (
	"flag"
	"os"
	"path/filepath"
)

// cliFlags holds one parse of the command line. set records the flags that
// were given explicitly, so zero values still override the config.
type cliFlags struct {
	config       string
	debug        bool
	lod          int
	roughness    float64
	exaggeration float64
	seed         uint64
	workers      int
	sun          bool
	width        int
	height       int
	grid         int

	set  map[string]bool
	args []string
}

var parsed = &cliFlags{}

// ParseFlags parses command-line flags from args. Call this early in main(),
// after the subcommand has been stripped. Each call starts from a clean slate.
func ParseFlags(args []string) error {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.lod, "lod", 0, "Level of detail (grid is 2^lod+1 samples wide)")
	fs.Float64Var(&f.roughness, "roughness", 0, "Displacement decay per level, in (0,1)")
	fs.Float64Var(&f.exaggeration, "exaggeration", 0, "Vertical scale of normalized altitude")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed (0 = time based)")
	fs.IntVar(&f.workers, "workers", 1, "Worker goroutines (0 = all CPUs)")
	fs.BoolVar(&f.sun, "sun", false, "Place the light from sun angles")
	fs.IntVar(&f.width, "width", 0, "Preview width")
	fs.IntVar(&f.height, "height", 0, "Preview height")
	fs.IntVar(&f.grid, "grid", 0, "Draw a cell overlay every N cells on previews")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	f.args = fs.Args()

	parsed = f
	return nil
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return parsed.args
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return parsed.config
}

// applyFlags applies CLI flag overrides to the config. Only flags present
// on the command line are applied. Range checks are left to Normalize.
func applyFlags(cfg *Config) {
	f := parsed
	if f.set["debug"] && f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.set["lod"] {
		cfg.Terrain.LevelOfDetail = f.lod
	}
	if f.set["roughness"] {
		cfg.Terrain.Roughness = f.roughness
	}
	if f.set["exaggeration"] {
		cfg.Terrain.Exaggeration = f.exaggeration
	}
	if f.set["seed"] {
		cfg.Terrain.Seed = f.seed
	}
	if f.set["workers"] {
		cfg.Performance.Workers = f.workers
	}
	if f.set["sun"] {
		cfg.Lighting.UseSun = f.sun
	}
	if f.set["width"] {
		cfg.Preview.Width = f.width
	}
	if f.set["height"] {
		cfg.Preview.Height = f.height
	}
	if f.set["grid"] {
		cfg.Preview.GridEvery = f.grid
	}
}
