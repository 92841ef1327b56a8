// Package config handles terrain generator configuration loading and
// management.
package config

// Config holds all generator settings.
type Config struct {
	Terrain     TerrainConfig     `yaml:"terrain"`
	Lighting    LightingConfig    `yaml:"lighting"`
	Performance PerformanceConfig `yaml:"performance"`
	Preview     PreviewConfig     `yaml:"preview"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// TerrainConfig holds heightfield and mesh parameters.
type TerrainConfig struct {
	LevelOfDetail int     `yaml:"level_of_detail"`
	Roughness     float64 `yaml:"roughness"`
	Exaggeration  float64 `yaml:"exaggeration"`
	Seed          uint64  `yaml:"seed"` // 0 picks a time-based seed
}

// LightingConfig holds the point light. With UseSun the position is derived
// from the sun angles instead of Position.
type LightingConfig struct {
	Position     [3]float32 `yaml:"position"`
	Ambient      float32    `yaml:"ambient"`
	Diffuse      float32    `yaml:"diffuse"`
	UseSun       bool       `yaml:"use_sun"`
	SunLongitude float64    `yaml:"sun_longitude"`
	SunLatitude  float64    `yaml:"sun_latitude"`
	SunDistance  float32    `yaml:"sun_distance"`
}

// PerformanceConfig holds concurrency settings.
type PerformanceConfig struct {
	Workers int `yaml:"workers"` // 0 uses every CPU
}

// PreviewConfig holds settings for the PNG previews written by the CLI.
type PreviewConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Filter    string `yaml:"filter"`     // nearest, bilinear or catmullrom
	GridEvery int    `yaml:"grid_every"` // cell overlay spacing, 0 disables
	OutputDir string `yaml:"output_dir"`

	// Perspective view, angles in degrees
	CameraYaw   float64 `yaml:"camera_yaw"`
	CameraPitch float64 `yaml:"camera_pitch"`
	FieldOfView float64 `yaml:"field_of_view"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			LevelOfDetail: 5,
			Roughness:     0.5,
			Exaggeration:  0.7,
			Seed:          0,
		},
		Lighting: LightingConfig{
			Position:     [3]float32{3.6, 3.9, 0.6},
			Ambient:      0.3,
			Diffuse:      4.0,
			UseSun:       false,
			SunLongitude: 80,
			SunLatitude:  45,
			SunDistance:  5,
		},
		Performance: PerformanceConfig{
			Workers: 1,
		},
		Preview: PreviewConfig{
			Width:       512,
			Height:      512,
			Filter:      "nearest",
			OutputDir:   ".",
			CameraYaw:   45,
			CameraPitch: 35,
			FieldOfView: 45,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
