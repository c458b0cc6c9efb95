// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package config loads and validates the server configuration.
//
// Configuration is layered: built-in defaults, then the JSON config file
// (with its named-environment overrides applied), then environment
// variables. The file is required; a server with no config must not start.
package config

import "time"

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.json",
	"/etc/manypaintings/config.json",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvironmentEnvVar selects the named environment. The FLASK_* names are
// kept so existing deployments and launcher scripts keep working unchanged.
const EnvironmentEnvVar = "FLASK_CONFIG"

// DefaultEnvironment is used when FLASK_CONFIG is unset.
const DefaultEnvironment = "development"

// Config is the full application configuration. Section names match the
// top-level keys of config.json.
type Config struct {
	Flask           FlaskConfig           `koanf:"flask" json:"flask"`
	Application     ApplicationConfig     `koanf:"application" json:"application"`
	AnimationTiming AnimationTimingConfig `koanf:"animation_timing" json:"animation_timing"`
	LayerManagement LayerManagementConfig `koanf:"layer_management" json:"layer_management"`
	Transformations TransformationsConfig `koanf:"transformations" json:"transformations"`
	ColorRemapping  ColorRemappingConfig  `koanf:"color_remapping" json:"color_remapping"`
	Performance     PerformanceConfig     `koanf:"performance" json:"performance"`
	Audio           AudioConfig           `koanf:"audio" json:"audio"`
	MatteBorder     MatteBorderConfig     `koanf:"matte_border" json:"matte_border"`
	Logging         LoggingConfig         `koanf:"logging" json:"logging"`
}

// FlaskConfig holds the HTTP bind settings. The section keeps its legacy
// name because existing config.json files use it.
type FlaskConfig struct {
	Host  string `koanf:"host" json:"host" validate:"required"`
	Port  int    `koanf:"port" json:"port" validate:"min=1,max=65535"`
	Debug bool   `koanf:"debug" json:"debug"`
}

// ApplicationConfig holds file locations and general serving behavior.
type ApplicationConfig struct {
	ImageDirectory     string `koanf:"image_directory" json:"image_directory" validate:"required"`
	DataDirectory      string `koanf:"data_directory" json:"data_directory" validate:"required"`
	PatternSeed        string `koanf:"pattern_seed" json:"pattern_seed"`
	InitialPatternCode string `koanf:"initial_pattern_code" json:"initial_pattern_code"`
	EnableCaching      bool   `koanf:"enable_caching" json:"enable_caching"`
	CacheMaxAge        int    `koanf:"cache_max_age" json:"cache_max_age" validate:"min=0"`
	LazyLoading        bool   `koanf:"lazy_loading" json:"lazy_loading"`
}

// AnimationTimingConfig drives the frontend animation engine.
type AnimationTimingConfig struct {
	FPS                       int     `koanf:"fps" json:"fps" validate:"min=1,max=120"`
	FadeInSeconds             float64 `koanf:"fade_in_seconds" json:"fade_in_seconds" validate:"min=0"`
	FadeOutSeconds            float64 `koanf:"fade_out_seconds" json:"fade_out_seconds" validate:"min=0"`
	MinHoldSeconds            float64 `koanf:"min_hold_seconds" json:"min_hold_seconds" validate:"min=0"`
	MaxHoldSeconds            float64 `koanf:"max_hold_seconds" json:"max_hold_seconds" validate:"min=0"`
	LayerSpawnIntervalSeconds float64 `koanf:"layer_spawn_interval_seconds" json:"layer_spawn_interval_seconds" validate:"min=0"`
}

// LayerManagementConfig bounds how many images animate at once.
type LayerManagementConfig struct {
	MaxConcurrentImages int     `koanf:"max_concurrent_images" json:"max_concurrent_images" validate:"min=1"`
	PreloadBufferSize   int     `koanf:"preload_buffer_size" json:"preload_buffer_size" validate:"min=0"`
	MinOpacity          float64 `koanf:"min_opacity" json:"min_opacity" validate:"min=0,max=1"`
	MaxOpacity          float64 `koanf:"max_opacity" json:"max_opacity" validate:"min=0,max=1"`
}

// TransformationsConfig controls per-layer geometric variation.
type TransformationsConfig struct {
	Rotation    RotationConfig    `koanf:"rotation" json:"rotation"`
	Scale       ScaleConfig       `koanf:"scale" json:"scale"`
	Translation TranslationConfig `koanf:"translation" json:"translation"`
}

type RotationConfig struct {
	Enabled    bool    `koanf:"enabled" json:"enabled"`
	MaxDegrees float64 `koanf:"max_degrees" json:"max_degrees" validate:"min=0,max=360"`
}

type ScaleConfig struct {
	Enabled   bool    `koanf:"enabled" json:"enabled"`
	MinFactor float64 `koanf:"min_factor" json:"min_factor" validate:"min=0"`
	MaxFactor float64 `koanf:"max_factor" json:"max_factor" validate:"min=0"`
}

type TranslationConfig struct {
	Enabled    bool    `koanf:"enabled" json:"enabled"`
	MaxPercent float64 `koanf:"max_percent" json:"max_percent" validate:"min=0,max=100"`
}

// ColorRemappingConfig controls random hue-shifting of layers.
type ColorRemappingConfig struct {
	Enabled       bool    `koanf:"enabled" json:"enabled"`
	Probability   float64 `koanf:"probability" json:"probability" validate:"min=0,max=1"`
	HueShiftRange float64 `koanf:"hue_shift_range" json:"hue_shift_range" validate:"min=0,max=360"`
}

// PerformanceConfig holds rendering quality knobs, lowered on small boards.
type PerformanceConfig struct {
	AnimationQuality string `koanf:"animation_quality" json:"animation_quality" validate:"oneof=low medium high"`
	ThumbnailQuality int    `koanf:"thumbnail_quality" json:"thumbnail_quality" validate:"min=1,max=100"`
}

// AudioConfig drives the optional ambient audio track.
type AudioConfig struct {
	Enabled  bool    `koanf:"enabled" json:"enabled"`
	FilePath string  `koanf:"file_path" json:"file_path"`
	Volume   float64 `koanf:"volume" json:"volume" validate:"min=0,max=1"`
	Loop     bool    `koanf:"loop" json:"loop"`
}

// MatteBorderConfig frames the displayed painting like a gallery matte.
type MatteBorderConfig struct {
	Enabled       bool            `koanf:"enabled" json:"enabled"`
	BorderPercent float64         `koanf:"border_percent" json:"border_percent" validate:"min=0,max=50"`
	Color         string          `koanf:"color" json:"color"`
	Style         string          `koanf:"style" json:"style"`
	ImageArea     ImageAreaConfig `koanf:"image_area" json:"image_area"`
}

type ImageAreaConfig struct {
	AspectRatio string `koanf:"aspect_ratio" json:"aspect_ratio"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" json:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" json:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller" json:"caller"`
}

// ShutdownTimeout is how long graceful HTTP shutdown may take.
const ShutdownTimeout = 10 * time.Second

// defaultConfig returns the built-in defaults, overridden by the config
// file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Flask: FlaskConfig{
			Host:  "127.0.0.1",
			Port:  5000,
			Debug: false,
		},
		Application: ApplicationConfig{
			ImageDirectory:     "static/images",
			DataDirectory:      ".",
			PatternSeed:        "auto",
			InitialPatternCode: "",
			EnableCaching:      true,
			CacheMaxAge:        3600,
			LazyLoading:        true,
		},
		AnimationTiming: AnimationTimingConfig{
			FPS:                       30,
			FadeInSeconds:             15,
			FadeOutSeconds:            15,
			MinHoldSeconds:            5,
			MaxHoldSeconds:            30,
			LayerSpawnIntervalSeconds: 4,
		},
		LayerManagement: LayerManagementConfig{
			MaxConcurrentImages: 10,
			PreloadBufferSize:   5,
			MinOpacity:          0.4,
			MaxOpacity:          1.0,
		},
		Transformations: TransformationsConfig{
			Rotation:    RotationConfig{Enabled: true, MaxDegrees: 60},
			Scale:       ScaleConfig{Enabled: true, MinFactor: 0.5, MaxFactor: 1.0},
			Translation: TranslationConfig{Enabled: true, MaxPercent: 30},
		},
		ColorRemapping: ColorRemappingConfig{
			Enabled:       true,
			Probability:   0.3,
			HueShiftRange: 360,
		},
		Performance: PerformanceConfig{
			AnimationQuality: "high",
			ThumbnailQuality: 80,
		},
		Audio: AudioConfig{
			Enabled:  false,
			FilePath: "",
			Volume:   0.5,
			Loop:     true,
		},
		MatteBorder: MatteBorderConfig{
			Enabled:       true,
			BorderPercent: 10,
			Color:         "#F8F8F8",
			Style:         "classic",
			ImageArea:     ImageAreaConfig{AspectRatio: "1:1"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
