// Package config handles gallery configuration loading and management.
package config

import "time"

// Config holds all gallery settings.
type Config struct {
	Gallery  GalleryConfig  `yaml:"gallery"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GalleryConfig holds image set and transition settings.
type GalleryConfig struct {
	ImageSource        string        `yaml:"image_source"`         // Directory of images to show
	MaxPlaneWidth      float32       `yaml:"max_plane_width"`      // Aspect-preserving fit bounds (world units)
	MaxPlaneHeight     float32       `yaml:"max_plane_height"`
	SegmentsX          int           `yaml:"segments_x"`           // Plane subdivisions per axis
	SegmentsY          int           `yaml:"segments_y"`
	TransitionDuration time.Duration `yaml:"transition_duration"`  // Wall-clock length of one transition
	TransitionDelay    time.Duration `yaml:"transition_delay"`     // Offset before both tweens start
	AutoAdvance        bool          `yaml:"auto_advance"`
	AutoAdvanceDelay   time.Duration `yaml:"auto_advance_delay"`
	Shuffle            bool          `yaml:"shuffle"`
	PreloadRadius      int           `yaml:"preload_radius"`       // Images preloaded each direction
	Seed               int64         `yaml:"seed"`                 // 0 means time-based
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Gallery: GalleryConfig{
			ImageSource:        "images",
			MaxPlaneWidth:      100,
			MaxPlaneHeight:     60,
			SegmentsX:          40,
			SegmentsY:          40,
			TransitionDuration: 1500 * time.Millisecond,
			TransitionDelay:    0,
			AutoAdvance:        false,
			AutoAdvanceDelay:   5 * time.Second,
			Shuffle:            false,
			PreloadRadius:      2,
			Seed:               0,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
