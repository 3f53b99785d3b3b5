package config

import "time"

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents .pipeloop.yaml.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Color selects when rendered maps are coloured.
	Color string `yaml:"color"`
	// Frames animates the flood fill while solving.
	Frames bool `yaml:"frames"`
	// FrameDelay is the pause between animation frames, e.g. "2s".
	FrameDelay time.Duration `yaml:"frame_delay"`
}
