// Package config holds the TOML configuration of the lvseg command.
package config

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Input formats.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains configuration options.
type Config struct {
	Segment Segment `toml:"segment" json:"segment"`
	Input   Input   `toml:"input" json:"input"`
	Log     Log     `toml:"log" json:"log"`
	Status  Status  `toml:"status" json:"status"`
}

// Segment is the segment section of the config.
type Segment struct {
	// Threshold constant c. Larger values give larger segments.
	Scale float64 `toml:"scale" json:"scale"`
	// Minimum segment size; zero or negative disables the cleanup pass.
	MinSize int `toml:"min-size" json:"min-size"`
}

// Input is the input section of the config.
type Input struct {
	// Edge list format. one of auto, csv, or json.
	Format string `toml:"format" json:"format"`
	// Element count for CSV input; zero or negative infers it from the edges.
	Vertices int `toml:"vertices" json:"vertices"`
}

// Log is the log section of the config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Log file; empty means stderr.
	File string `toml:"file" json:"file"`
}

// Status is the status section of the config.
type Status struct {
	// Prometheus textfile written after a run; empty disables it.
	MetricsFile string `toml:"metrics-file" json:"metrics-file"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Segment: Segment{
			Scale:   1,
			MinSize: -1,
		},
		Input: Input{
			Format: FormatAuto,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load decodes the TOML file at path over the current values of c.
// Keys that do not map to a field are reported as an error.
func (c *Config) Load(path string) error {
	metaData, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := metaData.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Wrapf(ErrInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return nil
}

// Valid checks the values of c.
func (c *Config) Valid() error {
	if !(c.Segment.Scale > 0) || math.IsInf(c.Segment.Scale, 0) {
		return errors.Wrapf(ErrInvalidConfig, "segment.scale %v must be finite and positive", c.Segment.Scale)
	}
	switch c.Input.Format {
	case FormatAuto, FormatCSV, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "input.format %q, want auto, csv or json", c.Input.Format)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.format %q, want text, json or console", c.Log.Format)
	}

	return nil
}
