package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and run settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Simplification settings
	TargetReduction float64 `json:"target_reduction"`
	Workers         int     `json:"workers"`
	TimeoutSec      int     `json:"timeout_sec"`
	Retries         int     `json:"retries"`

	// Preview settings
	Preview     bool `json:"preview"`
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir        string
	OutputDir       string
	TargetReduction float64
	Workers         int
	Preview         bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TargetReduction > 0 {
		c.TargetReduction = flags.TargetReduction
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Preview {
		c.Preview = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "simplified"
	}
	if c.TargetReduction <= 0 {
		c.TargetReduction = 0.5
	}
	if c.TargetReduction > 1 {
		c.TargetReduction = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = 120
	}
	// Negative retries pass through: task.Run reads them as "no retries".
	if c.Retries == 0 {
		c.Retries = 2
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}
