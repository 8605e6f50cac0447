// Package config loads and validates reel tuning
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/parameter"
)

// ErrInvalidConfig marks a configuration that cannot start a spin
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full tuning surface; zero-valued fields in a file keep their defaults
type Config struct {
	TileSize       float64            `yaml:"tile_size"`
	VisibleCount   int                `yaml:"visible_count"`
	SpinDuration   time.Duration      `yaml:"spin_duration"`
	BaseSpeed      float64            `yaml:"base_speed"`
	AlignThreshold float64            `yaml:"align_threshold"`
	AlignRate      float64            `yaml:"align_rate"`
	RevealStep     float64            `yaml:"reveal_step"`
	SettleDelay    time.Duration      `yaml:"settle_delay"`
	Symbols        []string           `yaml:"symbols"`
	ReferencePoint *float64           `yaml:"reference_point"` // nil: anchor of the middle visible slot
	Paytable       map[string]float64 `yaml:"paytable"`
	Seed           uint64             `yaml:"seed"` // 0: random
	Audio          bool               `yaml:"audio"`
	HTTPAddr       string             `yaml:"http_addr"`
	Log            logger.Config      `yaml:"log"`
}

// Default returns the stock tuning
func Default() Config {
	symbols := make([]string, len(parameter.DefaultSymbols))
	copy(symbols, parameter.DefaultSymbols)

	return Config{
		TileSize:       parameter.TileSize,
		VisibleCount:   parameter.VisibleCount,
		SpinDuration:   parameter.SpinDuration,
		BaseSpeed:      parameter.SpinBaseSpeed,
		AlignThreshold: parameter.AlignThreshold,
		AlignRate:      parameter.AlignRate,
		RevealStep:     parameter.RevealStep,
		SettleDelay:    parameter.SettleDelay,
		Symbols:        symbols,
		Audio:          true,
		Log:            logger.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML onto cfg and validates it
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Validate reports the first setting that would make spinning meaningless
// All returned errors wrap ErrInvalidConfig
func (c *Config) Validate() error {
	switch {
	case !(c.TileSize > 0):
		return fmt.Errorf("%w: tile_size %v must be positive", ErrInvalidConfig, c.TileSize)
	case c.VisibleCount <= 0:
		return fmt.Errorf("%w: visible_count %d must be positive", ErrInvalidConfig, c.VisibleCount)
	case c.SpinDuration <= 0:
		return fmt.Errorf("%w: spin_duration %v must be positive", ErrInvalidConfig, c.SpinDuration)
	case c.BaseSpeed < 0:
		return fmt.Errorf("%w: base_speed %v must not be negative", ErrInvalidConfig, c.BaseSpeed)
	case !(c.AlignThreshold > 0):
		return fmt.Errorf("%w: align_threshold %v must be positive", ErrInvalidConfig, c.AlignThreshold)
	case !(c.AlignRate > 0 && c.AlignRate <= 1):
		// Outside (0,1] alignment overshoots or never moves
		return fmt.Errorf("%w: align_rate %v must be in (0,1]", ErrInvalidConfig, c.AlignRate)
	case !(c.RevealStep > 0):
		return fmt.Errorf("%w: reveal_step %v must be positive", ErrInvalidConfig, c.RevealStep)
	case c.SettleDelay < 0:
		return fmt.Errorf("%w: settle_delay %v must not be negative", ErrInvalidConfig, c.SettleDelay)
	case len(c.Symbols) == 0:
		return fmt.Errorf("%w: symbols must not be empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Symbols))
	for _, s := range c.Symbols {
		if s == "" {
			return fmt.Errorf("%w: empty symbol key", ErrInvalidConfig)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidConfig, s)
		}
		seen[s] = struct{}{}
	}
	for s := range c.Paytable {
		if _, ok := seen[s]; !ok {
			return fmt.Errorf("%w: paytable symbol %q not on the reel", ErrInvalidConfig, s)
		}
	}
	return nil
}

// Reference returns the x position the winning tile is measured against
func (c Config) Reference() float64 {
	if c.ReferencePoint != nil {
		return *c.ReferencePoint
	}
	return c.TileSize * float64(c.VisibleCount/2)
}

// WindowWidth is the visible reel width in pixels
func (c Config) WindowWidth() float64 {
	return c.TileSize * float64(c.VisibleCount)
}
