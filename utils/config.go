package utils

import (
	"encoding/json"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-fixpoint/model"
)

const (
	EnvConfigPath     = "GOL_CONFIG"
	EnvRenderer       = "GOL_RENDERER"
	EnvMaxGenerations = "GOL_MAX_GENERATIONS"
	EnvPatternFile    = "GOL_PATTERN_FILE"

	DefaultConfigPath = "config.json"
)

// Config holds the configuration for a run
type Config struct {
	Renderer       string   `json:"renderer"`
	Patterns       []string `json:"patterns"`
	PatternFile    string   `json:"pattern_file"`
	UseParallel    bool     `json:"use_parallel"`
	UseMemoryPool  bool     `json:"use_memory_pool"`
	MaxGenerations int      `json:"max_generations"`
	RandomWidth    int      `json:"random_width"`
	RandomHeight   int      `json:"random_height"`
	RandomDensity  float64  `json:"random_density"`
	RandomSeed     int64    `json:"random_seed"`
}

// DefaultConfig runs the three demonstration seeds with the text renderer
func DefaultConfig() Config {
	return Config{
		Renderer:       model.RendererText,
		Patterns:       []string{"pattern1", "block", "glider"},
		UseParallel:    false,
		UseMemoryPool:  true,
		MaxGenerations: 0, // run until the grid settles
		RandomWidth:    0, // random seeding off unless both sizes are set
		RandomHeight:   0,
		RandomDensity:  0.15,
		RandomSeed:     1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides file values with GOL_* environment variables
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvRenderer); v != "" {
		c.Renderer = v
	}
	if v := getenv(EnvPatternFile); v != "" {
		c.PatternFile = v
	}
	if v := getenv(EnvMaxGenerations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "[ApplyEnv] bad %s: %+v", EnvMaxGenerations, v)
		}
		c.MaxGenerations = n
	}
	return nil
}

// Validate checks values that would otherwise fail mid-run
func (c Config) Validate() error {
	if c.Renderer != "" && !slices.Contains(model.RendererNames(), strings.ToLower(c.Renderer)) {
		return errors.Errorf("[Validate] unknown renderer: %+v", c.Renderer)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must be >= 0, got %d", c.MaxGenerations)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if c.RandomWidth < 0 || c.RandomHeight < 0 {
		return errors.Errorf("[Validate] random size must be >= 0, got %dx%d", c.RandomHeight, c.RandomWidth)
	}
	return nil
}

// RandomEnabled reports whether a random seed grid was requested
func (c Config) RandomEnabled() bool {
	return c.RandomWidth > 0 && c.RandomHeight > 0
}
