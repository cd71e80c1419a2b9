package cli

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"deedles.dev/xshape/format"
)

// EnvPrefix is the prefix of the environment variables read by
// LoadConfig, e.g. XSHAPE_FORMAT.
const EnvPrefix = "XSHAPE"

// Config holds the settings shared by every command. Values come from
// the environment and may be overridden by flags.
type Config struct {
	// Format is the name of the notation used to draw shapes.
	// Env: XSHAPE_FORMAT (default: literal)
	Format string `envconfig:"FORMAT" default:"literal"`

	// Output is either "text" or "yaml".
	// Env: XSHAPE_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`

	// LogLevel is a zap level name.
	// Env: XSHAPE_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

// LoadConfig loads a Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the format and output names are known.
func (c Config) Validate() error {
	if _, ok := format.ByName(c.Format); !ok {
		return fmt.Errorf("unknown format %q: valid values are literal, box", c.Format)
	}
	switch c.Output {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output %q: valid values are text, yaml", c.Output)
	}
}
