package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "sbasic.yml"

// Config holds the settings of the command line driver
type Config struct {
	LogLevel string `yaml:"log_level"`
	Trace    bool   `yaml:"trace"`
	// Color forces diagnostics colouring on or off; nil means detect the terminal.
	Color    *bool `yaml:"color"`
	MaxSteps int   `yaml:"max_steps"`
}

func DefaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

// LoadConfig reads a YAML config file on top of the defaults. Unknown keys
// are rejected.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}

// Level is the configured log level; Trace forces logrus.TraceLevel
func (c *Config) Level() (logrus.Level, error) {
	if c.Trace {
		return logrus.TraceLevel, nil
	}
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.LogLevel)
}

// NewLogger builds a text logger writing to w at the configured level
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}
