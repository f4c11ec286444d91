package logscan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Defaults used by DefaultConfig.
const (
	DefaultThreshold  = 10
	DefaultLogFile    = "sample.log"
	DefaultOutputFile = "log_analysis_results.csv"
)

// Config controls where logs are read from, where results go, and what
// counts as suspicious.
type Config struct {
	// LogFile is the log to analyze when none is given explicitly.
	LogFile string `yaml:"log_file"`
	// OutputFile is where the CSV export is written.
	OutputFile string `yaml:"output_file"`
	// Threshold is the number of failed logins an IP may have before it is
	// reported. Only counts strictly greater than Threshold are reported.
	Threshold int `yaml:"threshold"`
	// FailureMarkers are the substrings that mark a failed login.
	FailureMarkers []string `yaml:"failure_markers"`
}

// DefaultConfig returns the configuration used when nothing else is
// specified.
func DefaultConfig() Config {
	return Config{
		LogFile:        DefaultLogFile,
		OutputFile:     DefaultOutputFile,
		Threshold:      DefaultThreshold,
		FailureMarkers: append([]string(nil), DefaultFailureMarkers...),
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if c.OutputFile == "" {
		return errors.New("output_file must not be empty")
	}
	for _, m := range c.FailureMarkers {
		if m != "" {
			return nil
		}
	}
	return errors.New("failure_markers must contain at least one non-empty marker")
}

// Matcher returns a Matcher using the configured failure markers.
func (c Config) Matcher() *Matcher {
	return NewMatcher(c.FailureMarkers...)
}
