package config

import (
	"os"
	"strconv"

	"github.com/TFMV/nowgen/dataset"
	"github.com/TFMV/nowgen/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the generator configuration
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Cases  []CaseConfig `yaml:"cases"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`    // "json" or "console"
	FilePath string `yaml:"file_path"` // Path to log file; empty means stderr only
	Console  bool   `yaml:"console"`   // Whether to log to console
}

// OutputConfig represents where and how tables are written
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Compression string `yaml:"compression"` // parquet codec: snappy, zstd, gzip, brotli, lz4, none
}

// CaseConfig represents one build-and-write invocation
type CaseConfig struct {
	Scale    string `yaml:"scale"`
	Samples  int    `yaml:"samples"`
	Filename string `yaml:"filename"`
}

// LoadDefaultConfig returns a default configuration: the four reference
// cases of the file-size study, snappy-compressed.
func LoadDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Console: true,
		},
		Output: OutputConfig{
			Dir:         "parquet-file-sizes",
			Compression: "snappy",
		},
		Cases: []CaseConfig{
			{Scale: "day", Samples: 100, Filename: "example1.parquet"},
			{Scale: "day", Samples: 500, Filename: "example2.parquet"},
			{Scale: "week", Samples: 100, Filename: "example3.parquet"},
			{Scale: "week", Samples: 500, Filename: "example4.parquet"},
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.New(ErrConfigFileReadFailed, "failed to read config file", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.New(ErrConfigFileParseFailed, "failed to parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.New(ErrConfigValidationFailed, "configuration validation failed", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return errors.New(ErrOutputDirRequired, "output dir is required", nil)
	}

	if len(c.Cases) == 0 {
		return errors.New(ErrNoCasesConfigured, "at least one generation case is required", nil)
	}

	for i, cs := range c.Cases {
		if err := cs.Validate(); err != nil {
			return errors.New(ErrCaseValidationFailed, "case validation failed", err).
				AddContext("case_index", strconv.Itoa(i))
		}
	}

	return nil
}

// Validate validates one generation case
func (cs *CaseConfig) Validate() error {
	scale, err := dataset.ParseScale(cs.Scale)
	if err != nil {
		return err
	}

	spec := dataset.Spec{Scale: scale, Samples: cs.Samples}
	if err := spec.Validate(); err != nil {
		return err
	}

	if cs.Filename == "" {
		return errors.New(ErrCaseFilenameRequired, "case filename is required", nil)
	}

	return nil
}

// Spec converts a validated case to a dataset spec
func (cs *CaseConfig) Spec() (dataset.Spec, error) {
	scale, err := dataset.ParseScale(cs.Scale)
	if err != nil {
		return dataset.Spec{}, err
	}
	return dataset.Spec{Scale: scale, Samples: cs.Samples}, nil
}
