package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gompdf/danfe/internal/logger"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Kind of documents a batch renders
type Kind string

const (
	KindDANFE Kind = "danfe"
	KindCCe   Kind = "cce"
)

// Emitter is the issuer block printed on correction letters
type Emitter struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	District string `yaml:"district"`
	City     string `yaml:"city"`
	State    string `yaml:"state" validate:"omitempty,len=2,alpha"`
	Phone    string `yaml:"phone"`
}

// Config holds the settings of a batch run
type Config struct {
	InputDir        string  `yaml:"input_dir" validate:"required"`
	OutputDir       string  `yaml:"output_dir" validate:"required"`
	Kind            Kind    `yaml:"kind" validate:"oneof=danfe cce"`
	Layout          string  `yaml:"layout" validate:"oneof=ICMS ICMS_ST ICMS_IPI"`
	ReceiptPosition string  `yaml:"receipt_position" validate:"oneof=top bottom"`
	Logo            string  `yaml:"logo"`
	MaxConcurrency  int     `yaml:"max_concurrency" validate:"min=1,max=32"`
	Title           string  `yaml:"title"`
	Author          string  `yaml:"author"`
	Emitter         Emitter `yaml:"emitter"`
	Debug           bool    `yaml:"debug"`
}

// NewDefaultConfig returns the settings used when no file is given
func NewDefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file, fills unset fields with defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset option
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./XML"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./PDF"
	}
	if cfg.Kind == "" {
		cfg.Kind = KindDANFE
	}
	if cfg.Layout == "" {
		cfg.Layout = "ICMS_IPI"
	}
	if cfg.ReceiptPosition == "" {
		cfg.ReceiptPosition = "top"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.Title == "" {
		cfg.Title = "DANFE"
		if cfg.Kind == KindCCe {
			cfg.Title = "DACCe"
		}
	}
}

// Validate checks the config against its field constraints
func (cfg *Config) Validate() error {
	logger.Debug("validating config", "input_dir", cfg.InputDir, "kind", cfg.Kind)
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
