package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cbcrgen.yaml configuration. It is built
// once at startup and passed to the transport read-only; nothing mutates
// it afterwards.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Upload UploadConfig `yaml:"upload"`
}

// ServerConfig controls the HTTP upload service.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// UploadConfig constrains what the transport accepts before the converter
// runs.
type UploadConfig struct {
	MaxSizeBytes      int64    `yaml:"max_size_bytes"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// Load reads a cbcrgen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given: the
// regulation's 16 MiB ceiling and the two Excel extensions.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Upload: UploadConfig{
			MaxSizeBytes:      16 << 20,
			AllowedExtensions: []string{".xlsx", ".xls"},
		},
	}
}

// applyDefaults fills any field the file left unset.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Listen == "" {
		c.Server.Listen = d.Server.Listen
	}
	if c.Upload.MaxSizeBytes == 0 {
		c.Upload.MaxSizeBytes = d.Upload.MaxSizeBytes
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = d.Upload.AllowedExtensions
	}
}

// AllowsFilename reports whether the upload filename carries an allowed
// extension.
func (c *Config) AllowsFilename(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Upload.AllowedExtensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
