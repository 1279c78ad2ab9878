// Package config provides configuration loading and management for dkimaps.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Processing parameters
	Processing struct {
		// NumWorkers specifies how many goroutines to use for the per-voxel stages
		NumWorkers int `yaml:"numWorkers"`

		// MedianFilter enables the outlier median post-filter
		MedianFilter bool `yaml:"medianFilter"`

		// ViolationThreshold is the fraction of in-mask voxels that must be
		// flagged before the median filter activates
		ViolationThreshold float64 `yaml:"violationThreshold"`

		// FilterKernelSize is the cubic neighborhood edge length, in voxels
		FilterKernelSize int `yaml:"filterKernelSize"`
	} `yaml:"processing"`

	// Kurtosis bounds
	Kurtosis struct {
		// KMin is the lower clamp bound of the MKT map
		KMin float64 `yaml:"kMin"`

		// KMax is the upper clamp bound of the MKT map
		KMax float64 `yaml:"kMax"`
	} `yaml:"kurtosis"`

	// Output parameters
	Output struct {
		// Dir is the directory the parameter maps are written to
		Dir string `yaml:"dir"`

		// ExportNpy additionally writes each map as an npy array
		ExportNpy bool `yaml:"exportNpy"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default processing parameters
	cfg.Processing.NumWorkers = runtime.NumCPU() // Use all available cores by default
	cfg.Processing.MedianFilter = false
	cfg.Processing.ViolationThreshold = 0.10
	cfg.Processing.FilterKernelSize = 3

	// Set default kurtosis bounds
	cfg.Kurtosis.KMin = 0
	cfg.Kurtosis.KMax = 3

	// Set default output parameters
	cfg.Output.Dir = "dki_maps"
	cfg.Output.ExportNpy = false
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
