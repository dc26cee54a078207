// Package config loads firewxd service configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Data is the loaded service configuration with defaults applied.
type Data struct {
	ListenAddr   string
	HTTPPort     int
	DatabasePath string
	DefaultFuel  string
	Debug        bool
}

// Provider loads service configuration from a backing source.
type Provider interface {
	LoadConfig() (*Data, error)
}

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the service configuration from the YAML file. Missing
// fields take defaults; only an unreadable or malformed file is an error.
func (y *YAMLProvider) LoadConfig() (*Data, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yamlConfig struct {
		ListenAddr   string `yaml:"listen_addr,omitempty"`
		HTTPPort     int    `yaml:"http_port,omitempty"`
		DatabasePath string `yaml:"database_path,omitempty"`
		DefaultFuel  string `yaml:"default_fuel,omitempty"`
		Debug        bool   `yaml:"debug,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	config := &Data{
		ListenAddr:   yamlConfig.ListenAddr,
		HTTPPort:     yamlConfig.HTTPPort,
		DatabasePath: yamlConfig.DatabasePath,
		DefaultFuel:  yamlConfig.DefaultFuel,
		Debug:        yamlConfig.Debug,
	}
	config.applyDefaults()

	return config, nil
}

func (c *Data) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = "0.0.0.0"
	}
	if c.HTTPPort == 0 {
		c.HTTPPort = 8080
	}
	if c.DefaultFuel == "" {
		c.DefaultFuel = "pasture_grass"
	}
}

// Defaults returns a configuration with every default applied, used when no
// config file is given.
func Defaults() *Data {
	c := &Data{}
	c.applyDefaults()
	return c
}
