package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBind = "0.0.0.0"
	DefaultPort = 8080
)

// Config holds server settings loaded from YAML; CLI flags override it.
type Config struct {
	Bind      string `yaml:"bind"`
	Port      int    `yaml:"port"`
	AccessLog string `yaml:"access_log"`
	Metrics   bool   `yaml:"metrics"`
}

func DefaultConfig() *Config {
	return &Config{
		Bind:    DefaultBind,
		Port:    DefaultPort,
		Metrics: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
