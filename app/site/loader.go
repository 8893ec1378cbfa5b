package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the site seed file. A missing file is not an error: the site
// then runs with whatever is already in the database.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", path, err)
	}

	return config, nil
}

func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	for i, item := range config.Navigation {
		if item.Label == "" {
			return fmt.Errorf("navigation item at index %d: label is required", i)
		}
		if item.URL == "" {
			return fmt.Errorf("navigation item at index %d: url is required", i)
		}
	}
	return nil
}
