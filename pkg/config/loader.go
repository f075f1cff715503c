package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file. Keys missing from the file keep their default values.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := LoadFromBytes(content)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}

	return config, nil
}

func LoadFromBytes(content []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrap(err, "yaml parsing error")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
