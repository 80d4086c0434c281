package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "jet.yaml"

// LoadJet loads the game configuration.
// Search order: customPath -> ~/.jet/configs/jet.yaml -> ./configs/jet.yaml -> embedded default
func LoadJet(customPath string) (JetConfig, error) {
	return load(customPath, userConfigPath(configFile), filepath.Join("configs", configFile))
}

func load(customPath string, searchPaths ...string) (JetConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JetConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return JetConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local directories; unreadable or broken files are skipped
	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultJetYAML)
	if err != nil {
		return DefaultJetConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults, so partial files only
// override the keys they name, and validates the result.
func Parse(data []byte) (JetConfig, error) {
	cfg := DefaultJetConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JetConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JetConfig{}, err
	}
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg JetConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jet", "configs", filename)
}
