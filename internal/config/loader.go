package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "stealth.yaml"

// LoadStealth loads the stealth game configuration.
// Search order: customPath -> ~/.openstate/configs/stealth.yaml ->
// ./configs/stealth.yaml -> embedded default. The result is always validated.
func LoadStealth(customPath string) (StealthConfig, error) {
	var cfg StealthConfig

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return c, nil
	}

	return EmbeddedStealth(), nil
}

// EmbeddedStealth returns the embedded default YAML, or the hardcoded
// defaults if the embedded file cannot be parsed.
func EmbeddedStealth() StealthConfig {
	var cfg StealthConfig
	if err := yaml.Unmarshal(defaultStealthYAML, &cfg); err != nil {
		return DefaultStealthConfig()
	}
	cfg.Validate()
	return cfg
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (StealthConfig, bool) {
	var cfg StealthConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".openstate", "configs", filename)
}
