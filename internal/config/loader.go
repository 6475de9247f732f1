package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Files only need to name the values they override.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePlatformer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if cfg, err := parsePlatformer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePlatformer overlays YAML data onto the hardcoded defaults and validates the result.
func parsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
