package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const dragonConfigFile = "dragon.yaml"

// LoadDragon loads the Dragon's Ascent configuration.
// Search order: customPath -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func LoadDragon(customPath string) (DragonConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseDragon(data)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files in the implicit locations are skipped rather than fatal
	if userCfgPath := userConfigPath(dragonConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDragon(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", dragonConfigFile)); err == nil {
		if cfg, err := ParseDragon(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseDragon(defaultDragonYAML)
	if err != nil {
		return DefaultDragonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// enemyOverlay captures the enemy rows of a file undecoded.
type enemyOverlay struct {
	Enemies map[string]yaml.Node `yaml:"enemies"`
}

// ParseDragon decodes YAML over the hardcoded defaults and validates the result.
// Enemy rows overlay their default row field by field; new types start from zero.
func ParseDragon(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DragonConfig{}, fmt.Errorf("parse: %w", err)
	}

	// yaml.v3 replaces whole map values, so redo each enemy row over its default
	var overlay enemyOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return DragonConfig{}, fmt.Errorf("parse: %w", err)
	}
	base := DefaultEnemyTable()
	for name, node := range overlay.Enemies {
		row := base[name]
		if err := node.Decode(&row); err != nil {
			return DragonConfig{}, fmt.Errorf("parse: enemies.%s: %w", name, err)
		}
		cfg.Enemies[name] = row
	}

	if err := cfg.Validate(); err != nil {
		return DragonConfig{}, err
	}
	return cfg, nil
}

// MarshalDragon encodes a configuration as YAML.
func MarshalDragon(cfg DragonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "configs", filename)
}

// ApplyDragonPreset modifies the config based on a difficulty preset.
func ApplyDragonPreset(cfg *DragonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
