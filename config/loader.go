package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the overlay file looked up in the user and working directories.
const ConfigFileName = "config.yaml"

// overlay maps YAML sections onto the global config values. Decoding into
// pointers to the globals keeps every field the file does not mention.
type overlay struct {
	Window    *Config          `yaml:"window"`
	Entity    *EntityConfig    `yaml:"entity"`
	Hero      *HeroConfig      `yaml:"hero"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Animation *AnimationConfig `yaml:"animation"`
	Combat    *CombatConfig    `yaml:"combat"`
	Collision *CollisionConfig `yaml:"collision"`
	Button    *ButtonConfig    `yaml:"button"`
	Menu      *MenuConfig      `yaml:"menu"`
	Playing   *PlayingConfig   `yaml:"playing"`
	HUD       *HUDConfig       `yaml:"hud"`
	GameOver  *GameOverConfig  `yaml:"gameOver"`
	Assets    *AssetsConfig    `yaml:"assets"`
	Audio     *AudioConfig     `yaml:"audio"`
	Sound     *SoundConfig     `yaml:"sound"`
}

func globals() *overlay {
	return &overlay{
		Window:    C,
		Entity:    &Entity,
		Hero:      &Hero,
		Enemy:     &Enemy,
		Animation: &Animation,
		Combat:    &Combat,
		Collision: &Collision,
		Button:    &Button,
		Menu:      &Menu,
		Playing:   &Playing,
		HUD:       &HUD,
		GameOver:  &GameOver,
		Assets:    &Assets,
		Audio:     &Audio,
		Sound:     &Sound,
	}
}

// Apply overlays YAML data onto the global configuration.
func Apply(data []byte) error {
	if err := yaml.Unmarshal(data, globals()); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load applies the first overlay file found.
// Search order: ~/.forest-adventure/config.yaml -> ./config.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
func Load() (string, error) {
	candidates := []string{}
	if p := userConfigPath(ConfigFileName); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, ConfigFileName)

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("failed to stat config %s: %w", path, err)
		}
		if err := LoadFile(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forest-adventure", filename)
}
