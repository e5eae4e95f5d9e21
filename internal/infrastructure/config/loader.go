package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game    *GameSettings
	Map     *MapConfig
	Towers  *TowersConfig
	Enemies *EnemiesConfig
	Waves   *WavesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// decode reads name from the loader's filesystem into v
func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameSettings, error) {
	var cfg GameSettings
	if err := l.decode("game.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMap loads map.json
func (l *Loader) LoadMap() (*MapConfig, error) {
	var cfg MapConfig
	if err := l.decode("map.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTowers loads towers.json
func (l *Loader) LoadTowers() (*TowersConfig, error) {
	var cfg TowersConfig
	if err := l.decode("towers.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnemies loads enemies.json
func (l *Loader) LoadEnemies() (*EnemiesConfig, error) {
	var cfg EnemiesConfig
	if err := l.decode("enemies.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWaves loads waves.json
func (l *Loader) LoadWaves() (*WavesConfig, error) {
	var cfg WavesConfig
	if err := l.decode("waves.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads and validates every configuration file
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	mapCfg, err := l.LoadMap()
	if err != nil {
		return nil, err
	}

	towers, err := l.LoadTowers()
	if err != nil {
		return nil, err
	}

	enemies, err := l.LoadEnemies()
	if err != nil {
		return nil, err
	}

	waves, err := l.LoadWaves()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Game:    game,
		Map:     mapCfg,
		Towers:  towers,
		Enemies: enemies,
		Waves:   waves,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}

	return cfg, nil
}
