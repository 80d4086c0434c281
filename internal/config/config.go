// Package config provides YAML-based configuration loading and difficulty
// presets for Jet Defender.
package config

import (
	"errors"
	"fmt"
)

// JetConfig contains all tunables for the shooter. Distances are logical
// units, speeds are units per second and durations are milliseconds.
type JetConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Player   PlayerConfig   `yaml:"player"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Powerups PowerupConfig  `yaml:"powerups"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Effects  EffectsConfig  `yaml:"effects"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// ViewportConfig fixes the logical play area. Zero values mean the area is
// derived from the terminal or window size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the craft center from the bottom edge
	FireCooldown float64 `yaml:"fire_cooldown"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	MuzzleFactor float64 `yaml:"muzzle_factor"` // Spawn y = player.y - size*factor
	SpreadOffset float64 `yaml:"spread_offset"` // Double shot x offset
	SpreadSpeed  float64 `yaml:"spread_speed"`  // Double shot horizontal speed
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	MinSize     float64 `yaml:"min_size"`
	SizeRange   float64 `yaml:"size_range"`
	SpawnY      float64 `yaml:"spawn_y"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedRange  float64 `yaml:"speed_range"`
	LevelSpeed  float64 `yaml:"level_speed"` // Added per level above the first
	MaxRotation float64 `yaml:"max_rotation"`
	Variants    int     `yaml:"variants"`
}

// PowerupConfig defines drops and their effect durations.
type PowerupConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Size       float64 `yaml:"size"`
	FallSpeed  float64 `yaml:"fall_speed"`
	DoubleShot float64 `yaml:"double_shot"`
	Shield     float64 `yaml:"shield"`
}

// SpawnConfig defines the enemy spawn timer.
type SpawnConfig struct {
	Interval     float64 `yaml:"interval"`
	IntervalStep float64 `yaml:"interval_step"` // Subtracted on every level up
	MinInterval  float64 `yaml:"min_interval"`
	MaxBurst     int     `yaml:"max_burst"`
}

// GameplayConfig defines scoring, lives and levels.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	KillPoints  int     `yaml:"kill_points"`
	LevelPoints int     `yaml:"level_points"` // Score threshold per level
	LevelBonus  int     `yaml:"level_bonus"`  // Bonus multiplied by the new level
	MaxLevel    int     `yaml:"max_level"`
	MaxFrame    float64 `yaml:"max_frame"` // Frame delta clamp
}

// EffectsConfig defines cosmetic particle and starfield parameters.
type EffectsConfig struct {
	ShieldBlock       int     `yaml:"shield_block"`
	PlayerHit         int     `yaml:"player_hit"`
	BulletHit         int     `yaml:"bullet_hit"`
	Kill              int     `yaml:"kill"`
	Pickup            int     `yaml:"pickup"`
	ParticleSpeed     float64 `yaml:"particle_speed"`
	ParticleLife      float64 `yaml:"particle_life"`
	ParticleLifeRange float64 `yaml:"particle_life_range"`
	ParticleMinSize   float64 `yaml:"particle_min_size"`
	ParticleSizeRange float64 `yaml:"particle_size_range"`
	Stars             int     `yaml:"stars"`
	FlashDuration     float64 `yaml:"flash_duration"`
}

// TerminalConfig maps terminal cells to logical units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset, normal first.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyNormal, DifficultyEasy, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Board returns the leaderboard id for scores played under the preset.
func (p DifficultyPreset) Board() string {
	if p == "" || p == DifficultyNormal {
		return "jet"
	}
	return "jet:" + string(p)
}

// ApplyPreset adjusts a configuration for a difficulty preset.
// Presets change starting parameters only; the level rule stays the same.
func ApplyPreset(cfg JetConfig, preset DifficultyPreset) JetConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Spawn.Interval += 300
		cfg.Enemies.BaseSpeed *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = max(cfg.Gameplay.Lives-1, 1)
		cfg.Spawn.Interval = max(cfg.Spawn.Interval-300, cfg.Spawn.MinInterval)
		cfg.Enemies.BaseSpeed *= 1.25
	case DifficultyFixed:
		// Stay on level 1 for the whole run.
		cfg.Gameplay.MaxLevel = 1
	}
	return cfg
}

// Validate reports every invalid field at once.
func (c JetConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Viewport.Width >= 0 && c.Viewport.Height >= 0, "viewport: size must not be negative")
	check(c.Player.Size > 0, "player.size must be positive, got %v", c.Player.Size)
	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Player.FireCooldown >= 0, "player.fire_cooldown must not be negative")
	check(c.Bullets.Size > 0, "bullets.size must be positive, got %v", c.Bullets.Size)
	check(c.Bullets.Speed > 0, "bullets.speed must be positive, got %v", c.Bullets.Speed)
	check(c.Enemies.MinSize > 0, "enemies.min_size must be positive, got %v", c.Enemies.MinSize)
	check(c.Enemies.SizeRange >= 0, "enemies.size_range must not be negative")
	check(c.Enemies.BaseSpeed > 0, "enemies.base_speed must be positive, got %v", c.Enemies.BaseSpeed)
	check(c.Enemies.Variants > 0, "enemies.variants must be positive, got %d", c.Enemies.Variants)
	check(c.Powerups.DropChance >= 0 && c.Powerups.DropChance <= 1, "powerups.drop_chance must be in [0, 1], got %v", c.Powerups.DropChance)
	check(c.Powerups.Size > 0, "powerups.size must be positive, got %v", c.Powerups.Size)
	check(c.Powerups.DoubleShot >= 0 && c.Powerups.Shield >= 0, "powerups: durations must not be negative")
	check(c.Spawn.Interval > 0, "spawn.interval must be positive, got %v", c.Spawn.Interval)
	check(c.Spawn.MinInterval > 0, "spawn.min_interval must be positive, got %v", c.Spawn.MinInterval)
	check(c.Spawn.MaxBurst > 0, "spawn.max_burst must be positive, got %d", c.Spawn.MaxBurst)
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.MaxLevel >= 1, "gameplay.max_level must be at least 1, got %d", c.Gameplay.MaxLevel)
	check(c.Gameplay.LevelPoints > 0, "gameplay.level_points must be positive, got %d", c.Gameplay.LevelPoints)
	check(c.Gameplay.KillPoints >= 0 && c.Gameplay.LevelBonus >= 0, "gameplay: points must not be negative")
	check(c.Gameplay.MaxFrame > 0, "gameplay.max_frame must be positive, got %v", c.Gameplay.MaxFrame)
	check(c.Terminal.CellWidth > 0 && c.Terminal.CellHeight > 0, "terminal: cell size must be positive")
	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
