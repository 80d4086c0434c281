package config

import (
	_ "embed"
)

//go:embed defaults/jet.yaml
var defaultJetYAML []byte

// DefaultJetConfig returns the built-in configuration.
func DefaultJetConfig() JetConfig {
	return JetConfig{
		Player: PlayerConfig{
			Size:         64,
			Speed:        550,
			BottomOffset: 140,
			FireCooldown: 200,
		},
		Bullets: BulletConfig{
			Size:         22,
			Speed:        900,
			MuzzleFactor: 0.4,
			SpreadOffset: 18,
			SpreadSpeed:  80,
		},
		Enemies: EnemyConfig{
			MinSize:     40,
			SizeRange:   40,
			SpawnY:      -50,
			BaseSpeed:   80,
			SpeedRange:  120,
			LevelSpeed:  40,
			MaxRotation: 0.3,
			Variants:    3,
		},
		Powerups: PowerupConfig{
			DropChance: 0.12,
			Size:       48,
			FallSpeed:  120,
			DoubleShot: 10000,
			Shield:     15000,
		},
		Spawn: SpawnConfig{
			Interval:     1500,
			IntervalStep: 180,
			MinInterval:  400,
			MaxBurst:     4,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			KillPoints:  10,
			LevelPoints: 100,
			LevelBonus:  10,
			MaxLevel:    5,
			MaxFrame:    40,
		},
		Effects: EffectsConfig{
			ShieldBlock:       12,
			PlayerHit:         18,
			BulletHit:         8,
			Kill:              26,
			Pickup:            12,
			ParticleSpeed:     250,
			ParticleLife:      500,
			ParticleLifeRange: 700,
			ParticleMinSize:   2,
			ParticleSizeRange: 4,
			Stars:             200,
			FlashDuration:     120,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 24,
		},
		Window: WindowConfig{
			Width:  480,
			Height: 800,
			Title:  "Jet Defender",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJetYAML
}
