package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default game configuration.
// Kept in sync with defaults/invasion.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Ship: ShipConfig{
			Width:    5,
			Speed:    0.6,
			SpeedCap: 1.8,
			Lives:    3,
		},
		Bullet: BulletConfig{
			Speed:      0.5,
			Width:      3,
			MinWidth:   1,
			MaxBullets: 2,
		},
		Alien: AlienConfig{
			Width:           3,
			Height:          1,
			Speed:           0.08,
			SpeedIncrement:  0.06,
			DropSpeed:       1.0,
			DropSpeedCap:    3.0,
			Points:          10,
			PointsIncrement: 2,
		},
		Fleet: FleetConfig{
			MaxRows: 5,
		},
		Gameplay: GameplayConfig{
			TimePenalty:        -1,
			PenaltyEvery:       20,
			RespawnDelay:       60,
			PassThroughLevel:   4,
			GameSpeedIncrement: 0.2,
		},
	}
}
