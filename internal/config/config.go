// Package config provides YAML-based game configuration loading and
// difficulty presets for the invasion game.
package config

// InvasionConfig contains all tunable parameters for the game.
// Speeds are in cells per simulation tick at the default 60 FPS tick rate.
type InvasionConfig struct {
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Alien    AlienConfig    `yaml:"alien"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Width    int     `yaml:"width"`     // Ship width in cells
	Speed    float64 `yaml:"speed"`     // Horizontal speed (cells/tick)
	SpeedCap float64 `yaml:"speed_cap"` // Upper bound the level-up scaling may reach
	Lives    int     `yaml:"lives"`     // Ships per game
}

// BulletConfig defines the projectile parameters at level 1.
type BulletConfig struct {
	Speed      float64 `yaml:"speed"`       // Upward speed (cells/tick)
	Width      int     `yaml:"width"`       // Bullet width in cells
	MinWidth   int     `yaml:"min_width"`   // Floor for the level-up shrink
	MaxBullets int     `yaml:"max_bullets"` // Live bullet cap
}

// AlienConfig defines the alien parameters at level 1.
type AlienConfig struct {
	Width           int     `yaml:"width"`            // Alien sprite width in cells
	Height          int     `yaml:"height"`           // Alien sprite height in cells
	Speed           float64 `yaml:"speed"`            // Horizontal fleet speed (cells/tick)
	SpeedIncrement  float64 `yaml:"speed_increment"`  // Added per level
	DropSpeed       float64 `yaml:"drop_speed"`       // Rows dropped on direction reversal
	DropSpeedCap    float64 `yaml:"drop_speed_cap"`   // Upper bound the level-up scaling may reach
	Points          int     `yaml:"points"`           // Score per alien destroyed
	PointsIncrement int     `yaml:"points_increment"` // Added per level
}

// FleetConfig defines the fleet layout parameters.
type FleetConfig struct {
	// MaxRows caps the number of rows on top of the geometric limit.
	// 0 means no cap (geometry alone decides).
	MaxRows int `yaml:"max_rows"`
}

// GameplayConfig defines session-level parameters.
type GameplayConfig struct {
	TimePenalty        int     `yaml:"time_penalty"`         // Score delta applied periodically (negative)
	PenaltyEvery       int     `yaml:"penalty_every"`        // Ticks between penalty applications
	RespawnDelay       int     `yaml:"respawn_delay"`        // Ticks of stun after losing a ship
	PassThroughLevel   int     `yaml:"pass_through_level"`   // First level at which bullets pass through
	GameSpeedIncrement float64 `yaml:"game_speed_increment"` // Added to the global multiplier per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyInvasionPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Bullet.MaxBullets = 3
		cfg.Alien.Speed = 0.06
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Alien.Speed = 0.14
		cfg.Alien.DropSpeed = 1.5
	}
}
