package invasion

import (
	"github.com/vkoval/alien-invasion/internal/config"
	"github.com/vkoval/alien-invasion/internal/core"
)

// BulletSettings holds the live bullet parameters for the current level.
// Points is the score cost of firing a shot (negative).
type BulletSettings struct {
	Speed       float64
	Width       int
	MaxBullets  int
	PassThrough bool
	Points      int
}

// ShipSettings holds the live ship parameters for the current level.
type ShipSettings struct {
	Speed float64
	Width int
	Limit int // Ships per game
}

// AlienSettings holds the live alien parameters for the current level.
// Direction is the fleet's starting direction sign (+1 right, -1 left).
type AlienSettings struct {
	Speed     float64
	Direction int
	DropSpeed float64
	Points    int
	Width     int
	Height    int
}

// Settings is the mutable difficulty state for a game session.
// It is seeded from config, tightened by LevelUp once per fleet clear,
// and restored to the level-1 baseline by Reset.
type Settings struct {
	GameSpeed   float64
	TimePenalty int
	Bullet      BulletSettings
	Ship        ShipSettings
	Alien       AlienSettings

	cfg config.InvasionConfig
}

// NewSettings creates level-1 settings from the given config.
func NewSettings(cfg config.InvasionConfig) *Settings {
	s := &Settings{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the level-1 baseline.
func (s *Settings) Reset() {
	s.GameSpeed = 1.0
	s.TimePenalty = s.cfg.Gameplay.TimePenalty
	s.Bullet = BulletSettings{
		Speed:       s.cfg.Bullet.Speed,
		Width:       s.cfg.Bullet.Width,
		MaxBullets:  s.cfg.Bullet.MaxBullets,
		PassThrough: false,
		Points:      -1,
	}
	s.Ship = ShipSettings{
		Speed: s.cfg.Ship.Speed,
		Width: s.cfg.Ship.Width,
		Limit: s.cfg.Ship.Lives,
	}
	s.Alien = AlienSettings{
		Speed:     s.cfg.Alien.Speed,
		Direction: 1,
		DropSpeed: s.cfg.Alien.DropSpeed,
		Points:    s.cfg.Alien.Points,
		Width:     s.cfg.Alien.Width,
		Height:    s.cfg.Alien.Height,
	}
}

// LevelUp tightens the settings for the given (newly reached) level.
// Multiplicative scalings compound across levels; that escalation is the
// point. Caps and floors come from config.
func (s *Settings) LevelUp(level int) {
	s.GameSpeed += s.cfg.Gameplay.GameSpeedIncrement
	s.TimePenalty--

	s.Bullet.Width--
	s.Bullet.Width = core.Max(s.Bullet.Width, s.cfg.Bullet.MinWidth)
	s.Bullet.Speed *= s.GameSpeed
	s.Bullet.MaxBullets++
	if level >= s.cfg.Gameplay.PassThroughLevel {
		s.Bullet.PassThrough = true
		s.Bullet.Points = -2
	}

	s.Alien.Speed += s.cfg.Alien.SpeedIncrement
	s.Alien.DropSpeed *= s.GameSpeed
	s.Alien.DropSpeed = core.ClampF(s.Alien.DropSpeed, 0, s.cfg.Alien.DropSpeedCap)
	s.Alien.Points += s.cfg.Alien.PointsIncrement

	s.Ship.Speed *= s.GameSpeed
	s.Ship.Speed = core.ClampF(s.Ship.Speed, 0, s.cfg.Ship.SpeedCap)
}
