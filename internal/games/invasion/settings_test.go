package invasion

import (
	"math"
	"testing"

	"github.com/vkoval/alien-invasion/internal/config"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSettingsLevelUpTransform(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	s.LevelUp(2)

	if !almostEqual(s.GameSpeed, 1.2) {
		t.Errorf("GameSpeed = %v, want 1.2", s.GameSpeed)
	}
	if s.TimePenalty != -2 {
		t.Errorf("TimePenalty = %d, want -2", s.TimePenalty)
	}
	if s.Bullet.Width != 2 {
		t.Errorf("Bullet.Width = %d, want 2", s.Bullet.Width)
	}
	if !almostEqual(s.Bullet.Speed, 0.5*1.2) {
		t.Errorf("Bullet.Speed = %v, want %v", s.Bullet.Speed, 0.5*1.2)
	}
	if s.Bullet.MaxBullets != 3 {
		t.Errorf("Bullet.MaxBullets = %d, want 3", s.Bullet.MaxBullets)
	}
	if s.Bullet.PassThrough {
		t.Error("PassThrough should stay off at level 2")
	}
	if !almostEqual(s.Alien.Speed, 0.14) {
		t.Errorf("Alien.Speed = %v, want 0.14", s.Alien.Speed)
	}
	if !almostEqual(s.Alien.DropSpeed, 1.2) {
		t.Errorf("Alien.DropSpeed = %v, want 1.2", s.Alien.DropSpeed)
	}
	if s.Alien.Points != 12 {
		t.Errorf("Alien.Points = %d, want 12", s.Alien.Points)
	}
	if !almostEqual(s.Ship.Speed, 0.6*1.2) {
		t.Errorf("Ship.Speed = %v, want %v", s.Ship.Speed, 0.6*1.2)
	}
}

func TestSettingsPassThroughThreshold(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())

	s.LevelUp(2)
	s.LevelUp(3)
	if s.Bullet.PassThrough {
		t.Error("PassThrough enabled before the threshold level")
	}
	if s.Bullet.Points != -1 {
		t.Errorf("Bullet.Points = %d, want -1 before threshold", s.Bullet.Points)
	}

	s.LevelUp(4)
	if !s.Bullet.PassThrough {
		t.Error("PassThrough not enabled at the threshold level")
	}
	if s.Bullet.Points != -2 {
		t.Errorf("Bullet.Points = %d, want -2 past threshold", s.Bullet.Points)
	}
}

func TestSettingsFloorsAndCaps(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	s := NewSettings(cfg)

	for lvl := 2; lvl <= 30; lvl++ {
		s.LevelUp(lvl)
		if s.Bullet.Width < cfg.Bullet.MinWidth {
			t.Fatalf("level %d: Bullet.Width = %d below floor %d", lvl, s.Bullet.Width, cfg.Bullet.MinWidth)
		}
		if s.Alien.DropSpeed > cfg.Alien.DropSpeedCap {
			t.Fatalf("level %d: DropSpeed = %v above cap %v", lvl, s.Alien.DropSpeed, cfg.Alien.DropSpeedCap)
		}
		if s.Ship.Speed > cfg.Ship.SpeedCap {
			t.Fatalf("level %d: Ship.Speed = %v above cap %v", lvl, s.Ship.Speed, cfg.Ship.SpeedCap)
		}
	}
}

func TestSettingsMonotonicEscalation(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())

	prevAlienSpeed := s.Alien.Speed
	prevPoints := s.Alien.Points
	prevPenalty := s.TimePenalty

	for lvl := 2; lvl <= 10; lvl++ {
		s.LevelUp(lvl)
		if s.Alien.Speed <= prevAlienSpeed {
			t.Fatalf("level %d: alien speed did not increase", lvl)
		}
		if s.Alien.Points <= prevPoints {
			t.Fatalf("level %d: alien points did not increase", lvl)
		}
		if s.TimePenalty >= prevPenalty {
			t.Fatalf("level %d: time penalty did not deepen", lvl)
		}
		prevAlienSpeed = s.Alien.Speed
		prevPoints = s.Alien.Points
		prevPenalty = s.TimePenalty
	}
}

func TestSettingsReset(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	baseline := *s

	for lvl := 2; lvl <= 6; lvl++ {
		s.LevelUp(lvl)
	}
	s.Reset()

	if s.GameSpeed != baseline.GameSpeed ||
		s.TimePenalty != baseline.TimePenalty ||
		s.Bullet != baseline.Bullet ||
		s.Ship != baseline.Ship ||
		s.Alien != baseline.Alien {
		t.Error("Reset did not restore the level-1 baseline")
	}
}
