package invasion

import (
	"testing"

	"github.com/vkoval/alien-invasion/internal/config"
)

func TestShipClampAtEdges(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	s := NewShip(80, 22, st.Ship.Width)

	s.SetMovingLeft(true)
	for i := 0; i < 500; i++ {
		s.Update(st)
	}
	if s.X != 0 {
		t.Errorf("ship X = %v after holding left, want 0", s.X)
	}

	s.SetMovingLeft(false)
	s.SetMovingRight(true)
	for i := 0; i < 500; i++ {
		s.Update(st)
	}
	if want := float64(80 - st.Ship.Width); s.X != want {
		t.Errorf("ship X = %v after holding right, want %v", s.X, want)
	}
}

func TestShipOpposedFlagsCancel(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	s := NewShip(80, 22, st.Ship.Width)
	x0 := s.X

	s.SetMovingLeft(true)
	s.SetMovingRight(true)
	for i := 0; i < 10; i++ {
		s.Update(st)
	}
	if s.X != x0 {
		t.Errorf("ship moved to %v with both flags set, want %v", s.X, x0)
	}
}

func TestShipNoFlagsNoMotion(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	s := NewShip(80, 22, st.Ship.Width)
	x0 := s.X

	s.Update(st)
	if s.X != x0 {
		t.Errorf("ship moved to %v with no flags set", s.X)
	}
}

func TestShipRecenter(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	s := NewShip(80, 22, st.Ship.Width)

	s.SetMovingRight(true)
	for i := 0; i < 100; i++ {
		s.Update(st)
	}
	s.Recenter()

	if want := float64(80-st.Ship.Width) / 2; s.X != want {
		t.Errorf("ship X = %v after recenter, want %v", s.X, want)
	}

	// Recenter must also drop the motion flags
	s.Update(st)
	if want := float64(80-st.Ship.Width) / 2; s.X != want {
		t.Errorf("ship drifted to %v after recenter, flags not cleared", s.X)
	}
}

func TestShipRect(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	s := NewShip(80, 22, st.Ship.Width)
	s.X = 10.9

	r := s.Rect()
	if r.X != 10 || r.Y != 22 || r.W != st.Ship.Width || r.H != 1 {
		t.Errorf("unexpected ship rect %+v", r)
	}
}
