package invasion

import "github.com/vkoval/alien-invasion/internal/core"

// Ship is the player's cannon, constrained to a single row above the
// bottom bar. X is the left edge in sub-cell units so that per-tick
// speeds below one cell accumulate across ticks.
type Ship struct {
	X float64
	Y int
	W int

	playW int

	movingLeft  bool
	movingRight bool
}

// NewShip creates a ship centered horizontally on the given row.
func NewShip(playW, y, width int) *Ship {
	s := &Ship{Y: y, W: width, playW: playW}
	s.Recenter()
	return s
}

// SetMovingLeft sets the left-motion flag for the next Update.
func (s *Ship) SetMovingLeft(v bool) { s.movingLeft = v }

// SetMovingRight sets the right-motion flag for the next Update.
func (s *Ship) SetMovingRight(v bool) { s.movingRight = v }

// Update advances the ship by its speed according to the motion flags,
// clamped to the play area. Both flags at once cancel out.
func (s *Ship) Update(st *Settings) {
	if s.movingLeft {
		s.X -= st.Ship.Speed
	}
	if s.movingRight {
		s.X += st.Ship.Speed
	}
	s.X = core.ClampF(s.X, 0, float64(s.playW-s.W))
}

// Recenter moves the ship back to the horizontal center and clears
// the motion flags. Used on respawn.
func (s *Ship) Recenter() {
	s.X = float64(s.playW-s.W) / 2
	s.movingLeft = false
	s.movingRight = false
}

// Rect returns the ship's cell-aligned bounding box.
func (s *Ship) Rect() core.Rect {
	return core.NewRect(int(s.X), s.Y, s.W, 1)
}
