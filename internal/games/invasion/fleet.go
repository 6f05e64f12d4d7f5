package invasion

import "github.com/vkoval/alien-invasion/internal/core"

// Alien is one invader. X moves in sub-cell units with the fleet's
// shared direction; Y only changes by whole drop steps on edge
// reversal.
type Alien struct {
	X float64
	Y float64
	W int
	H int
}

// Rect returns the alien's cell-aligned bounding box.
func (a *Alien) Rect() core.Rect {
	return core.NewRect(int(a.X), int(a.Y), a.W, a.H)
}

// FleetResult reports terminal conditions found during a fleet update.
type FleetResult struct {
	ShipHit   bool // An alien overlaps the ship
	HitBottom bool // An alien reached the ship row
}

// Fleet owns the alien formation. All aliens share one direction sign
// and move in lockstep; hitting a side edge reverses the whole
// formation and drops it one step before the frame's horizontal move.
type Fleet struct {
	playW      int
	playTop    int
	playBottom int
	maxRows    int

	aliens    []*Alien
	direction int
}

// NewFleet creates an empty fleet bounded by the given play area.
func NewFleet(playW, playTop, playBottom, maxRows int) *Fleet {
	return &Fleet{
		playW:      playW,
		playTop:    playTop,
		playBottom: playBottom,
		maxRows:    maxRows,
		direction:  1,
	}
}

// Build discards any existing aliens and lays out a fresh grid. Column
// spacing is one alien width, row spacing one alien height; rows stop
// three alien heights above the bottom and at the configured row cap.
// A play area too small for even one alien yields an empty fleet.
func (f *Fleet) Build(st *Settings) {
	f.aliens = f.aliens[:0]
	f.direction = st.Alien.Direction

	w, h := st.Alien.Width, st.Alien.Height
	if w <= 0 || h <= 0 {
		return
	}
	maxX := f.playW - 2*w
	maxY := f.playBottom - 3*h

	rows := 0
	for y := f.playTop + h; y <= maxY; y += 2 * h {
		if f.maxRows > 0 && rows >= f.maxRows {
			break
		}
		for x := w; x <= maxX; x += 2 * w {
			f.aliens = append(f.aliens, &Alien{X: float64(x), Y: float64(y), W: w, H: h})
		}
		rows++
	}
}

// Update advances the formation one frame. If the leading edge touches
// a side wall the direction flips and every alien drops, then the
// whole fleet moves horizontally with the post-reversal direction so
// reversal and motion land in the same frame. Afterwards it checks the
// loss conditions against the given ship box.
func (f *Fleet) Update(st *Settings, ship core.Rect) FleetResult {
	if f.atEdge() {
		f.direction = -f.direction
		for _, a := range f.aliens {
			a.Y += st.Alien.DropSpeed
		}
	}
	for _, a := range f.aliens {
		a.X += st.Alien.Speed * float64(f.direction)
	}

	var res FleetResult
	for _, a := range f.aliens {
		r := a.Rect()
		if r.Intersects(ship) {
			res.ShipHit = true
		}
		if r.Bottom() >= f.playBottom {
			res.HitBottom = true
		}
		if res.ShipHit && res.HitBottom {
			break
		}
	}
	return res
}

// atEdge reports whether the fleet's leading edge in its direction of
// travel touches the wall. Only the leading edge counts, otherwise a
// just-reversed formation would flip again next frame.
func (f *Fleet) atEdge() bool {
	for _, a := range f.aliens {
		r := a.Rect()
		if f.direction > 0 && r.Right() >= f.playW {
			return true
		}
		if f.direction < 0 && r.X <= 0 {
			return true
		}
	}
	return false
}

// Remove deletes the alien at index i.
func (f *Fleet) Remove(i int) {
	f.aliens = append(f.aliens[:i], f.aliens[i+1:]...)
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.aliens = f.aliens[:0]
}

// IsEmpty reports whether the formation has been wiped out.
func (f *Fleet) IsEmpty() bool {
	return len(f.aliens) == 0
}

// Aliens exposes the live aliens for collision checks and rendering.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}

// Direction returns the current direction sign (+1 right, -1 left).
func (f *Fleet) Direction() int {
	return f.direction
}
