package invasion

import "github.com/vkoval/alien-invasion/internal/core"

// Bullet is a single upward shot. Its speed, width and pass-through
// behavior are baked in at fire time; later level-ups do not retouch
// bullets already in flight.
type Bullet struct {
	X           float64
	Y           float64
	W           int
	Speed       float64
	PassThrough bool
	Active      bool
}

// Rect returns the bullet's cell-aligned bounding box, one row tall.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.W, 1)
}

// BulletGroup owns every live bullet and enforces the in-flight cap.
type BulletGroup struct {
	playTop int
	bullets []*Bullet
}

// NewBulletGroup creates an empty group. Bullets are culled once they
// pass above the playTop row.
func NewBulletGroup(playTop int) *BulletGroup {
	return &BulletGroup{playTop: playTop}
}

// Fire spawns a bullet at the ship's top center if the in-flight count
// is below the cap. Reports whether a bullet was actually fired.
func (g *BulletGroup) Fire(ship core.Rect, st *Settings) bool {
	if len(g.bullets) >= st.Bullet.MaxBullets {
		return false
	}
	cx, _ := ship.Center()
	g.bullets = append(g.bullets, &Bullet{
		X:           float64(cx - st.Bullet.Width/2),
		Y:           float64(ship.Y - 1),
		W:           st.Bullet.Width,
		Speed:       st.Bullet.Speed,
		PassThrough: st.Bullet.PassThrough,
		Active:      true,
	})
	return true
}

// Update moves every bullet up by its own speed and drops the ones
// whose bottom edge has left the play area, plus any deactivated by
// collisions.
func (g *BulletGroup) Update() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		b.Y -= b.Speed
		if b.Rect().Bottom() <= g.playTop {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

// Cull removes bullets deactivated since the last Update. Called after
// collision resolution so a spent bullet never survives into the next
// frame's checks.
func (g *BulletGroup) Cull() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// Clear removes every bullet. Used on level-up and respawn.
func (g *BulletGroup) Clear() {
	g.bullets = g.bullets[:0]
}

// LiveCount reports the number of bullets in flight.
func (g *BulletGroup) LiveCount() int {
	return len(g.bullets)
}

// Bullets exposes the live bullets for collision checks and rendering.
func (g *BulletGroup) Bullets() []*Bullet {
	return g.bullets
}
