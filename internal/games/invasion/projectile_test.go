package invasion

import (
	"testing"

	"github.com/vkoval/alien-invasion/internal/config"
	"github.com/vkoval/alien-invasion/internal/core"
)

func TestBulletGroupFireCap(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 22, st.Ship.Width, 1)

	for i := 0; i < st.Bullet.MaxBullets; i++ {
		if !g.Fire(ship, st) {
			t.Fatalf("fire %d rejected below the cap", i)
		}
	}
	if g.Fire(ship, st) {
		t.Error("fire accepted at the cap")
	}
	if g.LiveCount() != st.Bullet.MaxBullets {
		t.Errorf("LiveCount = %d, want %d", g.LiveCount(), st.Bullet.MaxBullets)
	}
}

func TestBulletSpawnPosition(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 22, st.Ship.Width, 1)

	g.Fire(ship, st)
	b := g.Bullets()[0]

	cx, _ := ship.Center()
	if int(b.X) != cx-st.Bullet.Width/2 {
		t.Errorf("bullet X = %v, want centered on %d", b.X, cx)
	}
	if int(b.Y) != ship.Y-1 {
		t.Errorf("bullet Y = %v, want %d", b.Y, ship.Y-1)
	}
	if b.W != st.Bullet.Width || b.Speed != st.Bullet.Speed {
		t.Error("bullet did not bake fire-time settings")
	}
}

func TestBulletCullAtTop(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 5, st.Ship.Width, 1)

	g.Fire(ship, st)
	for i := 0; i < 100 && g.LiveCount() > 0; i++ {
		g.Update()
	}
	if g.LiveCount() != 0 {
		t.Error("bullet never culled above the play area")
	}
}

func TestBulletCapFreesAfterCull(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 5, st.Ship.Width, 1)

	for i := 0; i < st.Bullet.MaxBullets; i++ {
		g.Fire(ship, st)
	}
	for i := 0; i < 100 && g.LiveCount() > 0; i++ {
		g.Update()
	}
	if !g.Fire(ship, st) {
		t.Error("fire rejected after all bullets were culled")
	}
}

func TestBulletDeactivatedRemovedByCull(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 22, st.Ship.Width, 1)

	g.Fire(ship, st)
	g.Fire(ship, st)
	g.Bullets()[0].Active = false
	g.Cull()

	if g.LiveCount() != 1 {
		t.Errorf("LiveCount = %d after cull, want 1", g.LiveCount())
	}
	if !g.Bullets()[0].Active {
		t.Error("cull kept an inactive bullet")
	}
}

func TestBulletGroupClear(t *testing.T) {
	st := NewSettings(config.DefaultInvasionConfig())
	g := NewBulletGroup(2)
	ship := core.NewRect(37, 22, st.Ship.Width, 1)

	g.Fire(ship, st)
	g.Fire(ship, st)
	g.Clear()

	if g.LiveCount() != 0 {
		t.Errorf("LiveCount = %d after clear, want 0", g.LiveCount())
	}
}
