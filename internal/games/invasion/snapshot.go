package invasion

import "math"

// Snapshot contains the complete game state for replay/save testing.
// Uses primitive types only for stable serialization; float fields are
// carried as raw IEEE 754 bits so restore and hashing are exact.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	HighScore int
	Lives     int
	Level     int
	StunTicks int

	ShipX     uint64 // float bits
	Direction int

	// Live difficulty scalars
	GameSpeed   uint64 // float bits
	TimePenalty int
	BulletSpeed uint64 // float bits
	BulletWidth int
	MaxBullets  int
	PassThrough bool
	AlienSpeed  uint64 // float bits
	DropSpeed   uint64 // float bits
	AlienPoints int
	ShipSpeed   uint64 // float bits

	// Bullet state (each bullet is 4 values: X bits, Y bits, Width, PassThrough)
	BulletCount int
	BulletData  []uint64

	// Alien state (each alien is 2 values: X bits, Y bits)
	AlienCount int
	AlienData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bullets := g.bullets.Bullets()
	bulletData := make([]uint64, 0, len(bullets)*4)
	for _, b := range bullets {
		pt := uint64(0)
		if b.PassThrough {
			pt = 1
		}
		bulletData = append(bulletData,
			math.Float64bits(b.X),
			math.Float64bits(b.Y),
			uint64(b.W), //#nosec G115 -- width is small and positive
			pt,
		)
	}

	aliens := g.fleet.Aliens()
	alienData := make([]uint64, 0, len(aliens)*2)
	for _, a := range aliens {
		alienData = append(alienData,
			math.Float64bits(a.X),
			math.Float64bits(a.Y),
		)
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		Level:     g.level,
		StunTicks: g.stunTicks,

		ShipX:     math.Float64bits(g.ship.X),
		Direction: g.fleet.Direction(),

		GameSpeed:   math.Float64bits(g.settings.GameSpeed),
		TimePenalty: g.settings.TimePenalty,
		BulletSpeed: math.Float64bits(g.settings.Bullet.Speed),
		BulletWidth: g.settings.Bullet.Width,
		MaxBullets:  g.settings.Bullet.MaxBullets,
		PassThrough: g.settings.Bullet.PassThrough,
		AlienSpeed:  math.Float64bits(g.settings.Alien.Speed),
		DropSpeed:   math.Float64bits(g.settings.Alien.DropSpeed),
		AlienPoints: g.settings.Alien.Points,
		ShipSpeed:   math.Float64bits(g.settings.Ship.Speed),

		BulletCount: len(bullets),
		BulletData:  bulletData,
		AlienCount:  len(aliens),
		AlienData:   alienData,
	}
}

// ApplySnapshot restores game state from a snapshot. Layout and config
// come from the last Reset; only the dynamic state is replaced.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.score = snap.Score
	g.highScore = snap.HighScore
	g.lives = snap.Lives
	g.level = snap.Level
	g.stunTicks = snap.StunTicks

	g.ship.X = math.Float64frombits(snap.ShipX)
	g.fleet.direction = snap.Direction

	g.settings.GameSpeed = math.Float64frombits(snap.GameSpeed)
	g.settings.TimePenalty = snap.TimePenalty
	g.settings.Bullet.Speed = math.Float64frombits(snap.BulletSpeed)
	g.settings.Bullet.Width = snap.BulletWidth
	g.settings.Bullet.MaxBullets = snap.MaxBullets
	g.settings.Bullet.PassThrough = snap.PassThrough
	g.settings.Alien.Speed = math.Float64frombits(snap.AlienSpeed)
	g.settings.Alien.DropSpeed = math.Float64frombits(snap.DropSpeed)
	g.settings.Alien.Points = snap.AlienPoints
	g.settings.Ship.Speed = math.Float64frombits(snap.ShipSpeed)

	g.bullets.bullets = g.bullets.bullets[:0]
	for i := 0; i < snap.BulletCount; i++ {
		idx := i * 4
		if idx+3 >= len(snap.BulletData) {
			break
		}
		g.bullets.bullets = append(g.bullets.bullets, &Bullet{
			X:           math.Float64frombits(snap.BulletData[idx]),
			Y:           math.Float64frombits(snap.BulletData[idx+1]),
			W:           int(snap.BulletData[idx+2]), //#nosec G115 -- width is small
			Speed:       g.settings.Bullet.Speed,
			PassThrough: snap.BulletData[idx+3] == 1,
			Active:      true,
		})
	}

	g.fleet.aliens = g.fleet.aliens[:0]
	for i := 0; i < snap.AlienCount; i++ {
		idx := i * 2
		if idx+1 >= len(snap.AlienData) {
			break
		}
		g.fleet.aliens = append(g.fleet.aliens, &Alien{
			X: math.Float64frombits(snap.AlienData[idx]),
			Y: math.Float64frombits(snap.AlienData[idx+1]),
			W: g.settings.Alien.Width,
			H: g.settings.Alien.Height,
		})
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StunTicks)   //#nosec G115 -- hash computation
	h = h*31 + snap.ShipX
	h = h*31 + uint64(int64(snap.Direction)) //#nosec G115 -- hash computation
	h = h*31 + snap.GameSpeed
	h = h*31 + uint64(int64(snap.TimePenalty)) //#nosec G115 -- hash computation
	h = h*31 + snap.BulletSpeed
	h = h*31 + uint64(snap.BulletWidth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxBullets)  //#nosec G115 -- hash computation
	h = h*31 + snap.AlienSpeed
	h = h*31 + snap.DropSpeed
	h = h*31 + uint64(snap.AlienPoints) //#nosec G115 -- hash computation
	h = h*31 + snap.ShipSpeed
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AlienCount)  //#nosec G115 -- hash computation

	for _, v := range snap.BulletData {
		h = h*31 + v
	}
	for _, v := range snap.AlienData {
		h = h*31 + v
	}

	return h
}
