// Package invasion implements the alien invasion game: a lone ship
// fending off a descending fleet, with difficulty that compounds every
// time the fleet is wiped out.
package invasion

import (
	"fmt"

	"github.com/vkoval/alien-invasion/internal/config"
	"github.com/vkoval/alien-invasion/internal/core"
	"github.com/vkoval/alien-invasion/internal/registry"
)

// Visual characters for rendering
const (
	BulletChar  = '┃'
	LifeChar    = '▲'
	BorderHoriz = '─'
)

// Glyph patterns for multi-cell sprites. Sprites wider than the
// pattern repeat the middle rune.
var (
	ShipGlyphs  = []rune{'◢', '▆', '▲', '▆', '◣'}
	AlienGlyphs = []rune{'◤', '▼', '◥'}
)

// GameState constants
const (
	StatePreGame  = "pregame"  // Waiting for the first input
	StatePlaying  = "playing"  // Fleet and ship in motion
	StateStunned  = "stunned"  // Ship was hit, respawn countdown running
	StateGameOver = "gameover" // No ships left
	StatePaused   = "paused"   // Game paused
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game implements the alien invasion game logic.
type Game struct {
	// Game objects
	settings *Settings
	ship     *Ship
	bullets  *BulletGroup
	fleet    *Fleet

	// Game state
	state     string
	score     int
	highScore int // Survives Reset for the lifetime of the instance
	lives     int
	level     int
	tickCount int
	stunTicks int // Remaining respawn countdown in StateStunned

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.InvasionConfig

	// Layout (computed from screen size)
	playW          int // Play area width in cells
	playTop        int // First row of the play area (below the HUD)
	playBottom     int // One past the last play row (bottom bar starts here)
	shipY          int // Row the ship lives on
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset initializes or restarts the game. The in-process high score
// carries over; everything else goes back to level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvasion(configPath)
	if err != nil {
		cfg = config.DefaultInvasionConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvasionPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.calculateLayout()

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.settings = NewSettings(cfg)
	g.score = 0
	g.lives = g.settings.Ship.Limit
	g.level = 1
	g.tickCount = 0
	g.stunTicks = 0

	g.ship = NewShip(g.playW, g.shipY, cfg.Ship.Width)
	g.bullets = NewBulletGroup(g.playTop)
	g.fleet = NewFleet(g.playW, g.playTop, g.playBottom, cfg.Fleet.MaxRows)
	g.fleet.Build(g.settings)

	g.state = StatePreGame
}

// calculateLayout computes the play area from the screen size. The HUD
// takes the top two rows and the bottom bar takes the last row.
func (g *Game) calculateLayout() {
	g.playW = g.runtime.ScreenW
	g.playTop = 2
	g.playBottom = g.runtime.ScreenH - 1
	g.shipY = g.playBottom - 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	switch g.state {
	case StatePreGame:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	case StatePaused, StateGameOver:
		return core.StepResult{State: g.State()}
	case StateStunned:
		g.stunTicks--
		if g.stunTicks <= 0 {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Ship motion and firing
	g.ship.SetMovingLeft(in.Has(core.ActionLeft))
	g.ship.SetMovingRight(in.Has(core.ActionRight))
	g.ship.Update(g.settings)

	if in.Has(core.ActionFire) {
		if g.bullets.Fire(g.ship.Rect(), g.settings) {
			g.addScore(g.settings.Bullet.Points)
		}
	}

	g.bullets.Update()
	g.resolveCollisions()

	// A wiped fleet levels up before it would ever move again, so the
	// new formation starts clean at the top.
	if g.fleet.IsEmpty() {
		g.levelUp()
		return core.StepResult{State: g.State()}
	}

	res := g.fleet.Update(g.settings, g.ship.Rect())
	if res.ShipHit || res.HitBottom {
		g.loseLife()
		return core.StepResult{State: g.State()}
	}

	// Passive score drain keeps camping unprofitable
	if g.cfg.Gameplay.PenaltyEvery > 0 && g.tickCount%g.cfg.Gameplay.PenaltyEvery == 0 {
		g.addScore(g.settings.TimePenalty)
	}

	return core.StepResult{State: g.State()}
}

// resolveCollisions checks every bullet against every alien. A normal
// bullet is spent on its first hit; a pass-through bullet keeps going
// and can clear a whole column in one flight.
func (g *Game) resolveCollisions() {
	for _, b := range g.bullets.Bullets() {
		if !b.Active {
			continue
		}
		br := b.Rect()
		aliens := g.fleet.Aliens()
		for i := 0; i < len(aliens); i++ {
			if !br.Intersects(aliens[i].Rect()) {
				continue
			}
			g.fleet.Remove(i)
			aliens = g.fleet.Aliens()
			i--
			g.addScore(g.settings.Alien.Points)
			if !b.PassThrough {
				b.Active = false
				break
			}
		}
	}
	g.bullets.Cull()
}

// levelUp tightens the difficulty and rebuilds the fleet.
func (g *Game) levelUp() {
	g.level++
	g.settings.LevelUp(g.level)
	g.bullets.Clear()
	g.fleet.Build(g.settings)
}

// loseLife handles the ship being hit or the fleet reaching the
// bottom. The current level's difficulty stays; only the board resets.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		g.highScore = core.Max(g.highScore, g.score)
		return
	}
	g.bullets.Clear()
	g.fleet.Build(g.settings)
	g.ship.Recenter()
	g.stunTicks = g.cfg.Gameplay.RespawnDelay
	g.state = StateStunned
}

// addScore applies a score delta, clamping at zero so penalties can
// never push the score negative.
func (g *Game) addScore(delta int) {
	g.score = core.Max(g.score+delta, 0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderFleet(dst)
	g.renderBullets(dst)
	g.renderShip(dst)
	g.renderBottomBar(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, high score, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	high := core.Max(g.highScore, g.score)
	dst.DrawTextCentered(0, fmt.Sprintf("High: %d", high))

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderFleet draws every alien with its sprite pattern.
func (g *Game) renderFleet(dst *core.Screen) {
	for _, a := range g.fleet.Aliens() {
		r := a.Rect()
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				dst.SetCell(r.X+dx, r.Y+dy, spriteRune(AlienGlyphs, dx, r.W), core.ColorBrightGreen)
			}
		}
	}
}

// renderBullets draws bullets at their current width.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets.Bullets() {
		r := b.Rect()
		for dx := 0; dx < r.W; dx++ {
			dst.SetCell(r.X+dx, r.Y, BulletChar, core.ColorBrightYellow)
		}
	}
}

// renderShip draws the player's ship. The ship blinks during the
// respawn countdown.
func (g *Game) renderShip(dst *core.Screen) {
	if g.state == StateStunned && (g.stunTicks/6)%2 == 0 {
		return
	}
	r := g.ship.Rect()
	for dx := 0; dx < r.W; dx++ {
		dst.SetCell(r.X+dx, r.Y, spriteRune(ShipGlyphs, dx, r.W), core.ColorBrightCyan)
	}
}

// renderBottomBar draws one life icon per ship remaining.
func (g *Game) renderBottomBar(dst *core.Screen) {
	y := dst.Height() - 1
	x := 1
	for i := 0; i < g.lives; i++ {
		dst.SetCell(x, y, LifeChar, core.ColorBrightCyan)
		x += 2
	}
	hint := "←/→ move  SPACE fire  P pause  Q quit"
	dst.DrawText(dst.Width()-len([]rune(hint))-1, y, hint)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePreGame:
		g.drawCenteredBox(dst, "ALIEN INVASION", "Press SPACE to start")

	case StateStunned:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// spriteRune picks the rune for column dx of a sprite of width w,
// stretching the pattern's middle rune when w exceeds the pattern.
func spriteRune(pattern []rune, dx, w int) rune {
	if len(pattern) == 0 {
		return ' '
	}
	switch {
	case dx == 0:
		return pattern[0]
	case dx == w-1:
		return pattern[len(pattern)-1]
	default:
		return pattern[core.Min(1+(dx-1)%core.Max(len(pattern)-2, 1), len(pattern)-1)]
	}
}

// Level returns the current level, for score records.
func (g *Game) Level() int {
	return g.level
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("invasion", func() registry.Game {
		return New()
	})
}
