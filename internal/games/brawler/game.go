// Package brawler implements a side-scrolling beat 'em up.
// The player walks, jumps and swings at enemies that spawn off either edge
// of the screen, chase the player and attack when close.
package brawler

import (
	"sync"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// gameConfig is used by the registry factory. Set via SetConfig from the CLI.
var (
	gameConfig   = config.DefaultBrawlerConfig()
	gameConfigMu sync.RWMutex
)

// SetConfig sets the config used by games created through the registry.
func SetConfig(cfg config.BrawlerConfig) {
	gameConfigMu.Lock()
	defer gameConfigMu.Unlock()
	gameConfig = cfg
}

func currentConfig() config.BrawlerConfig {
	gameConfigMu.RLock()
	defer gameConfigMu.RUnlock()
	return gameConfig
}

// Game implements the brawler state machine.
type Game struct {
	cfg     config.BrawlerConfig
	runtime core.RuntimeConfig

	phase   Phase
	player  *Player
	enemies []*Enemy
	spawner *Spawner
	score   int
	paused  bool
	debug   bool
	tick    uint64

	// pending cues are delivered with the next Step.
	pending core.Events
}

// New creates a game in the menu phase.
func New(cfg config.BrawlerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "brawler"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brawler"
}

// Reset returns to the menu with a fresh player, no enemies and the
// background music queued.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg.Normalized()
	g.phase = PhaseMenu
	g.player = NewPlayer(g.cfg)
	g.enemies = nil
	g.score = 0
	g.paused = false
	g.tick = 0
	if g.spawner == nil {
		g.spawner = NewSpawner(g.cfg, cfg.Seed)
	} else {
		g.spawner.Reset(cfg.Seed)
	}
	g.pending = core.Events{{Kind: core.EventMusicStart}}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.pending
	g.pending = nil
	g.tick++

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.start(&events)
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.update(in, &events)
		}
	case PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.restart(&events)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// start leaves the menu and puts the initial enemies in the arena.
func (g *Game) start(ev *core.Events) {
	g.phase = PhasePlaying
	ev.Emit(core.EventPhaseChanged, int(PhasePlaying), 0)
	for i := 0; i < g.cfg.Spawner.Initial; i++ {
		g.spawn(ev)
	}
}

// restart clears the round and returns to the menu with music restarted.
func (g *Game) restart(ev *core.Events) {
	g.player.Reset()
	g.enemies = nil
	g.score = 0
	g.paused = false
	g.phase = PhaseMenu
	ev.Emit(core.EventMusicStop, 0, 0)
	ev.Emit(core.EventMusicStart, 0, 0)
	ev.Emit(core.EventPhaseChanged, int(PhaseMenu), 0)
}

func (g *Game) spawn(ev *core.Events) {
	e := g.spawner.Spawn()
	g.enemies = append(g.enemies, e)
	ev.Emit(core.EventEnemySpawned, e.X, e.Y)
}

// update is the playing-phase tick: player, spawner, enemies, collisions,
// then the loss check.
func (g *Game) update(in core.InputFrame, ev *core.Events) {
	g.player.Update(in, ev)

	if g.spawner.ShouldSpawn(len(g.enemies)) {
		g.spawn(ev)
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		e.Update(g.player.X)
		if e.IsDead() {
			g.score += g.cfg.Scoring.KillBonus
			x, y := e.Body.Center()
			ev.Emit(core.EventEnemyKilled, x, y)
			continue
		}
		alive = append(alive, e)
	}
	clear(g.enemies[len(alive):])
	g.enemies = alive

	resolveCollisions(g.player, g.enemies, g.cfg.Scoring.DedupeHits, ev)

	if g.player.Lives() <= 0 {
		g.phase = PhaseGameOver
		ev.Emit(core.EventMusicStop, 0, 0)
		ev.Emit(core.EventGameOver, 0, 0)
		ev.Emit(core.EventPhaseChanged, int(PhaseGameOver), 0)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.player.Lives(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Runtime returns the normalized runtime config from the last Reset.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the live player. Callers on other goroutines must use Snapshot.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the live enemy list. Callers on other goroutines must use Snapshot.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// SetDebug turns the hitbox overlay on or off.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Tick returns the number of steps taken since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.BrawlerConfig {
	return g.cfg
}

// Snapshot copies the state needed to draw a frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Score:   g.score,
		Paused:  g.paused,
		Debug:   g.debug,
		WorldW:  g.cfg.Screen.Width,
		WorldH:  g.cfg.Screen.Height,
		GroundY: g.cfg.Screen.GroundY,
		Tile:    g.cfg.Screen.TileSize,
		Player:  viewPlayer(g.player),
		Enemies: make([]EnemyView, len(g.enemies)),
	}
	for i, e := range g.enemies {
		s.Enemies[i] = viewEnemy(e)
	}
	return s
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot(), nil)
}

func init() {
	registry.Register("brawler", func() registry.Game {
		return New(currentConfig())
	})
}
