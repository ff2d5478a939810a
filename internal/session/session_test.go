package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/runner"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// script replays a fixed list of frames, then empty ones.
type script struct {
	frames []core.InputFrame
}

func (s *script) Frame() core.InputFrame {
	if len(s.frames) == 0 {
		return core.NewInputFrame()
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func newGame(t *testing.T, mutate func(*config.BrawlerConfig)) *brawler.Game {
	t.Helper()
	cfg := config.DefaultBrawlerConfig()
	cfg.Spawner.Chance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	g := brawler.New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(storage.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionRecordsFinishedRun(t *testing.T) {
	game := newGame(t, func(c *config.BrawlerConfig) { c.Player.Lives = 1 })
	store := openStore(t)

	frames := 0
	s := New(game, &script{frames: []core.InputFrame{press(core.ActionConfirm)}},
		WithStore(store),
		OnFrame(func() { frames++ }),
	)

	for i := 0; i < 5000 && !s.State().GameOver; i++ {
		require.NoError(t, s.Step())
	}
	require.True(t, s.State().GameOver, "idle player should be beaten by the initial enemies")

	top, err := s.TopScores(10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "brawler", top[0].GameID)
	assert.Equal(t, 0, top[0].Score)
	assert.Positive(t, top[0].Ticks)

	sum := s.Summary()
	assert.Equal(t, 1, sum.Runs)
	assert.Equal(t, uint64(frames), sum.Ticks)
}

func TestSessionObserveCountsKillsPerRun(t *testing.T) {
	store := openStore(t)
	s := New(newGame(t, nil), &script{}, WithStore(store))

	require.NoError(t, s.observe(core.StepResult{Events: core.Events{
		{Kind: core.EventPhaseChanged, X: int(brawler.PhasePlaying)},
	}}, 10))
	require.NoError(t, s.observe(core.StepResult{Events: core.Events{
		{Kind: core.EventEnemyKilled},
		{Kind: core.EventEnemyKilled},
	}}, 50))
	require.NoError(t, s.observe(core.StepResult{
		State:  core.GameState{Score: 200, GameOver: true},
		Events: core.Events{{Kind: core.EventGameOver}},
	}, 110))

	top, err := store.TopScores("brawler", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 200, top[0].Score)
	assert.Equal(t, 2, top[0].Kills)
	assert.Equal(t, uint64(100), top[0].Ticks)

	// a new run starts counting from zero
	require.NoError(t, s.observe(core.StepResult{Events: core.Events{
		{Kind: core.EventPhaseChanged, X: int(brawler.PhasePlaying)},
	}}, 200))
	assert.Equal(t, 0, s.runKills)
	assert.Equal(t, 2, s.Summary().Kills)
	assert.Equal(t, 200, s.Summary().Best)
}

func TestSessionStoreFailureIsReported(t *testing.T) {
	store, err := storage.Open(storage.Memory)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	s := New(newGame(t, nil), &script{}, WithStore(store))
	err = s.observe(core.StepResult{Events: core.Events{{Kind: core.EventGameOver}}}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session: record run")
}

func TestSessionWithoutStore(t *testing.T) {
	s := New(newGame(t, nil), &script{})
	require.NoError(t, s.observe(core.StepResult{Events: core.Events{{Kind: core.EventGameOver}}}, 1))

	top, err := s.TopScores(5)
	require.NoError(t, err)
	assert.Empty(t, top)

	recent, err := s.RecentScores(5)
	require.NoError(t, err)
	assert.Empty(t, recent)

	rec, err := s.Record()
	require.NoError(t, err)
	assert.Zero(t, rec)
	assert.NoError(t, s.ClearScores())
}

func TestSessionRecordRecentAndClear(t *testing.T) {
	store := openStore(t)
	s := New(newGame(t, nil), &script{}, WithStore(store))

	for _, score := range []int{150, 400, 50} {
		require.NoError(t, s.observe(core.StepResult{
			State:  core.GameState{Score: score, GameOver: true},
			Events: core.Events{{Kind: core.EventGameOver}},
		}, 1))
	}

	rec, err := s.Record()
	require.NoError(t, err)
	assert.Equal(t, Record{Runs: 3, Best: 400}, rec)

	recent, err := s.RecentScores(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 50, recent[0].Score, "newest first")
	assert.Equal(t, 400, recent[1].Score)

	require.NoError(t, s.ClearScores())
	rec, err = s.Record()
	require.NoError(t, err)
	assert.Zero(t, rec)
	assert.Equal(t, 3, s.Summary().Runs, "in-memory totals survive a clear")
}

func TestAutopilotConfirmsOutsidePlay(t *testing.T) {
	a := NewAutopilot(nil, 1)
	for _, phase := range []brawler.Phase{brawler.PhaseMenu, brawler.PhaseGameOver} {
		f := a.decide(brawler.Snapshot{Phase: phase})
		assert.True(t, f.Has(core.ActionConfirm), phase.String())
	}
}

func TestAutopilotChasesAndSwings(t *testing.T) {
	a := NewAutopilot(nil, 1)
	a.jump = 0

	player := brawler.PlayerView{Body: core.Rect{X: 120, Y: 616, W: 72, H: 80}, Grounded: true}
	far := brawler.EnemyView{Body: core.Rect{X: 600, Y: 620, W: 62, H: 72}}
	near := brawler.EnemyView{Body: core.Rect{X: 40, Y: 620, W: 62, H: 72}}

	f := a.decide(brawler.Snapshot{Phase: brawler.PhasePlaying, Tile: 112, Player: player, Enemies: []brawler.EnemyView{far}})
	assert.True(t, f.Has(core.ActionRight))
	assert.False(t, f.Has(core.ActionAttack), "too far to swing")

	f = a.decide(brawler.Snapshot{Phase: brawler.PhasePlaying, Tile: 112, Player: player, Enemies: []brawler.EnemyView{far, near}})
	assert.True(t, f.Has(core.ActionLeft), "nearest enemy wins")
	assert.True(t, f.Has(core.ActionAttack))
}

func TestAutopilotPlaysWholeRuns(t *testing.T) {
	game := newGame(t, func(c *config.BrawlerConfig) { c.Spawner.Chance = 0.02 })
	var s *Session
	pilot := NewAutopilot(func() brawler.Snapshot { return s.Snapshot() }, 3)
	s = New(game, pilot)

	for i := 0; i < 20000; i++ {
		require.NoError(t, s.Step())
	}
	sum := s.Summary()
	assert.Equal(t, uint64(20000), sum.Ticks)
	assert.Positive(t, sum.Kills+sum.Runs, "autopilot should either score kills or lose a run")
}

func TestSessionSurvivesPanickingStep(t *testing.T) {
	// A zero Game has no player, so every Step panics.
	s := New(&brawler.Game{}, &script{frames: []core.InputFrame{press(core.ActionConfirm)}})

	assert.Panics(t, func() { _ = s.Step() })
	require.True(t, s.mu.TryLock(), "lock must be released after a panicking step")
	s.mu.Unlock()

	var failures int
	run := runner.New(s.Step,
		runner.WithMaxTicks(3),
		runner.Unthrottled(),
		runner.WithErrorHandler(func(error) { failures++ }),
	)
	require.NoError(t, run.Run(context.Background()))
	assert.Equal(t, 3, failures, "every tick fails and the loop keeps going")
	assert.Equal(t, uint64(3), run.Stats().Ticks)

	require.True(t, s.mu.TryLock())
	s.mu.Unlock()
}
