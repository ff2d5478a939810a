package core

// EventKind identifies something the simulation wants the platform to react to.
// The simulation never plays sounds itself; it reports cues and the audio
// collaborator decides what to do with them.
type EventKind int

const (
	EventSwing        EventKind = iota // Player started an attack
	EventHit                           // Player attack connected with an enemy
	EventStomp                         // Player landed on an enemy and bounced
	EventPlayerHurt                    // Player lost a life
	EventEnemyKilled                   // Enemy removed, score credited
	EventEnemySpawned                  // Enemy entered the arena
	EventGameOver                      // Player ran out of lives
	EventMusicStart                    // Background music should (re)start
	EventMusicStop                     // Background music should stop
	EventPhaseChanged                  // Menu/playing/game-over transition
)

var eventKindNames = [...]string{
	EventSwing:        "swing",
	EventHit:          "hit",
	EventStomp:        "stomp",
	EventPlayerHurt:   "player_hurt",
	EventEnemyKilled:  "enemy_killed",
	EventEnemySpawned: "enemy_spawned",
	EventGameOver:     "game_over",
	EventMusicStart:   "music_start",
	EventMusicStop:    "music_stop",
	EventPhaseChanged: "phase_changed",
}

// String returns the snake_case name of the event kind.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is a single simulation occurrence. X and Y carry the world
// position where it happened, when that is meaningful.
type Event struct {
	Kind EventKind
	X, Y int
}

// Events is an append-only buffer reused across ticks.
type Events []Event

// Emit appends an event.
func (e *Events) Emit(kind EventKind, x, y int) {
	*e = append(*e, Event{Kind: kind, X: x, Y: y})
}

// Count returns how many events of the given kind were emitted.
func (e Events) Count(kind EventKind) int {
	n := 0
	for _, ev := range e {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
