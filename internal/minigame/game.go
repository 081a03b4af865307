// Package minigame implements the tap-the-lit-cell reflex game shown at the
// end of the home page.
package minigame

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/loop"
)

// Cells is the size of the 3x3 board.
const Cells = 9

const (
	// FrameInterval is the countdown sampling rate, roughly 60 Hz.
	FrameInterval = time.Second / 60
	// CelebrateFor is how long a new best is highlighted.
	CelebrateFor = 1200 * time.Millisecond
)

type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Ended   State = "ended"
)

type Difficulty string

const (
	Relax  Difficulty = "relax"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Preset is the round length and the lit-cell interval of a difficulty.
type Preset struct {
	Duration time.Duration
	Interval time.Duration
}

// DefaultPresets are the stock difficulties.
var DefaultPresets = map[Difficulty]Preset{
	Relax:  {Duration: 25 * time.Second, Interval: 780 * time.Millisecond},
	Normal: {Duration: 20 * time.Second, Interval: 650 * time.Millisecond},
	Hard:   {Duration: 18 * time.Second, Interval: 480 * time.Millisecond},
}

var (
	ErrRunning           = errors.New("round in progress")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Snapshot is the observable state of a game.
type Snapshot struct {
	State      State      `json:"state"`
	Difficulty Difficulty `json:"difficulty"`
	Active     int        `json:"active"`
	Score      int        `json:"score"`
	Streak     int        `json:"streak"`
	Multiplier int        `json:"multiplier"`
	Misses     int        `json:"misses"`
	TimeLeft   int        `json:"timeLeft"`
	Best       int        `json:"best"`
	Celebrate  bool       `json:"celebrate"`
}

// Options configures a Game. Zero values select the defaults.
type Options struct {
	Presets       map[Difficulty]Preset
	Difficulty    Difficulty
	FrameInterval time.Duration
	Now           func() time.Time
	// IntN returns a pseudo-random number in [0, n).
	IntN     func(n int) int
	Best     *BestScore
	OnChange func(Snapshot)
}

// Game is one mounted mini-game. All methods are safe for concurrent use.
type Game struct {
	presets  map[Difficulty]Preset
	frame    time.Duration
	now      func() time.Time
	intN     func(int) int
	bestRepo *BestScore
	onChange func(Snapshot)

	// ctl serializes lifecycle changes so tasks can be stopped without
	// holding mu, which the tasks themselves take.
	ctl   sync.Mutex
	tasks loop.Group

	mu         sync.Mutex
	ctx        context.Context
	state      State
	difficulty Difficulty
	active     int
	score      int
	streak     int
	misses     int
	timeLeft   int
	best       int
	celebrate  bool
	startedAt  time.Time
}

// New creates an idle game and loads the stored best score.
func New(ctx context.Context, opts Options) *Game {
	g := &Game{
		presets:  opts.Presets,
		frame:    opts.FrameInterval,
		now:      opts.Now,
		intN:     opts.IntN,
		bestRepo: opts.Best,
		onChange: opts.OnChange,
		ctx:      context.Background(),
		state:    Idle,
	}
	if g.presets == nil {
		g.presets = DefaultPresets
	}
	if g.frame <= 0 {
		g.frame = FrameInterval
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.intN == nil {
		g.intN = rand.IntN
	}
	if g.bestRepo == nil {
		g.bestRepo = NewBestScore(nil)
	}
	g.difficulty = opts.Difficulty
	if _, ok := g.presets[g.difficulty]; !ok {
		g.difficulty = Normal
	}
	g.timeLeft = seconds(g.presets[g.difficulty].Duration)
	g.best = g.bestRepo.Load(ctx)
	return g
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// SetDifficulty changes the preset of the next round.
func (g *Game) SetDifficulty(d Difficulty) error {
	g.ctl.Lock()
	defer g.ctl.Unlock()

	preset, ok := g.presets[d]
	if !ok {
		return ErrUnknownDifficulty
	}
	g.mu.Lock()
	if g.state == Running {
		g.mu.Unlock()
		return ErrRunning
	}
	g.difficulty = d
	g.timeLeft = seconds(preset.Duration)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.emit(snap)
	return nil
}

// Start begins a new round. The round's loops stop when ctx is cancelled,
// when the round ends, or on Reset or Stop.
func (g *Game) Start(ctx context.Context) error {
	g.ctl.Lock()
	defer g.ctl.Unlock()

	g.mu.Lock()
	if g.state == Running {
		g.mu.Unlock()
		return ErrRunning
	}
	g.mu.Unlock()

	g.stopTasks()

	g.mu.Lock()
	preset := g.presets[g.difficulty]
	g.ctx = ctx
	g.state = Running
	g.score, g.streak, g.misses = 0, 0, 0
	g.celebrate = false
	g.timeLeft = seconds(preset.Duration)
	g.startedAt = g.now()
	g.active = g.pickLocked()
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.tasks.Add(loop.Every(ctx, preset.Interval, g.advance))
	g.tasks.Add(loop.Frames(ctx, g.frame, func(time.Time) bool { return g.tick() }))

	g.emit(snap)
	return nil
}

// Tap registers a tap on cell i. Taps outside a running round are ignored.
// A hit adds the current multiplier and extends the streak; a miss resets
// the streak and leaves the score unchanged.
func (g *Game) Tap(i int) {
	g.mu.Lock()
	if g.state != Running || i < 0 || i >= Cells {
		g.mu.Unlock()
		return
	}
	if i == g.active {
		g.score += multiplier(g.streak)
		g.streak++
	} else {
		g.streak = 0
		g.misses++
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.emit(snap)
}

// Reset stops any round and returns the board to its idle state.
func (g *Game) Reset() {
	g.ctl.Lock()
	defer g.ctl.Unlock()

	g.stopTasks()

	g.mu.Lock()
	g.state = Idle
	g.score, g.streak, g.misses = 0, 0, 0
	g.active = 0
	g.celebrate = false
	g.timeLeft = seconds(g.presets[g.difficulty].Duration)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.emit(snap)
}

// Stop tears down every running loop and waits for them to exit. The game
// keeps its last state; Stop is what unmounting a game calls.
func (g *Game) Stop() {
	g.ctl.Lock()
	defer g.ctl.Unlock()
	g.stopTasks()

	g.mu.Lock()
	if g.state == Running {
		g.state = Idle
	}
	g.mu.Unlock()
}

// stopTasks waits for every loop to exit. A round that ends while the first
// pass waits can still register its celebration timer, hence the second.
func (g *Game) stopTasks() {
	g.tasks.Stop()
	g.tasks.Stop()
}

func (g *Game) advance() {
	g.mu.Lock()
	if g.state != Running {
		g.mu.Unlock()
		return
	}
	g.active = g.pickLocked()
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.emit(snap)
}

// tick samples the countdown. It returns false once the round is over.
func (g *Game) tick() bool {
	g.mu.Lock()
	if g.state != Running {
		g.mu.Unlock()
		return false
	}
	remaining := g.presets[g.difficulty].Duration - g.now().Sub(g.startedAt)
	if remaining > 0 {
		left := seconds(remaining)
		if left == g.timeLeft {
			g.mu.Unlock()
			return true
		}
		g.timeLeft = left
		snap := g.snapshotLocked()
		g.mu.Unlock()
		g.emit(snap)
		return true
	}

	newBest := g.finishLocked()
	ctx := g.ctx
	snap := g.snapshotLocked()
	g.mu.Unlock()

	if newBest {
		if err := g.bestRepo.Save(ctx, snap.Best); err != nil {
			slog.Warn("failed to persist best score", "error", err)
		}
	}
	g.emit(snap)
	return false
}

// finishLocked ends the round and reports whether a new best was set.
func (g *Game) finishLocked() bool {
	g.state = Ended
	g.timeLeft = 0
	g.tasks.Cancel()

	if g.score <= g.best {
		return false
	}
	g.best = clamp(g.score)
	g.celebrate = true
	g.tasks.Add(loop.After(g.ctx, CelebrateFor, g.endCelebration))
	return true
}

func (g *Game) endCelebration() {
	g.mu.Lock()
	g.celebrate = false
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.emit(snap)
}

// pickLocked chooses the next lit cell, never the current one.
func (g *Game) pickLocked() int {
	next := g.intN(Cells)
	if next == g.active {
		next = (next + 1) % Cells
	}
	return next
}

func (g *Game) snapshotLocked() Snapshot {
	return Snapshot{
		State:      g.state,
		Difficulty: g.difficulty,
		Active:     g.active,
		Score:      g.score,
		Streak:     g.streak,
		Multiplier: multiplier(g.streak),
		Misses:     g.misses,
		TimeLeft:   g.timeLeft,
		Best:       g.best,
		Celebrate:  g.celebrate,
	}
}

func (g *Game) emit(s Snapshot) {
	if g.onChange != nil {
		g.onChange(s)
	}
}

func multiplier(streak int) int {
	return 1 + streak/5
}

// seconds rounds d up to whole seconds.
func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
