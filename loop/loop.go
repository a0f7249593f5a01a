package loop

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"torus-snake/game"
	"torus-snake/game/types"
)

// State is the grid simulation driven by the loop. *game.Game implements it.
type State interface {
	Reset(size int, start types.Point) error
	SetDirection(d types.Direction)
	Step() (types.Outcome, error)
	Snapshot() game.Snapshot
	Size() int
}

// Loop ticks a State on a repeating schedule and forwards results to a Sink.
type Loop struct {
	cfg       Config
	sink      Sink
	logger    *log.Logger
	newTicker TickerFunc

	pending atomic.Int32

	mu      sync.Mutex
	state   State
	sched   *Schedule
	gen     uint64
	session string
}

type Option func(*Loop)

func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithTicker replaces time.NewTicker, mainly for tests.
func WithTicker(newTicker TickerFunc) Option {
	return func(l *Loop) {
		l.newTicker = newTicker
	}
}

// WithState replaces the default *game.Game.
func WithState(state State) Option {
	return func(l *Loop) {
		l.state = state
	}
}

// WithGameOptions configures the default *game.Game.
func WithGameOptions(opts ...game.Option) Option {
	return func(l *Loop) {
		l.state = game.New(opts...)
	}
}

// New validates the configuration and binds the input source to the loop.
func New(cfg Config, sink Sink, input InputSource, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	if input == nil {
		return nil, ErrNilInput
	}

	l := &Loop{
		cfg:       cfg,
		sink:      sink,
		logger:    log.Default(),
		newTicker: NewTicker,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.state == nil {
		l.state = game.New()
	}

	input.Bind(l.OnInput)
	return l, nil
}

// Start resets the game, pushes the first snapshot and begins ticking. Any
// running schedule is cancelled first.
func (l *Loop) Start() error {
	l.mu.Lock()
	old := l.cancel()

	if err := l.state.Reset(l.cfg.GridSize, l.cfg.Start); err != nil {
		l.mu.Unlock()
		wait(old)
		return fmt.Errorf("start: %w", err)
	}
	l.session = uuid.New().String()
	l.pending.Store(int32(types.None))

	l.sink.OnReset(l.cfg.GridSize, l.snapshot())

	l.gen++
	gen := l.gen
	l.sched = Every(l.cfg.TickInterval, l.newTicker, func() {
		l.tick(gen)
	})
	session := l.session
	l.mu.Unlock()

	wait(old)
	l.logger.Printf("session %s: started on %dx%d grid, tick %v", session, l.cfg.GridSize, l.cfg.GridSize, l.cfg.TickInterval)
	return nil
}

// Stop cancels the schedule. It is idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	old := l.cancel()
	l.mu.Unlock()
	wait(old)
}

// OnInput buffers a direction for the next tick. Last write wins; it never
// blocks and may be called from any goroutine, sink callbacks included.
func (l *Loop) OnInput(d types.Direction) {
	if !d.Valid() {
		return
	}
	l.pending.Store(int32(d))
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sched != nil
}

func (l *Loop) Session() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session
}

// Snapshot returns the current state, for hosts that attach mid-game.
func (l *Loop) Snapshot() game.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Loop) Config() Config {
	return l.cfg
}

func (l *Loop) tick(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A schedule replaced by Start or cancelled by Stop may still deliver one tick.
	if gen != l.gen || l.sched == nil {
		return
	}

	if d := types.Direction(l.pending.Swap(int32(types.None))); d.Valid() {
		l.state.SetDirection(d)
	}

	out, err := l.state.Step()
	if err != nil {
		l.logger.Printf("session %s: step failed: %v", l.session, err)
		l.cancel()
		l.sink.OnGameOver()
		return
	}

	switch out.Kind {
	case types.Collided:
		l.cancel()
		l.logger.Printf("session %s: game over at size %d", l.session, out.Size)
		l.sink.OnGameOver()
	default:
		l.sink.OnUpdate(l.snapshot(), out.Size)
	}
}

// cancel stops the current schedule without waiting for it. Callers hold mu.
func (l *Loop) cancel() *Schedule {
	s := l.sched
	l.sched = nil
	if s != nil {
		s.Stop()
	}
	return s
}

func (l *Loop) snapshot() game.Snapshot {
	snap := l.state.Snapshot()
	snap.Session = l.session
	return snap
}

func wait(s *Schedule) {
	if s != nil {
		s.Wait()
	}
}
