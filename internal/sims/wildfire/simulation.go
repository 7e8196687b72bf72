package wildfire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"wildfire-ca/internal/core"
)

// ErrStepOutOfRange is returned when querying a step that has not been recorded.
var ErrStepOutOfRange = errors.New("wildfire: step out of range")

type options struct {
	elevation *core.Grid[float64]
	fuel      *core.Grid[int]
	wind      WindSource
	ignitions []Cell
	logger    *slog.Logger
}

// Option customizes a Simulation at construction time.
type Option func(*options)

// WithElevation replaces the generated valley with the given elevation map.
func WithElevation(g core.Grid[float64]) Option {
	return func(o *options) { o.elevation = &g }
}

// WithFuel replaces the randomly generated fuel map. No random numbers are
// drawn for fuel when this option is present.
func WithFuel(g core.Grid[int]) Option {
	return func(o *options) { o.fuel = &g }
}

// WithWind replaces the default wind generator.
func WithWind(src WindSource) Option {
	return func(o *options) { o.wind = src }
}

// WithIgnitions sets the cells burning at step 0. The default is the grid centre.
func WithIgnitions(cells ...Cell) Option {
	return func(o *options) { o.ignitions = append([]Cell(nil), cells...) }
}

// WithLogger routes simulation logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Simulation drives the fire automaton and records every step.
type Simulation struct {
	cfg  Config
	opts options
	log  *slog.Logger

	seed  int64
	runID uuid.UUID
	rng   *core.RNG

	elevation core.Grid[float64]
	fuel      core.Grid[int]
	wind      WindSource
	model     IgnitionModel
	schedule  []ScheduledIgnition
	nextEvent int

	step    int
	grid    core.Grid[State]
	timer   core.Grid[int]
	history []Snapshot
	metrics []StepMetrics

	display []uint8
}

// New validates cfg and returns a simulation initialized at step 0.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	size := cfg.Size
	if o.elevation != nil && (o.elevation.W != size || o.elevation.H != size) {
		return nil, fmt.Errorf("%w: elevation is %dx%d, want %dx%d", ErrInvalidConfig, o.elevation.W, o.elevation.H, size, size)
	}
	if o.fuel != nil && (o.fuel.W != size || o.fuel.H != size) {
		return nil, fmt.Errorf("%w: fuel is %dx%d, want %dx%d", ErrInvalidConfig, o.fuel.W, o.fuel.H, size, size)
	}
	for _, c := range o.ignitions {
		if c.Row < 1 || c.Col < 1 || c.Row > size-2 || c.Col > size-2 {
			return nil, fmt.Errorf("%w: ignition (%d,%d) is not an interior cell", ErrInvalidConfig, c.Row, c.Col)
		}
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Simulation{
		cfg:     cfg,
		opts:    o,
		log:     logger,
		display: make([]uint8, size*size),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Cells exposes the current state as palette indices.
func (s *Simulation) Cells() []uint8 { return s.display }

// Reset rebuilds the landscape, schedule and history from seed. A zero seed
// reuses the configured seed.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.runID = runID(s.cfg, seed)
	s.rng = core.NewRNG(seed)
	size := s.cfg.Size
	p := s.cfg.Params

	if s.opts.elevation != nil {
		s.elevation = s.opts.elevation.Clone()
	} else {
		s.elevation = ValleyElevation(size, p)
	}
	if s.opts.fuel != nil {
		s.fuel = s.opts.fuel.Clone()
	} else {
		s.fuel = GenerateFuel(size, p, s.rng)
	}
	s.schedule = GenerateSchedule(p.ExogenousIgnitions, s.cfg.Steps, size, s.rng)
	s.nextEvent = 0
	if s.opts.wind != nil {
		s.wind = s.opts.wind
	} else {
		s.wind = NewWindGenerator(size, p)
	}
	s.model = IgnitionModel{Size: size, Elevation: s.elevation, Fuel: s.fuel, Params: p}

	s.grid = core.NewGrid[State](size, size)
	s.timer = core.NewGrid[int](size, size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !s.grid.OnBorder(r, c) {
				s.grid.Set(r, c, Vegetated)
			}
		}
	}
	ignitions := s.opts.ignitions
	if len(ignitions) == 0 {
		ignitions = []Cell{{Row: size / 2, Col: size / 2}}
	}
	for _, c := range ignitions {
		s.grid.Set(c.Row, c.Col, Burning)
		s.timer.Set(c.Row, c.Col, p.BurnTime)
	}

	s.step = 0
	s.history = nil
	s.metrics = nil
	s.record(s.wind.Next(0, s.rng))
}

// Step advances the automaton by one step. It does nothing once Done.
func (s *Simulation) Step() {
	if s.Done() {
		return
	}
	t := s.step + 1
	wind := s.wind.Next(t, s.rng)
	due := s.dueEvents(t)

	grid, timer, stats := Transition(s.grid, s.timer, due, s.model, wind, s.rng)
	if len(due) > 0 {
		s.log.Debug("scheduled ignitions",
			"run_id", s.runID, "step", t, "applied", stats.Scheduled, "skipped", stats.Skipped)
	}

	s.grid, s.timer = grid, timer
	s.step = t
	s.record(wind)
}

// Run advances until every configured step has been simulated. The context
// is checked between steps; a cancelled run can be resumed by calling Run again.
func (s *Simulation) Run(ctx context.Context) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.log.Info("run interrupted", "run_id", s.runID, "step", s.step, "err", err)
			return err
		}
		s.Step()
	}
	last := s.history[len(s.history)-1]
	burning, ash := countStates(last.Grid)
	s.log.Info("run complete",
		"run_id", s.runID, "steps", s.step, "burning", burning, "ash", ash,
		"exogenous_events", len(s.schedule))
	return nil
}

// Done reports whether all configured steps have run.
func (s *Simulation) Done() bool { return s.step >= s.cfg.Steps }

// CurrentStep returns the index of the most recently recorded step.
func (s *Simulation) CurrentStep() int { return s.step }

// Snapshot returns the recorded state after step. Step 0 is the initial state.
func (s *Simulation) Snapshot(step int) (Snapshot, error) {
	if step < 0 || step >= len(s.history) {
		return Snapshot{}, fmt.Errorf("%w: %d not in [0,%d]", ErrStepOutOfRange, step, len(s.history)-1)
	}
	return s.history[step], nil
}

// History returns every recorded snapshot in step order.
func (s *Simulation) History() []Snapshot { return s.history }

// Schedule returns the exogenous ignition events sorted by step.
func (s *Simulation) Schedule() []ScheduledIgnition { return s.schedule }

// Elevation exposes the static elevation map.
func (s *Simulation) Elevation() core.Grid[float64] { return s.elevation }

// Fuel exposes the static fuel map.
func (s *Simulation) Fuel() core.Grid[int] { return s.fuel }

// IgnitionModel returns the spread model bound to this simulation's landscape.
func (s *Simulation) IgnitionModel() IgnitionModel { return s.model }

// Seed returns the seed of the current run.
func (s *Simulation) Seed() int64 { return s.seed }

// RunID identifies the run. It is derived from the configuration and seed, so
// identical runs share an ID.
func (s *Simulation) RunID() string { return s.runID.String() }

func (s *Simulation) dueEvents(step int) []ScheduledIgnition {
	start := s.nextEvent
	for s.nextEvent < len(s.schedule) && s.schedule[s.nextEvent].Step <= step {
		s.nextEvent++
	}
	return s.schedule[start:s.nextEvent]
}

func (s *Simulation) record(wind WindField) {
	temp := ComputeTemperature(s.grid, s.timer, s.step, s.cfg.Params)
	s.history = append(s.history, Snapshot{
		Step:        s.step,
		Grid:        s.grid,
		BurnTimer:   s.timer,
		Wind:        wind,
		Temperature: temp,
	})
	for i, st := range s.grid.Cells() {
		s.display[i] = uint8(st)
	}
}

func runID(cfg Config, seed int64) uuid.UUID {
	key := fmt.Sprintf("wildfire/size=%d/steps=%d/burn=%d/events=%d/seed=%d",
		cfg.Size, cfg.Steps, cfg.Params.BurnTime, cfg.Params.ExogenousIgnitions, seed)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}

func countStates(g core.Grid[State]) (burning, ash int) {
	for _, st := range g.Cells() {
		switch st {
		case Burning:
			burning++
		case Ash:
			ash++
		}
	}
	return burning, ash
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		sim, err := New(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
