package enhance

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"video-enhancer/internal/domain"
)

// ErrNoItems is returned when a run is requested for an empty queue.
var ErrNoItems = errors.New("no items to enhance")

// Timing shapes the fake progress curve.
type Timing struct {
	FirstTick  time.Duration
	TickBase   time.Duration
	TickJitter time.Duration
	StepMin    float64
	StepJitter float64
	Settle     time.Duration
}

// DefaultTiming matches the dashboard's feel: 6..24% per tick every 220..340ms.
func DefaultTiming() Timing {
	return Timing{
		FirstTick:  240 * time.Millisecond,
		TickBase:   220 * time.Millisecond,
		TickJitter: 120 * time.Millisecond,
		StepMin:    6,
		StepJitter: 18,
		Settle:     420 * time.Millisecond,
	}
}

// Scale divides every delay by factor. Non-positive factors leave t unchanged.
func (t Timing) Scale(factor float64) Timing {
	if factor <= 0 {
		return t
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / factor)
	}
	t.FirstTick = scale(t.FirstTick)
	t.TickBase = scale(t.TickBase)
	t.TickJitter = scale(t.TickJitter)
	t.Settle = scale(t.Settle)
	return t
}

// normalized guarantees every tick moves progress forward.
func (t Timing) normalized() Timing {
	def := DefaultTiming()
	if t.StepMin <= 0 {
		t.StepMin = def.StepMin
	}
	if t.StepJitter < 0 {
		t.StepJitter = 0
	}
	t.FirstTick = max(0, t.FirstTick)
	t.TickBase = max(0, t.TickBase)
	t.TickJitter = max(0, t.TickJitter)
	t.Settle = max(0, t.Settle)
	return t
}

// Request describes one run over a snapshot of the queue.
type Request struct {
	RunID      string
	Items      []domain.QueuedItem
	Settings   domain.EnhancementSettings
	OnProgress func(progress float64)
	OnRecord   func(index int, record domain.HistoryRecord)
}

// Result holds the records produced by a run, in input order.
type Result struct {
	Records  []domain.HistoryRecord
	Progress float64
}

// Simulator fakes a multi-item enhancement run.
type Simulator struct {
	clock  Clock
	rand   Rand
	timing Timing
	newID  func() string
}

// Option customizes a Simulator.
type Option func(*Simulator)

// WithClock injects the time source.
func WithClock(clock Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(s *Simulator) { s.rand = r }
}

// WithTiming overrides the progress curve.
func WithTiming(t Timing) Option {
	return func(s *Simulator) { s.timing = t }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Simulator) { s.newID = newID }
}

// NewSimulator builds a simulator on the wall clock with a random seed.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		clock:  RealClock(),
		rand:   NewRand(0),
		timing: DefaultTiming(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.timing = s.timing.normalized()
	return s
}

// Run walks the items in order, reporting overall progress after every tick
// and one record per finished item. After the last item it waits the settle
// delay and reports exactly 100. Only ctx cancellation stops a run early.
func (s *Simulator) Run(ctx context.Context, req Request) (Result, error) {
	if len(req.Items) == 0 {
		return Result{}, ErrNoItems
	}

	items := append([]domain.QueuedItem(nil), req.Items...)
	features := domain.FeatureSummary(req.Settings)
	segment := 100 / float64(len(items))
	result := Result{Records: make([]domain.HistoryRecord, 0, len(items))}

	for index, item := range items {
		local := 0.0
		delay := s.timing.FirstTick
		for {
			if err := s.clock.Sleep(ctx, delay); err != nil {
				return result, err
			}

			local += s.timing.StepMin + s.rand.Float64()*s.timing.StepJitter
			progress := math.Min(100, float64(index)*segment+math.Min(local, 100)/100*segment)
			result.Progress = progress
			if req.OnProgress != nil {
				req.OnProgress(progress)
			}
			if local >= 100 {
				break
			}
			delay = s.timing.TickBase + time.Duration(s.rand.Float64()*float64(s.timing.TickJitter))
		}

		record := s.buildRecord(item, req.Settings, features)
		result.Records = append(result.Records, record)
		if req.OnRecord != nil {
			req.OnRecord(index, record)
		}
	}

	if err := s.clock.Sleep(ctx, s.timing.Settle); err != nil {
		return result, err
	}
	result.Progress = 100
	if req.OnProgress != nil {
		req.OnProgress(100)
	}
	return result, nil
}

// buildRecord fabricates the history entry for one finished item.
func (s *Simulator) buildRecord(item domain.QueuedItem, settings domain.EnhancementSettings, features []string) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:           s.newID(),
		FileName:     item.Name,
		Duration:     domain.DurationLabel(item.Size),
		Status:       domain.RecordStatusCompleted,
		FrameRate:    settings.FrameRate.Label(),
		ExportFormat: settings.ExportFormat,
		CreatedAt:    "Today · " + s.clock.Now().Format("15:04"),
		Features:     append([]string(nil), features...),
	}
}
