package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"video-enhancer/internal/config"
	"video-enhancer/internal/domain"
	"video-enhancer/internal/enhance"
	"video-enhancer/internal/history"
	"video-enhancer/internal/jobs"
	"video-enhancer/internal/logging"
	"video-enhancer/internal/metrics"
	"video-enhancer/internal/preview"
	"video-enhancer/internal/queue"
	"video-enhancer/internal/settings"
)

// ErrQueueEmpty is returned when a run is requested with nothing queued.
var ErrQueueEmpty = errors.New("queue is empty")

// simulator isolates the fake enhancement run behind an interface.
type simulator interface {
	Run(ctx context.Context, req enhance.Request) (enhance.Result, error)
}

// Deps lists the collaborators a Controller is built from.
type Deps struct {
	Settings  *settings.Store
	Queue     *queue.Queue
	History   *history.Log
	Jobs      *jobs.Manager
	Simulator simulator
	Events    *jobs.EventBus
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	// Notify receives every published event, e.g. to push it to the UI.
	Notify func(jobs.Event)
}

// Controller owns the dashboard state: settings, queue, history, and the
// active run. Both the desktop app and the CLI drive it.
type Controller struct {
	settings *settings.Store
	queue    *queue.Queue
	history  *history.Log
	jobs     *jobs.Manager
	sim      simulator
	events   *jobs.EventBus
	metrics  *metrics.Metrics
	logger   *slog.Logger
	sampler  *logging.ProgressSampler

	mu     sync.Mutex
	notify func(jobs.Event)
	wg     sync.WaitGroup
}

// New builds a controller. Nil dependencies get in-memory defaults.
func New(deps Deps) *Controller {
	c := &Controller{
		settings: deps.Settings,
		queue:    deps.Queue,
		history:  deps.History,
		jobs:     deps.Jobs,
		sim:      deps.Simulator,
		events:   deps.Events,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		notify:   deps.Notify,
		sampler:  logging.NewProgressSampler(25),
	}
	if c.settings == nil {
		c.settings = settings.NewStore(settings.Defaults())
	}
	if c.queue == nil {
		c.queue = queue.New(queue.DefaultCapacity, preview.NewRegistry())
	}
	if c.history == nil {
		c.history = history.NewLog(history.Presets()...)
	}
	if c.jobs == nil {
		c.jobs = jobs.NewManager()
	}
	if c.sim == nil {
		c.sim = enhance.NewSimulator()
	}
	if c.events == nil {
		c.events = jobs.NewEventBus(1000)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	c.logger = c.logger.With("component", "dashboard")
	return c
}

// NewFromConfig builds a controller from the configuration file. Extra
// options are applied to the simulator after the configured timing.
func NewFromConfig(cfg config.Config, alloc preview.Allocator, logger *slog.Logger, m *metrics.Metrics, simOpts ...enhance.Option) *Controller {
	opts := []enhance.Option{
		enhance.WithTiming(cfg.Simulation.Timing()),
		enhance.WithRand(enhance.NewRand(cfg.Simulation.Seed)),
	}
	opts = append(opts, simOpts...)

	return New(Deps{
		Settings:  settings.NewStore(cfg.Defaults),
		Queue:     queue.New(cfg.Queue.Capacity, alloc),
		History:   history.NewLog(history.Presets()...),
		Jobs:      jobs.NewManager(),
		Simulator: enhance.NewSimulator(opts...),
		Events:    jobs.NewEventBus(1000),
		Metrics:   m,
		Logger:    logger,
	})
}

// SetNotifier replaces the push callback, e.g. once the UI runtime is ready.
func (c *Controller) SetNotifier(notify func(jobs.Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = notify
}

// Settings returns the current enhancement settings.
func (c *Controller) Settings() domain.EnhancementSettings {
	return c.settings.Current()
}

// UpdateSettings applies a partial edit from the controls panel.
func (c *Controller) UpdateSettings(patch domain.SettingsPatch) (domain.EnhancementSettings, error) {
	next, err := c.settings.Update(patch)
	if err != nil {
		c.logger.Warn("settings update rejected", "error", err)
		return next, err
	}

	c.publish(jobs.Event{Type: jobs.EventTypeSettings, Settings: &next})
	return next, nil
}

// AddFiles queues a new selection using the current batch mode.
func (c *Controller) AddFiles(files []domain.FileRef) domain.QueueView {
	if len(files) == 0 {
		return c.Queue()
	}

	batchMode := c.settings.Current().BatchMode
	items := c.queue.Add(files, batchMode)
	c.logger.Debug("files queued", "selected", len(files), "queued", len(items), "batch_mode", batchMode)
	return c.queueChanged(items)
}

// RemoveFile drops one queued item by id.
func (c *Controller) RemoveFile(id string) domain.QueueView {
	items := c.queue.Remove(id)
	c.logger.Debug("file removed", "id", id, "queued", len(items))
	return c.queueChanged(items)
}

// Queue returns the upload panel state.
func (c *Controller) Queue() domain.QueueView {
	return c.queueView(c.queue.Items())
}

// History returns all history records, newest first.
func (c *Controller) History() []domain.HistoryRecord {
	return c.history.List()
}

// CurrentRun returns the active or most recent run.
func (c *Controller) CurrentRun() domain.Run {
	return c.jobs.Current()
}

// Events returns published events with sequence greater than since.
func (c *Controller) Events(since int64) []jobs.Event {
	return c.events.Since(since)
}

// Snapshot returns the full dashboard state.
func (c *Controller) Snapshot() domain.Dashboard {
	current := c.settings.Current()
	queueView := c.Queue()
	run := c.jobs.Current()
	return domain.Dashboard{
		Settings:             current,
		Queue:                queueView,
		Run:                  run,
		StatusLabel:          domain.StatusLabel(run, queueView),
		ActiveMode:           domain.ActiveMode(current),
		FrameRateDescription: current.FrameRate.Description(),
		History:              c.history.List(),
	}
}

// StartEnhancement begins a run in the background and returns immediately.
func (c *Controller) StartEnhancement(ctx context.Context) (domain.Run, error) {
	req, err := c.begin()
	if err != nil {
		return c.jobs.Current(), err
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_ = c.execute(ctx, req)
	}()
	return c.jobs.Current(), nil
}

// Enhance runs the queue to completion and returns the finished run.
func (c *Controller) Enhance(ctx context.Context) (domain.Run, error) {
	req, err := c.begin()
	if err != nil {
		return c.jobs.Current(), err
	}
	if err := c.execute(ctx, req); err != nil {
		return c.jobs.Current(), err
	}
	return c.jobs.Current(), nil
}

// Wait blocks until background runs have returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close releases the preview. Call on teardown after cancelling run contexts.
func (c *Controller) Close() {
	c.queue.Close()
}

// begin claims the run slot and snapshots the queue and settings.
func (c *Controller) begin() (enhance.Request, error) {
	items := c.queue.Items()
	if len(items) == 0 {
		return enhance.Request{}, ErrQueueEmpty
	}

	runID := uuid.NewString()
	if err := c.jobs.Start(runID, len(items)); err != nil {
		return enhance.Request{}, err
	}

	c.sampler.Reset()
	c.logger.Info("enhancement started", "run_id", runID, "items", len(items))
	c.publish(jobs.Event{
		RunID:   runID,
		Type:    jobs.EventTypeRun,
		Status:  domain.RunStatusRunning,
		Message: "Enhancement started",
	})

	return enhance.Request{
		RunID:    runID,
		Items:    items,
		Settings: c.settings.Current(),
	}, nil
}

// execute drives the simulator and applies its outcomes to dashboard state.
func (c *Controller) execute(ctx context.Context, req enhance.Request) error {
	started := time.Now()
	req.OnProgress = func(progress float64) {
		stored := c.jobs.SetProgress(progress)
		c.metrics.Progress(stored)
		if c.sampler.ShouldLog(req.RunID, stored) {
			c.logger.Info("enhancement progress", "run_id", req.RunID, "progress", int(stored))
		}
		c.publish(jobs.Event{RunID: req.RunID, Type: jobs.EventTypeProgress, Progress: stored})
	}
	req.OnRecord = func(index int, record domain.HistoryRecord) {
		c.history.Append(record)
		c.jobs.ItemCompleted()
		c.metrics.ItemEnhanced()
		c.logger.Info("item enhanced", "run_id", req.RunID, "index", index, "file", record.FileName)
		c.publish(jobs.Event{RunID: req.RunID, Type: jobs.EventTypeRecord, Record: &record})
	}

	_, err := c.sim.Run(ctx, req)
	if err != nil {
		_ = c.jobs.Transition(domain.RunStatusInterrupted)
		c.metrics.RunFinished(string(domain.RunStatusInterrupted), time.Since(started))
		c.logger.Warn("enhancement interrupted", "run_id", req.RunID, "error", err)
		c.publish(jobs.Event{
			RunID:   req.RunID,
			Type:    jobs.EventTypeRun,
			Status:  domain.RunStatusInterrupted,
			Message: err.Error(),
		})
		return err
	}

	c.queue.Clear()
	c.queueChanged(nil)
	if err := c.jobs.Transition(domain.RunStatusCompleted); err != nil {
		c.logger.Error("complete run", "run_id", req.RunID, "error", err)
	}
	c.metrics.RunFinished(string(domain.RunStatusCompleted), time.Since(started))
	c.logger.Info("enhancement completed", "run_id", req.RunID, "items", len(req.Items))
	c.publish(jobs.Event{
		RunID:    req.RunID,
		Type:     jobs.EventTypeRun,
		Status:   domain.RunStatusCompleted,
		Progress: 100,
		Message:  "Enhancement completed",
	})
	return nil
}

// queueChanged updates metrics, publishes the queue, and returns its view.
func (c *Controller) queueChanged(items []domain.QueuedItem) domain.QueueView {
	view := c.queueView(items)
	c.metrics.QueueLength(len(view.Items))
	c.publish(jobs.Event{
		Type:       jobs.EventTypeQueue,
		Queue:      view.Items,
		PreviewURL: view.PreviewURL,
	})
	return view
}

func (c *Controller) queueView(items []domain.QueuedItem) domain.QueueView {
	if items == nil {
		items = []domain.QueuedItem{}
	}
	total := domain.TotalSize(items)
	return domain.QueueView{
		Items:         items,
		PreviewURL:    c.queue.PreviewURL(),
		TotalSize:     domain.SizeLabel(total),
		EstimatedTime: domain.QueueTimeEstimate(total),
	}
}

// publish stores the event and forwards it to the notifier.
func (c *Controller) publish(event jobs.Event) {
	published := c.events.Publish(event)

	c.mu.Lock()
	notify := c.notify
	c.mu.Unlock()
	if notify != nil {
		notify(published)
	}
}
