package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"video-enhancer/internal/config"
	"video-enhancer/internal/dashboard"
	"video-enhancer/internal/domain"
	"video-enhancer/internal/intake"
	"video-enhancer/internal/jobs"
	"video-enhancer/internal/logging"
	"video-enhancer/internal/metrics"
	"video-enhancer/internal/preview"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// EventName is the runtime event carrying every dashboard event.
const EventName = "dashboard:event"

var videoDialogFilter = []wailsruntime.FileFilter{
	{
		DisplayName: "Video files",
		Pattern:     "*.mp4;*.mov;*.mkv",
	},
}

// App wires configuration, the dashboard controller, and UI runtime callbacks.
type App struct {
	Config    config.Config
	Dashboard *dashboard.Controller
	Intake    *intake.Resolver
	Previews  *preview.Registry
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	assets    fs.FS

	mu         sync.Mutex
	runtimeCtx context.Context
	runCtx     context.Context
	cancelRuns context.CancelFunc
}

// New builds the application with the persisted configuration.
func New() (*App, error) {
	return NewWithAssets(nil)
}

// NewWithAssets builds the application and optionally configures embedded frontend assets.
func NewWithAssets(assets fs.FS) (*App, error) {
	store := config.NewTOMLStore(config.DefaultPath())
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	app := newApp(cfg, logger)
	app.assets = assets
	return app, nil
}

// newApp assembles the application graph from loaded configuration.
func newApp(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}

	registry := preview.NewRegistry()
	m := metrics.New()
	runCtx, cancel := context.WithCancel(context.Background())

	a := &App{
		Config:     cfg,
		Dashboard:  dashboard.NewFromConfig(cfg, registry, logger, m),
		Intake:     intake.NewResolver(),
		Previews:   registry,
		Metrics:    m,
		Logger:     logger,
		runCtx:     runCtx,
		cancelRuns: cancel,
	}
	a.Dashboard.SetNotifier(a.emit)
	return a
}

// Run starts the Wails desktop application and binds backend methods.
func (a *App) Run() error {
	assetOptions := &assetserver.Options{Handler: a.Handler()}
	if a.assets != nil {
		assetOptions.Assets = a.assets
	}

	a.Logger.Info("starting dashboard",
		"width", a.Config.Window.Width,
		"height", a.Config.Window.Height,
	)
	return wails.Run(&options.App{
		Title:       "Video Enhancer",
		Width:       a.Config.Window.Width,
		Height:      a.Config.Window.Height,
		AssetServer: assetOptions,
		DragAndDrop: &options.DragAndDrop{
			EnableFileDrop: true,
		},
		OnStartup:  a.Startup,
		OnShutdown: a.Shutdown,
		Bind:       []interface{}{a},
	})
}

// Handler serves previews and metrics. Without embedded assets it also
// serves the frontend from disk.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(preview.Prefix, a.Previews)
	mux.Handle("/metrics", a.Metrics.Handler())
	if a.assets == nil {
		mux.Handle("/", http.FileServer(http.Dir("./frontend")))
	}
	return mux
}

// Startup stores Wails runtime context for push events and registers file drop.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.runtimeCtx = ctx
	a.mu.Unlock()

	wailsruntime.OnFileDrop(ctx, func(_, _ int, paths []string) {
		a.AddPaths(paths)
	})
}

// Shutdown interrupts any active run and releases the preview.
func (a *App) Shutdown(context.Context) {
	a.mu.Lock()
	a.runtimeCtx = nil
	cancel := a.cancelRuns
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.Dashboard.Wait()
	a.Dashboard.Close()
	a.Logger.Info("dashboard closed", "live_previews", a.Previews.Live())
}

// GetDashboard returns the full dashboard state.
func (a *App) GetDashboard() domain.Dashboard {
	return a.Dashboard.Snapshot()
}

// UpdateSettings applies a partial edit from the controls panel.
func (a *App) UpdateSettings(patch domain.SettingsPatch) (domain.EnhancementSettings, error) {
	return a.Dashboard.UpdateSettings(patch)
}

// PickFiles opens a native multi-file dialog and queues the selection.
func (a *App) PickFiles() (domain.QueueView, error) {
	ctx, err := a.runtimeContext()
	if err != nil {
		return domain.QueueView{}, err
	}

	paths, err := wailsruntime.OpenMultipleFilesDialog(ctx, wailsruntime.OpenDialogOptions{
		Title:   "Select video files",
		Filters: videoDialogFilter,
	})
	if err != nil {
		return domain.QueueView{}, fmt.Errorf("open file dialog: %w", err)
	}

	return a.AddPaths(paths), nil
}

// AddPaths resolves local paths and queues the accepted videos.
func (a *App) AddPaths(paths []string) domain.QueueView {
	report := a.Intake.Resolve(paths)
	for _, item := range report.Rejected() {
		a.Logger.Warn("path not queued", "path", item.Path, "reason", item.Message)
	}
	a.Metrics.IntakeRejected(len(report.Rejected()))

	return a.Dashboard.AddFiles(report.Files)
}

// RemoveFile drops one queued item.
func (a *App) RemoveFile(id string) domain.QueueView {
	return a.Dashboard.RemoveFile(strings.TrimSpace(id))
}

// StartEnhancement begins a run. Empty queues and active runs are no-ops.
func (a *App) StartEnhancement() (domain.Run, error) {
	a.mu.Lock()
	ctx := a.runCtx
	a.mu.Unlock()

	run, err := a.Dashboard.StartEnhancement(ctx)
	if errors.Is(err, dashboard.ErrQueueEmpty) || errors.Is(err, jobs.ErrRunAlreadyActive) {
		a.Logger.Debug("enhancement not started", "reason", err)
		return run, nil
	}
	return run, err
}

// DashboardEvents returns all events with sequence greater than sinceSeq.
func (a *App) DashboardEvents(sinceSeq int64) []jobs.Event {
	return a.Dashboard.Events(sinceSeq)
}

// emit pushes a published event to the frontend when the runtime is up.
func (a *App) emit(event jobs.Event) {
	a.mu.Lock()
	ctx := a.runtimeCtx
	a.mu.Unlock()
	if ctx != nil {
		wailsruntime.EventsEmit(ctx, EventName, event)
	}
}

// runtimeContext returns current Wails runtime context for dialog APIs.
func (a *App) runtimeContext() (context.Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runtimeCtx == nil {
		return nil, fmt.Errorf("runtime context is not initialized")
	}
	return a.runtimeCtx, nil
}
