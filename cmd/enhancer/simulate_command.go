package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"video-enhancer/internal/dashboard"
	"video-enhancer/internal/domain"
	"video-enhancer/internal/enhance"
	"video-enhancer/internal/intake"
	"video-enhancer/internal/logging"
	"video-enhancer/internal/preview"
)

type simulateOptions struct {
	noise        int
	color        int
	detail       int
	frameRate    string
	hdr          string
	format       string
	facePriority bool
	batch        bool
	seed         uint64
	speed        float64
	instant      bool
}

func newSimulateCommand(ctx *commandContext) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate [files...]",
		Short: "Queue video files and run a simulated enhancement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Simulation.Seed = opts.seed
			}
			if cmd.Flags().Changed("speed") && opts.speed > 0 {
				cfg.Simulation.Speed = opts.speed
			}

			logger, err := logging.NewFromConfig(cfg.Logging)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			var simOpts []enhance.Option
			if opts.instant {
				simOpts = append(simOpts, enhance.WithClock(enhance.NewInstantClock(time.Now())))
			}
			controller := dashboard.NewFromConfig(cfg, preview.NewRegistry(), logger, nil, simOpts...)
			defer controller.Close()

			current, err := controller.UpdateSettings(opts.patch(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := intake.NewResolver().Resolve(args)
			for _, item := range report.Rejected() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped: %s\n", item.Message)
			}

			view := controller.AddFiles(report.Files)
			if len(view.Items) == 0 {
				return errors.New("no video files to enhance")
			}
			fmt.Fprintf(out, "Queued %d file(s), %s, queue time %s\n", len(view.Items), view.TotalSize, view.EstimatedTime)
			fmt.Fprintf(out, "Mode: %s · %s · face priority %s\n",
				domain.ActiveMode(current), current.ExportFormat.Upper(), yesNo(current.FacePriority))

			reporter := newProgressReporter(out)
			controller.SetNotifier(reporter.handle)

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			run, err := controller.Enhance(runCtx)
			reporter.finish()
			if err != nil {
				return fmt.Errorf("enhance: %w", err)
			}

			records := controller.History()[:run.Completed]
			fmt.Fprintln(out, renderTable(historyHeaders, historyRows(records), 2))
			fmt.Fprintf(out, "Enhanced %d file(s)\n", run.Completed)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.noise, "noise", 0, "AI noise reduction strength (0-100)")
	flags.IntVar(&opts.color, "color", 0, "Color correction strength (0-100)")
	flags.IntVar(&opts.detail, "detail", 0, "Detail enhancement strength (0-100)")
	flags.StringVar(&opts.frameRate, "fps", "", "Target frame rate: 24, 30, 48, 60")
	flags.StringVar(&opts.hdr, "hdr", "", "HDR tone map: \"Cinematic HDR\", HLG, \"Dolby Vision\"")
	flags.StringVar(&opts.format, "format", "", "Export format: mp4, mov, mkv")
	flags.BoolVar(&opts.facePriority, "face-priority", false, "Prioritize faces")
	flags.BoolVar(&opts.batch, "batch", true, "Queue every file instead of only the first")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed for reproducible runs (0 picks one)")
	flags.Float64Var(&opts.speed, "speed", 1, "Playback speed multiplier for the simulated timing")
	flags.BoolVar(&opts.instant, "instant", false, "Skip real waiting between progress ticks")
	return cmd
}

// patch converts explicitly set flags into a settings edit.
func (o simulateOptions) patch(cmd *cobra.Command) domain.SettingsPatch {
	flags := cmd.Flags()
	var patch domain.SettingsPatch
	if flags.Changed("noise") {
		patch.NoiseReduction = &o.noise
	}
	if flags.Changed("color") {
		patch.ColorCorrection = &o.color
	}
	if flags.Changed("detail") {
		patch.DetailEnhancement = &o.detail
	}
	if flags.Changed("fps") {
		rate := domain.FrameRate(o.frameRate)
		patch.FrameRate = &rate
	}
	if flags.Changed("hdr") {
		hdr := domain.HDRToneMap(o.hdr)
		patch.HDRToneMap = &hdr
	}
	if flags.Changed("format") {
		format := domain.ExportFormat(o.format)
		patch.ExportFormat = &format
	}
	if flags.Changed("face-priority") {
		patch.FacePriority = &o.facePriority
	}
	if flags.Changed("batch") {
		patch.BatchMode = &o.batch
	}
	return patch
}
