package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-queue/internal/output"
	"github.com/nguyentantai21042004/audio-queue/internal/processor"
	"github.com/nguyentantai21042004/audio-queue/internal/readiness"
	"github.com/nguyentantai21042004/audio-queue/internal/router"
	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
	"github.com/nguyentantai21042004/audio-queue/internal/transcriber"
	"github.com/nguyentantai21042004/audio-queue/internal/watcher"
	"github.com/nguyentantai21042004/audio-queue/internal/worker"
	"github.com/nguyentantai21042004/audio-queue/pkg/executor"
)

func newWorkerCommand(ctx *commandContext) *cobra.Command {
	var (
		model   string
		device  string
		poll    time.Duration
		settle  time.Duration
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Watch the inbox and transcribe audio files until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("model") {
				cfg.Whisper.Model = model
			}
			if flags.Changed("device") {
				cfg.Whisper.Device = device
			}
			if flags.Changed("poll") {
				cfg.Worker.PollInterval = poll
			}
			if flags.Changed("settle") {
				cfg.Worker.SettleInterval = settle
			}
			if noWatch {
				off := false
				cfg.Worker.Watch = &off
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			layout, err := cfg.Layout()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := ctx.logger(cfg)
			log.Info(runCtx, "========================================")
			log.Info(runCtx, "Audio Transcription Queue Worker")
			log.Info(runCtx, "========================================")

			if err := layout.Ensure(); err != nil {
				return err
			}

			exec := executor.New()
			proc := processor.New(
				readiness.New(cfg.Worker.SettleInterval, log),
				transcriber.New(cfg.Whisper, exec, log),
				output.New(layout.Output, cfg.Output.Docx, log),
				router.New(layout, log),
				log,
			)

			var watch watcher.Watcher
			if cfg.Worker.WatchEnabled() {
				w, err := watcher.New(layout, log)
				if err != nil {
					log.Warn(runCtx, "Inbox watcher unavailable, polling only: %v", err)
				} else {
					defer w.Stop()
					watch = w
				}
			}

			wk := worker.New(layout, cfg.Worker.PollInterval, scanner.New(layout, log), proc, watch, log)

			log.Info(runCtx, "Whisper: %s (model %s on %s)", cfg.Whisper.BinaryPath, cfg.Whisper.Model, cfg.Whisper.Device)
			log.Info(runCtx, "  Inbox:  %s", layout.Inbox)
			log.Info(runCtx, "  Output: %s", layout.Output)
			log.Info(runCtx, "  Done:   %s", layout.Done)
			log.Info(runCtx, "  Failed: %s", layout.Failed)
			log.Info(runCtx, "Drop audio files into the inbox to transcribe. Press Ctrl+C to stop.")

			if err := wk.Run(runCtx); err != nil {
				return fmt.Errorf("worker: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Whisper model to use (default large)")
	cmd.Flags().StringVar(&device, "device", "", "Device to run on (default cuda:0)")
	cmd.Flags().DurationVar(&poll, "poll", 0, "Poll interval (default 2s)")
	cmd.Flags().DurationVar(&settle, "settle", 0, "Time a file's size must stay unchanged before processing (default 1s)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable filesystem notifications and rely on polling only")

	return cmd
}
