package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-queue/internal/enqueue"
)

func newEnqueueCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "enqueue <audio_file> [audio_file ...]",
		Short: "Copy audio files into the inbox for transcription",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, layout, err := ctx.loadLayout()
			if err != nil {
				return err
			}
			if err := layout.Ensure(); err != nil {
				return err
			}

			results := enqueue.New(layout, ctx.logger(cfg)).Enqueue(cmd.Context(), args)

			out := cmd.OutOrStdout()
			failed := printEnqueueResults(out, results)
			fmt.Fprintln(out, "\nFiles will be processed by the worker. Run:")
			fmt.Fprintln(out, "  audioqueue worker")

			if failed > 0 {
				return errors.New("some files could not be queued")
			}
			return nil
		},
	}
}

// printEnqueueResults writes one line per result and returns how many hit an
// I/O error.
func printEnqueueResults(w io.Writer, results []enqueue.Result) int {
	failed := 0
	for _, r := range results {
		switch r.Status {
		case enqueue.StatusQueued:
			fmt.Fprintf(w, "Queued: %s\n", r.Name)
		case enqueue.StatusAlreadyQueued:
			fmt.Fprintf(w, "Already in queue: %s\n", r.Name)
		case enqueue.StatusNotFound:
			fmt.Fprintf(w, "File not found: %s\n", r.Path)
		case enqueue.StatusNotAFile:
			fmt.Fprintf(w, "Not a file: %s\n", r.Path)
		case enqueue.StatusUnsupported:
			fmt.Fprintf(w, "Unsupported extension: %s\n", r.Path)
		default:
			failed++
			fmt.Fprintf(w, "Error: %s: %v\n", r.Path, r.Err)
		}
	}
	return failed
}
