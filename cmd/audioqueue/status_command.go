package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-queue/internal/status"
	"github.com/nguyentantai21042004/audio-queue/internal/worker"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the contents of the queue directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, layout, err := ctx.loadLayout()
			if err != nil {
				return err
			}

			snap, err := status.Collect(layout, worker.LockFileName)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderStatus(snap, showAll))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "List done and failed files too")
	return cmd
}
