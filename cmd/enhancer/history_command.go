package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"video-enhancer/internal/history"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "history",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Short:       "Show the sample enhancement history",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := history.NewLog(history.Presets()...).List()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(historyHeaders, historyRows(records), 2))
			fmt.Fprintf(out, "%d jobs\n", len(records))
			return nil
		},
	}
}
