package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"triage/internal/classify"
	"triage/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent classification runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled (set history.enabled = true)")
			}

			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.AsOf.Format("2006-01-02"),
					run.InputPath,
					strconv.Itoa(run.InputRows),
					strconv.Itoa(run.GroupCount),
					formatRuleCounts(run.RuleCounts),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "As Of", "Input", "Rows", "Groups", "Results"},
				rows,
				3, 4,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	return cmd
}

func formatRuleCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(counts))
	for _, key := range classify.RuleKeys() {
		if count, ok := counts[key]; ok {
			parts = append(parts, fmt.Sprintf("%s:%d", key, count))
		}
	}
	return strings.Join(parts, " ")
}
