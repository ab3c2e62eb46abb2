package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"triage/internal/classify"
	"triage/internal/config"
	"triage/internal/export"
	"triage/internal/history"
	"triage/internal/logging"
	"triage/internal/sheet"
)

type rulePass int

const (
	passAll rulePass = iota
	passOne
	passTwo
)

type runOptions struct {
	asOf      string
	outputDir string
	format    string
	noExport  bool
	jsonOut   bool
}

func bindRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Evaluate rules as of this date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for exported result files (default from config)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: xlsx or csv (default from config)")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "Skip writing result files")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit a JSON summary instead of a table")
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run every priority rule against a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, ctx, args[0], passAll, opts)
		},
	}
	bindRunFlags(cmd, opts)
	return cmd
}

type ruleSummary struct {
	Key         string `json:"rule"`
	Description string `json:"description"`
	Records     int    `json:"records"`
	File        string `json:"file,omitempty"`
}

type runSummary struct {
	Input              string        `json:"input"`
	AsOf               string        `json:"as_of"`
	Rows               int           `json:"rows"`
	Groups             int           `json:"groups"`
	BlankReferenceRows int           `json:"blank_reference_rows,omitempty"`
	Rules              []ruleSummary `json:"rules"`
}

func executeRun(cmd *cobra.Command, ctx *commandContext, inputPath string, pass rulePass, opts *runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	started := time.Now()
	asOf, err := resolveAsOf(opts.asOf, started)
	if err != nil {
		return err
	}

	table, err := sheet.ReadFile(inputPath)
	if err != nil {
		return err
	}

	ds, err := classify.Prepare(table)
	if err != nil {
		return err
	}
	logger.Debug("resolved columns",
		"reference", table.Columns[ds.Cols.Reference],
		"status", table.Columns[ds.Cols.Status],
		"initial", table.Columns[ds.Cols.Initial],
		"updated", table.Columns[ds.Cols.Updated])
	if blank := ds.BlankKeyRows(); blank > 0 {
		// Blank references all collapse into one group; surfaced so
		// operators can decide whether the source data needs fixing.
		logger.Warn("rows with blank reference codes grouped together", "rows", blank)
	}

	var outcome classify.Outcome
	switch pass {
	case passOne:
		outcome.PriorityOne = classify.PriorityOne(ds, asOf)
	case passTwo:
		outcome.PriorityTwo = classify.PriorityTwo(ds, asOf)
	default:
		outcome = classify.Run(ds, asOf)
	}

	exported := make(map[string]string)
	if !opts.noExport {
		dir := opts.outputDir
		if dir == "" {
			dir = cfg.Paths.OutputDir
		} else if dir, err = config.ExpandPath(dir); err != nil {
			return err
		}
		format := opts.format
		if format == "" {
			format = cfg.Export.Format
		}
		paths, err := export.Write(outcome, dir, format)
		if err != nil {
			return err
		}
		for _, path := range paths {
			exported[ruleKeyForPath(path)] = path
		}
		logger.Info("exported result files", "dir", dir, "files", len(paths))
	}

	summary := buildSummary(inputPath, asOf, ds, outcome, exported)

	if cfg.History.Enabled {
		recordHistory(cmd, logger, cfg, summary, started, asOf, inputPath)
	}

	if opts.jsonOut {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	printSummary(cmd, summary)
	return nil
}

func resolveAsOf(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return sheet.Midnight(now), nil
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q (expected YYYY-MM-DD)", value)
	}
	return ts, nil
}

func buildSummary(inputPath string, asOf time.Time, ds *classify.Dataset, outcome classify.Outcome, exported map[string]string) runSummary {
	summary := runSummary{
		Input:              inputPath,
		AsOf:               asOf.Format("2006-01-02"),
		Rows:               ds.Table.Len(),
		Groups:             ds.GroupCount(),
		BlankReferenceRows: ds.BlankKeyRows(),
	}
	for _, key := range classify.RuleKeys() {
		table := outcome.Table(key)
		if table == nil {
			continue
		}
		summary.Rules = append(summary.Rules, ruleSummary{
			Key:         key,
			Description: ruleDescription(key),
			Records:     table.Len(),
			File:        exported[key],
		})
	}
	return summary
}

func recordHistory(cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, summary runSummary, started, asOf time.Time, inputPath string) {
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		// A history failure must not discard a finished classification.
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer store.Close()

	counts := make(map[string]int, len(summary.Rules))
	outputDir := ""
	for _, rule := range summary.Rules {
		counts[rule.Key] = rule.Records
		if rule.File != "" {
			outputDir = filepath.Dir(rule.File)
		}
	}
	run := history.Run{
		StartedAt:  started,
		FinishedAt: time.Now(),
		AsOf:       asOf,
		InputPath:  inputPath,
		InputRows:  summary.Rows,
		GroupCount: summary.Groups,
		RuleCounts: counts,
		OutputDir:  outputDir,
	}
	if _, err := store.RecordRun(cmd.Context(), run); err != nil {
		logger.Warn("failed to record run history", "error", err)
	}
}

func ruleDescription(key string) string {
	if key == "1" {
		return "all statuses rejected"
	}
	for _, rule := range classify.PairRules {
		if rule.Key == key {
			return "rejected + " + rule.Other
		}
	}
	return ""
}

func ruleKeyForPath(path string) string {
	base := filepath.Base(path)
	for _, key := range classify.RuleKeys() {
		if base == export.FileName(key, "xlsx") || base == export.FileName(key, "csv") {
			return key
		}
	}
	return ""
}

func printSummary(cmd *cobra.Command, summary runSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Classified %d rows (%d groups) from %s as of %s\n",
		summary.Rows, summary.Groups, summary.Input, summary.AsOf)
	if summary.BlankReferenceRows > 0 {
		printNotice(out, fmt.Sprintf("%d rows have blank reference codes and were grouped as one unit", summary.BlankReferenceRows))
	}

	rows := make([][]string, 0, len(summary.Rules))
	for _, rule := range summary.Rules {
		file := rule.File
		if file == "" {
			file = "-"
		}
		rows = append(rows, []string{
			rule.Key,
			rule.Description,
			strconv.Itoa(rule.Records),
			file,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Rule", "Description", "Records", "File"},
		rows,
		2,
	))
}
