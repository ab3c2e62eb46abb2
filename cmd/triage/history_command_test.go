package main

import (
	"testing"
)

func TestHistoryCommandListsRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history (empty): %v\n%s", err, out)
	}
	requireContains(t, out, "No runs recorded yet")

	input := writeFixtureCSV(t, env.baseDir,
		"ref-a,Rejected,2024-06-01,2024-07-01",
	)
	if _, err := runCLI(t, []string{"run", input, "--as-of", "2024-09-01", "--no-export"}, env.configPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	requireContains(t, out, "records.csv")
	requireContains(t, out, "2024-09-01")
	requireContains(t, out, "1:1")
}

func TestHistoryCommandDisabled(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	if _, err := runCLI(t, []string{"history"}, env.configPath); err == nil {
		t.Fatal("expected error when history is disabled")
	}
}
