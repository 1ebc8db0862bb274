package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifelog/internal/service"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("LIFELOG_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Cleanup(func() {
		flagDatabase, flagLang, flagOut, flagVerbose = "", "", "", false
		flagSeedDays, flagSeedRand = 30, 1
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lifelog %s returned error: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestAnalyzeCommand(t *testing.T) {
	out := runCommand(t, "analyze", "I", "feel", "happy", "and", "grateful")
	if !strings.Contains(out, "Sentiment") || !strings.Contains(out, "positive") {
		t.Fatalf("unexpected analyze output:\n%s", out)
	}
}

func TestExportCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "export.json")

	out := runCommand(t, "export", "--db", filepath.Join(dir, "lifelog.db"), "--out", target)
	if !strings.Contains(out, target) {
		t.Fatalf("expected confirmation mentioning %s, got %q", target, out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var doc service.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.Count != 0 || len(doc.Buckets) == 0 {
		t.Fatalf("unexpected export document: %+v", doc)
	}
}

func TestStatsCommandOnEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	out := runCommand(t, "stats", "--db", filepath.Join(dir, "lifelog.db"), "--lang", "en")
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected dashboard output")
	}
}

func TestSeedThenMonthReport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lifelog.db")

	out := runCommand(t, "seed", "--db", dbPath, "--days", "5")
	if !strings.Contains(out, "Seeded 5 habits") {
		t.Fatalf("unexpected seed output: %q", out)
	}

	out = runCommand(t, "seed", "--db", dbPath)
	if !strings.Contains(out, "skipping") {
		t.Fatalf("expected second seed to skip, got %q", out)
	}

	out = runCommand(t, "month", "--db", dbPath)
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected month report output")
	}
}

func TestPasswdCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lifelog.db")
	out := runCommand(t, "passwd", "--db", dbPath, "me", "secret")
	if !strings.Contains(out, "Password updated for me") {
		t.Fatalf("unexpected passwd output: %q", out)
	}
}
