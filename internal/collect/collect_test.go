package collect_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/softmetal/promptgauge/internal/collect"
	"github.com/softmetal/promptgauge/internal/result"
	"github.com/softmetal/promptgauge/internal/score"
)

const fixture = "I successfully implemented the tokenizer fix.\n" +
	"```python\ndef tokenize(s):\n    if not s:\n        return []\n```\n\n" +
	"Success Criteria:\n- tokenizer handles empty input\n- tests added\n"

func TestRecordKey(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"task and metaprompt", "results/parser_direct.txt", "parser_direct", false},
		{"extra segments truncated", "results/parser_direct_run3_final.txt", "parser_direct", false},
		{"no underscore", "results/parser.txt", "", true},
		{"bare stem", "single.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect.RecordKey(tt.path)
			if tt.wantErr {
				if !errors.Is(err, collect.ErrMalformedFilename) {
					t.Errorf("expected ErrMalformedFilename, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RecordKey(%q): %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("RecordKey(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	resultsDir := t.TempDir()
	reportPath := filepath.Join(t.TempDir(), "evaluation_results.json")

	files := []string{"parser_direct.txt", "parser_cot.txt", "cache_direct.txt"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(resultsDir, name), []byte(fixture), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}
	// Non-txt files are not result files.
	os.WriteFile(filepath.Join(resultsDir, "notes_scratch.md"), []byte("ignore me"), 0o644)

	metrics, err := collect.Run(resultsDir, reportPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("got %d records, want 3", len(metrics))
	}
	for _, key := range []string{"parser_direct", "parser_cot", "cache_direct"} {
		m, ok := metrics[key]
		if !ok {
			t.Fatalf("missing record %q", key)
		}
		if m.Complexity <= 0 {
			t.Errorf("%s: expected positive complexity, got %f", key, m.Complexity)
		}
		if m.TimeToCompletion < 0 {
			t.Errorf("%s: negative time_to_completion", key)
		}
	}

	stored, err := result.ReadReport(reportPath)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if len(stored) != len(metrics) {
		t.Errorf("report has %d records, want %d", len(stored), len(metrics))
	}
	for key, m := range metrics {
		s, ok := stored[key]
		if !ok {
			t.Fatalf("report missing key %q", key)
		}
		if s.Complexity != m.Complexity || s.TaskCompletion != m.TaskCompletion {
			t.Errorf("%s: stored record differs from evaluated record", key)
		}
	}
}

func TestRunMalformedFilename(t *testing.T) {
	resultsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(resultsDir, "nounderscores.txt"), []byte(fixture), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err := collect.Run(resultsDir, filepath.Join(t.TempDir(), "out.json"))
	if !errors.Is(err, collect.ErrMalformedFilename) {
		t.Errorf("expected ErrMalformedFilename, got %v", err)
	}
}

func TestRunMalformedTaskSpec(t *testing.T) {
	resultsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(resultsDir, "parser_direct.txt"), []byte("no criteria here"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err := collect.Run(resultsDir, filepath.Join(t.TempDir(), "out.json"))
	if !errors.Is(err, score.ErrMalformedTaskSpec) {
		t.Errorf("expected ErrMalformedTaskSpec, got %v", err)
	}
}

func TestRunEmptyDir(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "out.json")
	metrics, err := collect.Run(t.TempDir(), reportPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(metrics) != 0 {
		t.Errorf("expected no records, got %d", len(metrics))
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Errorf("expected empty report to be written: %v", err)
	}
}
