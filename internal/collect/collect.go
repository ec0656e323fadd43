package collect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/softmetal/promptgauge/internal/result"
	"github.com/softmetal/promptgauge/internal/score"
)

// ErrMalformedFilename reports a result file whose stem does not carry at
// least "<task>_<metaprompt>" underscore-separated segments.
var ErrMalformedFilename = errors.New("malformed result filename")

// Run scores every *.txt result file in resultsDir and writes the full
// report to reportPath, overwriting any previous report. Each file's
// modification time is taken as the moment scoring of that response
// started. The result file doubles as the task specification: its
// "Success Criteria:" section drives the completion score.
func Run(resultsDir, reportPath string) (map[string]*result.Metrics, error) {
	paths, err := filepath.Glob(filepath.Join(resultsDir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("globbing results in %s: %w", resultsDir, err)
	}

	metrics := make(map[string]*result.Metrics)
	for _, path := range paths {
		key, err := RecordKey(path)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading result %s: %w", path, err)
		}
		response := string(data)

		fmt.Printf("Scoring %s...\n", key)
		m, err := score.Evaluate(response, response, info.ModTime())
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", path, err)
		}
		metrics[key] = m
	}

	if err := result.WriteReport(reportPath, metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// RecordKey derives "<task>_<metaprompt>" from a result filename. Stems
// with extra underscore-separated segments are truncated to the first
// two; stems with fewer than two are rejected.
func RecordKey(path string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) < 2 {
		return "", fmt.Errorf("%s: %w", path, ErrMalformedFilename)
	}
	return parts[0] + "_" + parts[1], nil
}
