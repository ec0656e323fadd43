package result

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport serializes all records to a single pretty-printed JSON
// document, overwriting any previous report at path.
func WriteReport(path string, records map[string]*Metrics) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func ReadReport(path string) (map[string]*Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var records map[string]*Metrics
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return records, nil
}
