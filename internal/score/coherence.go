package score

import (
	"fmt"
	"strings"
)

var (
	explanationWords = []string{"because", "therefore", "since"}
	conclusionWords  = []string{"finally", "in conclusion", "to summarize"}
)

// ScoreCoherence checks four structural markers in a response: a literal
// "# Thoughts" heading (case-sensitive), a "step N" reference, an
// explanatory connective, and a closing phrase. Returns the fraction of
// markers present, one of {0, 0.25, 0.5, 0.75, 1.0}.
func ScoreCoherence(response string) float64 {
	lower := strings.ToLower(response)

	markers := 0
	if strings.Contains(response, "# Thoughts") {
		markers++
	}
	for i := 0; i < 10; i++ {
		if strings.Contains(lower, fmt.Sprintf("step %d", i)) {
			markers++
			break
		}
	}
	if containsAny(lower, explanationWords) {
		markers++
	}
	if containsAny(lower, conclusionWords) {
		markers++
	}
	return float64(markers) / 4.0
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
