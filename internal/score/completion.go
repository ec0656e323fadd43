package score

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedTaskSpec reports a task specification without a parseable
// "Success Criteria:" section. The collector treats this as fatal: a spec
// that cannot declare its criteria is an input-contract violation, not
// something to score around.
var ErrMalformedTaskSpec = errors.New("malformed task spec")

var criteriaBlock = regexp.MustCompile(`(?s)Success Criteria:\n-(.*?)(?:\n\n|$)`)

// completionIndicators each add 0.2 to the raw completion score when
// present anywhere in the lowercased response. They are independent, so
// the raw subtotal can exceed 1.0 before the final clamp.
var completionIndicators = []string{
	"completed", "finished", "done",
	"successfully", "implemented", "fixed",
}

// ParseSuccessCriteria extracts the bullet list under the "Success
// Criteria:" heading, terminated by a blank line or end of document.
func ParseSuccessCriteria(doc string) ([]string, error) {
	m := criteriaBlock.FindStringSubmatch(doc)
	if m == nil {
		return nil, fmt.Errorf("no Success Criteria section: %w", ErrMalformedTaskSpec)
	}
	var criteria []string
	for _, part := range strings.Split(m[1], "\n-") {
		part = strings.TrimSpace(part)
		if part != "" {
			criteria = append(criteria, part)
		}
	}
	return criteria, nil
}

// ScoreTaskCompletion scores a response against the declared success
// criteria: 0.2 per completion indicator found in the response, 0.3 per
// criterion any of whose whitespace tokens appears case-insensitively,
// clamped to 1.0. Met criteria keep the order they appear in the spec.
func ScoreTaskCompletion(response string, criteria []string) (float64, []string) {
	lower := strings.ToLower(response)

	score := 0.0
	met := []string{}

	for _, indicator := range completionIndicators {
		if strings.Contains(lower, indicator) {
			score += 0.2
		}
	}

	for _, criterion := range criteria {
		for _, token := range strings.Fields(criterion) {
			if strings.Contains(lower, strings.ToLower(token)) {
				score += 0.3
				met = append(met, criterion)
				break
			}
		}
	}

	return clamp1(score), met
}
