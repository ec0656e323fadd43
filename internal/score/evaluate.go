package score

import (
	"time"

	"github.com/softmetal/promptgauge/internal/result"
)

// Evaluate scores one response against its task specification and returns
// the assembled metrics record. start marks when scoring of this response
// began; the elapsed wall-clock seconds are stamped on the record.
//
// The only error path is a task spec without success criteria, which
// propagates to the caller; the evaluator has no recovery policy of its
// own.
func Evaluate(response, taskSpec string, start time.Time) (*result.Metrics, error) {
	criteria, err := ParseSuccessCriteria(taskSpec)
	if err != nil {
		return nil, err
	}

	quality := EvaluateCodeQuality(ExtractCode(response))
	completion, met := ScoreTaskCompletion(response, criteria)

	return &result.Metrics{
		Complexity:         quality.Complexity,
		Readability:        quality.Readability,
		Documentation:      quality.Documentation,
		TaskCompletion:     completion,
		ResponseCoherence:  ScoreCoherence(response),
		TimeToCompletion:   time.Since(start).Seconds(),
		SuccessCriteriaMet: met,
	}, nil
}
