package result

// Metrics is one scored transcript, keyed by "<task>_<metaprompt>" in the
// report. Constructed once per response and immutable after that.
type Metrics struct {
	Complexity         float64  `json:"complexity"`
	Readability        float64  `json:"readability"`
	Documentation      float64  `json:"documentation"`
	TaskCompletion     float64  `json:"task_completion"`
	ResponseCoherence  float64  `json:"response_coherence"`
	TimeToCompletion   float64  `json:"time_to_completion"`
	SuccessCriteriaMet []string `json:"success_criteria_met"`
}
