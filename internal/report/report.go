package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/softmetal/promptgauge/internal/result"
)

type MetapromptSummary struct {
	Name               string  `json:"name"`
	Responses          int     `json:"responses"`
	MeanComplexity     float64 `json:"mean_complexity"`
	MeanReadability    float64 `json:"mean_readability"`
	MeanDocumentation  float64 `json:"mean_documentation"`
	MeanTaskCompletion float64 `json:"mean_task_completion"`
	MeanCoherence      float64 `json:"mean_coherence"`
	CriteriaMet        int     `json:"criteria_met"`
}

// Generate reads an evaluation report and writes a per-metaprompt summary.
func Generate(reportPath, format string, w io.Writer) error {
	records, err := result.ReadReport(reportPath)
	if err != nil {
		return err
	}

	summaries := aggregate(records)

	switch format {
	case "markdown":
		return writeMarkdown(summaries, w)
	case "json":
		return writeJSON(summaries, w)
	default:
		return writeTable(summaries, w)
	}
}

func aggregate(records map[string]*result.Metrics) []MetapromptSummary {
	type accum struct {
		count         int
		complexity    float64
		readability   float64
		documentation float64
		completion    float64
		coherence     float64
		criteriaMet   int
	}
	byPrompt := map[string]*accum{}

	for key, m := range records {
		// Record keys are "<task>_<metaprompt>".
		name := key
		if idx := strings.Index(key, "_"); idx >= 0 {
			name = key[idx+1:]
		}
		a, ok := byPrompt[name]
		if !ok {
			a = &accum{}
			byPrompt[name] = a
		}
		a.count++
		a.complexity += m.Complexity
		a.readability += m.Readability
		a.documentation += m.Documentation
		a.completion += m.TaskCompletion
		a.coherence += m.ResponseCoherence
		a.criteriaMet += len(m.SuccessCriteriaMet)
	}

	var summaries []MetapromptSummary
	for name, a := range byPrompt {
		n := float64(a.count)
		summaries = append(summaries, MetapromptSummary{
			Name:               name,
			Responses:          a.count,
			MeanComplexity:     a.complexity / n,
			MeanReadability:    a.readability / n,
			MeanDocumentation:  a.documentation / n,
			MeanTaskCompletion: a.completion / n,
			MeanCoherence:      a.coherence / n,
			CriteriaMet:        a.criteriaMet,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

func writeTable(summaries []MetapromptSummary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METAPROMPT\tRESPONSES\tCOMPLEXITY\tREADABILITY\tDOCS\tCOMPLETION\tCOHERENCE\tCRITERIA MET")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%d\n",
			s.Name, s.Responses, s.MeanComplexity, s.MeanReadability,
			s.MeanDocumentation, s.MeanTaskCompletion, s.MeanCoherence, s.CriteriaMet)
	}
	return tw.Flush()
}

func writeMarkdown(summaries []MetapromptSummary, w io.Writer) error {
	fmt.Fprintln(w, "| Metaprompt | Responses | Complexity | Readability | Docs | Completion | Coherence | Criteria Met |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %s | %d | %.3f | %.3f | %.3f | %.3f | %.3f | %d |\n",
			s.Name, s.Responses, s.MeanComplexity, s.MeanReadability,
			s.MeanDocumentation, s.MeanTaskCompletion, s.MeanCoherence, s.CriteriaMet)
	}
	return nil
}

func writeJSON(summaries []MetapromptSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
