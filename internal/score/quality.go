package score

import (
	"regexp"
	"strings"
)

// QualityResult holds the code quality sub-scores computed over the
// extracted code text.
type QualityResult struct {
	Complexity    float64
	Readability   float64
	Documentation float64
}

var (
	nestedControl = regexp.MustCompile(`(\s+)(if|for|while)`)
	functionDef   = regexp.MustCompile(`(def|func)\s+\w+`)
	classDef      = regexp.MustCompile(`class\s+\w+`)
	blockStart    = regexp.MustCompile(`^\s*(def|class|if|for|while)`)
	docMarker     = regexp.MustCompile(`(#|"""|''')`)
	tripleQuoted  = regexp.MustCompile(`(?s)"""(.*?)"""`)
	classDocBlock = regexp.MustCompile(`(?s)class.*?:\s*"""(.*?)"""`)
)

// EvaluateCodeQuality scores extracted code for structural complexity,
// formatting quality, and documentation coverage. Empty input returns the
// zero result without running any of the heuristics, so an answer with no
// code never produces division artifacts.
//
// The max(1, n) guards are what keep readability and documentation
// degrading gracefully on tiny inputs; they must stay as written.
func EvaluateCodeQuality(code string) QualityResult {
	if code == "" {
		return QualityResult{}
	}

	nestedDepth := len(nestedControl.FindAllString(code, -1))
	functionCount := len(functionDef.FindAllString(code, -1))
	classCount := len(classDef.FindAllString(code, -1))

	complexity := (float64(nestedDepth)*0.4 +
		float64(functionCount)*0.3 +
		float64(classCount)*0.3) / 10.0

	lines := strings.Split(code, "\n")
	var longLines, emptyLines, properSpacing int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 80 {
			longLines++
		}
		if trimmed == "" {
			emptyLines++
		}
		if blockStart.MatchString(line) {
			properSpacing++
		}
	}
	total := float64(max(1, len(lines)))
	readability := (1.0-float64(longLines)/total)*0.4 +
		float64(emptyLines)/total*0.3 +
		float64(properSpacing)/total*0.3

	docLines := len(docMarker.FindAllString(code, -1))
	functionDocs := len(tripleQuoted.FindAllString(code, -1))
	classDocs := len(classDocBlock.FindAllString(code, -1))

	documentation := float64(docLines)/total*0.4 +
		float64(functionDocs)/float64(max(1, functionCount))*0.3 +
		float64(classDocs)/float64(max(1, classCount))*0.3

	return QualityResult{
		Complexity:    clamp1(complexity),
		Readability:   readability,
		Documentation: clamp1(documentation),
	}
}

func clamp1(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
