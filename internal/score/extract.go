package score

import (
	"regexp"
	"strings"
)

// Non-greedy so adjacent fences do not merge into one block.
var codeFence = regexp.MustCompile("(?s)```\\w*\\n(.*?)```")

// ExtractCode returns the bodies of all fenced code blocks in a response,
// joined by newline, in order of appearance. A response without fences
// yields the empty string; that is a normal outcome, and downstream
// quality scores are zero in that case.
func ExtractCode(response string) string {
	matches := codeFence.FindAllStringSubmatch(response, -1)
	if len(matches) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return strings.Join(blocks, "\n")
}
