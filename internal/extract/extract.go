// Package extract pulls contributor mentions out of raw post Markdown.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// matrixLinkRe captures a markdown link whose target is a matrix.to identity:
// [label](https://matrix.to/#/@user:domain). Any other link form is not a
// mention.
var matrixLinkRe = regexp.MustCompile(`\[([^\]]*)\]\((https://matrix\.to/#/@[^)]+)\)`)

// Match is a single (user, matrix link) capture from one line.
type Match struct {
	User       string
	MatrixLink string
}

// Extractor recognises lines that both name a contribution keyword and link a
// matrix.to identity. The two conditions are tested independently per line.
type Extractor struct {
	keywordRe *regexp.Regexp
}

// New compiles the keyword predicate from the configured keyword set.
// Keywords are matched case-sensitively as whole words; blank entries are
// ignored.
func New(keywords []string) (*Extractor, error) {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("extract: at least one keyword is required")
	}
	re, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("extract: compile keyword pattern: %w", err)
	}
	return &Extractor{keywordRe: re}, nil
}

// Extract scans text line by line and returns every mention found, in line
// order and left-to-right within a line. A line yields mentions only when it
// contains a keyword and at least one matrix link; one predicate without the
// other yields nothing.
func (e *Extractor) Extract(text string) []Match {
	var out []Match
	for _, line := range strings.Split(text, "\n") {
		if !e.keywordRe.MatchString(line) {
			continue
		}
		for _, m := range matrixLinkRe.FindAllStringSubmatch(line, -1) {
			out = append(out, Match{User: m[1], MatrixLink: m[2]})
		}
	}
	return out
}
