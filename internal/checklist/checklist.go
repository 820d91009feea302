// Package checklist reads markdown checkboxes out of task content, so a
// task written as a list of "- [ ]" items can show its progress.
package checklist

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// "  - [x] Buy milk" -> state "x"
	checkboxPattern = regexp.MustCompile(`(?m)^\s*[-*] \[([ xX])\] +\S`)
	fencedCode      = regexp.MustCompile("(?s)```.*?```")
)

// Stats is the checkbox progress of one piece of content.
type Stats struct {
	Total int
	Done  int
}

// Empty reports whether the content had no checkboxes.
func (s Stats) Empty() bool {
	return s.Total == 0
}

// Complete reports whether there is at least one checkbox and all are ticked.
func (s Stats) Complete() bool {
	return s.Total > 0 && s.Done == s.Total
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d", s.Done, s.Total)
}

// Parse counts the checkboxes in content. Checkboxes inside fenced code
// blocks are ignored.
func Parse(content string) Stats {
	if !strings.Contains(content, "[") {
		return Stats{}
	}

	var s Stats
	for _, m := range checkboxPattern.FindAllStringSubmatch(fencedCode.ReplaceAllString(content, ""), -1) {
		s.Total++
		if strings.EqualFold(m[1], "x") {
			s.Done++
		}
	}
	return s
}
