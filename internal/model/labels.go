package model

import (
	"regexp"
	"strings"
)

var splitKeyPattern = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler converts an option key into a human-friendly display name.
// Keys are snake_case by convention; each segment is title-cased.
func DefaultLabeler(key string) string {
	words := splitKeyPattern.Split(key, -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, strings.ToUpper(word[:1])+word[1:])
	}
	return strings.Join(segments, " ")
}
