package pathutils

import "strings"

// PathSanitizer normalizes path arguments consistently across commands.
type PathSanitizer struct {
	homeExpander *HomeExpander
}

// NewPathSanitizer constructs a PathSanitizer with the default home expander.
func NewPathSanitizer() *PathSanitizer {
	return NewPathSanitizerWithExpander(nil)
}

// NewPathSanitizerWithExpander constructs a PathSanitizer using the provided expander.
func NewPathSanitizerWithExpander(homeExpander *HomeExpander) *PathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &PathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and removes
// empty values while preserving argument order.
func (sanitizer *PathSanitizer) Sanitize(candidatePaths []string) []string {
	expander := NewHomeExpander()
	if sanitizer != nil && sanitizer.homeExpander != nil {
		expander = sanitizer.homeExpander
	}

	sanitizedPaths := make([]string, 0, len(candidatePaths))
	for candidateIndex := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePaths[candidateIndex])
		if len(trimmedCandidate) == 0 {
			continue
		}

		expandedPath := expander.Expand(trimmedCandidate)
		if len(expandedPath) == 0 {
			continue
		}

		sanitizedPaths = append(sanitizedPaths, expandedPath)
	}

	if len(sanitizedPaths) == 0 {
		return nil
	}
	return sanitizedPaths
}
