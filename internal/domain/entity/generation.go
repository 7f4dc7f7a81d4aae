package entity

import "strings"

// GenerationFailurePrefix marks generated text that is really an error report.
// Generated text is best-effort: callers check for the marker before trusting it.
const GenerationFailurePrefix = "AI Error: "

// GenerationFailure formats a failure marker for the given reason.
func GenerationFailure(reason string) string {
	return GenerationFailurePrefix + reason
}

// IsGenerationFailure reports whether text is a failure marker.
func IsGenerationFailure(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), strings.TrimSpace(GenerationFailurePrefix))
}
