package extractr

import "regexp"

// maxPatternLength caps user-supplied pattern size outright.
const maxPatternLength = 500

// dangerousShapes is a catalogue of known catastrophic-backtracking
// constructions: an unbounded quantifier inside a group that is itself
// unboundedly quantified, e.g. (.*)+, (.+)+, (a+)+, ([a-z]+)*. This is
// structural sub-pattern matching, not a provable bound on worst-case
// backtracking.
var dangerousShapes = []*regexp.Regexp{
	// (X*)* / (X+)+ and mixed forms, where X is any group body without
	// nested parentheses.
	regexp.MustCompile(`\((?:[^()\\]|\\.)*[*+]\)\s*[*+]`),
	// The same shape with a counted outer quantifier, e.g. (a+){10,}.
	regexp.MustCompile(`\((?:[^()\\]|\\.)*[*+]\)\s*\{\d+,`),
	// A quantified group holding a quantified inner group, e.g. ((ab)+)*.
	regexp.MustCompile(`\(\((?:[^()\\]|\\.)*\)[*+]\)\s*[*+]`),
}

// IsSafePattern reports whether a regex pattern is acceptable for use
// in a template. It rejects patterns longer than 500 characters,
// patterns matching the dangerous-shape catalogue, and patterns that
// fail to compile. The validator calls this pre-flight; the extraction
// path calls it again as a fail-closed guard before any pattern reaches
// a field evaluation.
func IsSafePattern(pattern string) bool {
	if len(pattern) > maxPatternLength {
		return false
	}
	for _, shape := range dangerousShapes {
		if shape.MatchString(pattern) {
			return false
		}
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return false
	}
	return true
}

// isDangerousPattern reports whether the pattern hits the length cap or
// the dangerous-shape catalogue, independent of whether it compiles.
// The validator uses this to distinguish "dangerous" from "invalid".
func isDangerousPattern(pattern string) bool {
	if len(pattern) > maxPatternLength {
		return true
	}
	for _, shape := range dangerousShapes {
		if shape.MatchString(pattern) {
			return true
		}
	}
	return false
}
