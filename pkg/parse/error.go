package parse

import "fmt"

// A ParseError reports input that doesn't match one of the rule grammars.
// Segment is the part of the input that failed to match.
type ParseError struct {
	Segment string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Segment == "" {
		return fmt.Sprintf("parse error at end of input: %s", msg)
	}
	return fmt.Sprintf("parse error at %q: %s", snippet(e.Segment), msg)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

const snippetLen = 25

func snippet(segment string) string {
	runes := []rune(segment)
	if len(runes) <= snippetLen {
		return segment
	}
	return string(runes[:snippetLen]) + "..."
}
