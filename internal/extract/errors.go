package extract

import "fmt"

// ExtractionError reports that a history traversal failed before completing.
// Callers are expected to log it and continue with an empty batch rather
// than terminate.
type ExtractionError struct {
	Op    string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("history extraction failed: %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error { return e.Cause }
