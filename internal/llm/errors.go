package llm

import (
	"errors"
	"fmt"
)

// GenerationError wraps a failed generative call. It aborts the enclosing
// document-level operation; results already computed for other documents
// are unaffected.
type GenerationError struct {
	Model   string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed (%s): %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed (%s): %s", e.Model, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// IsGenerationError reports whether err is (or wraps) a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
