package gitrepo

import (
	"errors"
	"fmt"
)

// RepositoryError indicates that a path could not be opened as a Git
// repository or that its object store is unreadable. It is fatal to
// construction and never retried.
type RepositoryError struct {
	Path  string
	Cause error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *RepositoryError) Unwrap() error { return e.Cause }

// NotFoundError indicates that a commit identifier did not resolve to any
// commit in the repository.
type NotFoundError struct {
	ID    string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("commit %q not found: %v", e.ID, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *NotFoundError) Unwrap() error { return e.Cause }

// IsNotFound reports whether err is a commit lookup miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
