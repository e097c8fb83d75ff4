package domain

import "strings"

// NotFoundError lists every candidate tried for an import that could not be resolved.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	URI       string
	Attempted []string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("Could not import `")
	b.WriteString(e.URI)
	b.WriteString("` from any of the following locations:")
	for _, p := range e.Attempted {
		b.WriteString("\n  ")
		b.WriteString(p)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
