package introspect

import "fmt"

// ConfigurationError reports a query that is malformed rather than one
// that found nothing: a suffix applied to a subject kind it is not legal
// for, a predicate missing its required owner, or a subject of a kind
// the library does not recognize.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("introspect: %s: %s", e.Op, e.Reason)
}

// NotFoundError reports a singular lookup that matched nothing.
// Plural queries never produce it; they return empty results instead.
type NotFoundError struct {
	Op   string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("introspect: %s: %q not found", e.Op, e.Name)
}

// AmbiguousResultError reports a singular lookup that matched more than
// one candidate where exactly one was required.
type AmbiguousResultError struct {
	Op    string
	Name  string
	Count int
}

func (e *AmbiguousResultError) Error() string {
	return fmt.Sprintf("introspect: %s: %q matched %d candidates", e.Op, e.Name, e.Count)
}

func configErr(op, format string, args ...any) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
