package khata

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation that addressed a record that does not exist.
// Plain absence on reads is not an error: lookups return a nil record instead.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a record rejected before reaching the store.
type ValidationError struct {
	Field  string // offending field, empty when the record as a whole is invalid
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ImportError reports a malformed snapshot or a failure while restoring one.
// A mid-import failure can leave the store partially cleared.
type ImportError struct {
	Step string // "decode", "clear" or "insert"
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed during %s: %v", e.Step, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
