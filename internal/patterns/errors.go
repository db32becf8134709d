package patterns

import "fmt"

// InvalidPatternError reports a stored or user-submitted pattern that fails
// to compile. The pattern is rejected or reported; extraction continues with
// the remaining patterns.
type InvalidPatternError struct {
	FieldName string
	Pattern   string
	Cause     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern for field %s: %q: %v", e.FieldName, e.Pattern, e.Cause)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Cause
}

// StoreIOError reports a persistence read/write failure. In-memory state is
// preserved so the operation can be retried without losing unsaved learning.
type StoreIOError struct {
	Path  string
	Op    string
	Cause error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Path, e.Cause)
}

func (e *StoreIOError) Unwrap() error {
	return e.Cause
}

// CorruptStoreError reports a store file that failed to parse on load. The
// store falls back to empty for that file instead of aborting startup.
type CorruptStoreError struct {
	Path  string
	Cause error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("store file %s is corrupt: %v", e.Path, e.Cause)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Cause
}

// ImportFormatError reports a share file that does not match the expected
// export format.
type ImportFormatError struct {
	Path    string
	Message string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import file %s: %s", e.Path, e.Message)
}
