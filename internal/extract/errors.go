package extract

import "fmt"

// UnknownFieldError reports an extraction request for a field with no
// catalog entry. Callers receive an explicit empty result alongside it.
type UnknownFieldError struct {
	FieldName string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.FieldName)
}
