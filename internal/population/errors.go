package population

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a config value outside its valid range.
var ErrInvalidParameter = errors.New("population: invalid parameter")

// ParameterError names the field that failed validation.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("population: invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
