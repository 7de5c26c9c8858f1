package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("dataset has no records")
	ErrUnsorted  = errors.New("records are not strictly ascending by hours")
	ErrBadLights = errors.New("lights must be \"On\" or \"Off\"")
)

// LoadError reports which source failed to load.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
