package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrCannotCancel is a specialisation of ErrInvalidTransition raised by the cancel guard.
	ErrCannotCancel = fmt.Errorf("%w: policy request cannot be cancelled", ErrInvalidTransition)
)
