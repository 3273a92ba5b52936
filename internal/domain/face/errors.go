package face

import (
	"errors"
	"fmt"
)

var (
	ErrFaceNotRegistered = errors.New("face has not been registered")
	ErrFaceMismatch      = errors.New("face verification failed, face does not match")
)

// MismatchError reports a failed verification with the computed confidence.
type MismatchError struct {
	Confidence float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s (confidence %.2f)", ErrFaceMismatch, e.Confidence)
}

func (e *MismatchError) Unwrap() error {
	return ErrFaceMismatch
}
