package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrFeatureNotAvailable  = errors.New("feature not available in current subscription")
)

// FeatureRequiredError is returned when the caller's plan lacks a feature.
type FeatureRequiredError struct {
	Feature Feature
}

func (e *FeatureRequiredError) Error() string {
	return fmt.Sprintf("your subscription plan does not include %s", e.Feature)
}

func (e *FeatureRequiredError) Unwrap() error {
	return ErrFeatureNotAvailable
}
