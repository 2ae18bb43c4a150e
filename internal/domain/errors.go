package domain

import (
	"errors"
	"fmt"
)

// Configuration errors, surfaced before any network call is made.
var (
	// ErrUnknownService is returned for a service name other than
	// "observation" or "featureOfInterest".
	ErrUnknownService = errors.New("unknown service name")

	// ErrNoFeatureID is returned when a retrieval needs feature identifiers
	// and none survived normalization.
	ErrNoFeatureID = errors.New("at least one feature identifier is required")

	// ErrNoSelector is returned when a feature-of-interest request supplies
	// neither feature identifiers nor a bounding box.
	ErrNoSelector = errors.New("either feature identifiers or a bounding box is required")

	// ErrConflictingSelector is returned when both selection modes are
	// supplied at once.
	ErrConflictingSelector = errors.New("feature identifiers and bounding box are mutually exclusive")
)

// TimeParseError reports a record whose date field could not be parsed while
// time parsing was requested. The pipeline does not repair these; callers
// retry the batch with parsing disabled to get the raw strings back.
type TimeParseError struct {
	FeatureID string
	Raw       string
	Err       error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("parse observation time %q for %s: %v", e.Raw, e.FeatureID, e.Err)
}

func (e *TimeParseError) Unwrap() error { return e.Err }
