package planner

import "errors"

var (
	// ErrExtraction means no JSON payload could be isolated from the model's
	// reply. Not retried; the model is unlikely to self-correct on the same prompt.
	ErrExtraction = errors.New("no json payload in model response")

	// ErrValidation means the extracted JSON lacks required structure.
	ErrValidation = errors.New("model response failed validation")

	// ErrIndexOutOfRange is returned for an activity index outside the itinerary.
	ErrIndexOutOfRange = errors.New("activity index out of range")

	// ErrPlanNotFound is returned by the store for an unknown or expired plan id.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrAlternativeInFlight is returned when an alternative lookup for the
	// same plan has not settled yet.
	ErrAlternativeInFlight = errors.New("alternative lookup already in flight")
)
