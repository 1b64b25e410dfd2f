package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ValidatePlan decodes and normalizes a full-plan payload. Unknown extra
// keys are ignored: the schema is a minimum contract, not an exact one,
// because the provider is not bound to omit extra fields. The returned error
// names the first structural defect.
func ValidatePlan(jsonText string) (TripPlan, error) {
	var plan TripPlan
	if err := json.Unmarshal([]byte(jsonText), &plan); err != nil {
		return TripPlan{}, fmt.Errorf("%w: %s", ErrValidation, decodeDefect(err))
	}

	if strings.TrimSpace(plan.Title) == "" {
		return TripPlan{}, fmt.Errorf("%w: missing tripTitle", ErrValidation)
	}
	if strings.TrimSpace(plan.Summary) == "" {
		return TripPlan{}, fmt.Errorf("%w: missing summary", ErrValidation)
	}
	if len(plan.Itinerary) == 0 {
		return TripPlan{}, fmt.Errorf("%w: itinerary is empty", ErrValidation)
	}

	for i := range plan.Itinerary {
		if err := checkActivity(&plan.Itinerary[i], fmt.Sprintf("itinerary[%d]", i)); err != nil {
			return TripPlan{}, err
		}
		normalizeActivity(&plan.Itinerary[i])
	}
	if plan.TotalEstimatedCost != nil && plan.TotalEstimatedCost.Amount < 0 {
		plan.TotalEstimatedCost.Amount = 0
	}
	return plan, nil
}

// ValidateActivity decodes and normalizes a single-activity payload.
func ValidateActivity(jsonText string) (Activity, error) {
	var activity Activity
	if err := json.Unmarshal([]byte(jsonText), &activity); err != nil {
		return Activity{}, fmt.Errorf("%w: %s", ErrValidation, decodeDefect(err))
	}
	if err := checkActivity(&activity, "activity"); err != nil {
		return Activity{}, err
	}
	normalizeActivity(&activity)
	return activity, nil
}

func checkActivity(a *Activity, path string) error {
	switch {
	case strings.TrimSpace(a.TimeOfDay) == "":
		return fmt.Errorf("%w: %s missing timeOfDay", ErrValidation, path)
	case strings.TrimSpace(a.Title) == "":
		return fmt.Errorf("%w: %s missing title", ErrValidation, path)
	case strings.TrimSpace(a.Description) == "":
		return fmt.Errorf("%w: %s missing description", ErrValidation, path)
	}
	return nil
}

// normalizeActivity applies the tolerance rules for model-authored fields:
// coordinates are accepted only as a pair, out-of-range ratings are clamped
// to the nearest bound, and negative cost amounts floor at zero.
func normalizeActivity(a *Activity) {
	if (a.Latitude == nil) != (a.Longitude == nil) {
		a.Latitude = nil
		a.Longitude = nil
	}
	if a.Reviews != nil && a.Reviews.Rating != nil {
		switch {
		case *a.Reviews.Rating > 5:
			*a.Reviews.Rating = 5
		case *a.Reviews.Rating < 0:
			*a.Reviews.Rating = 0
		}
	}
	if a.Cost != nil && a.Cost.Amount < 0 {
		a.Cost.Amount = 0
	}
}

// decodeDefect turns a json decoding error into a field-level description.
func decodeDefect(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %q has wrong type %s", typeErr.Field, typeErr.Value)
	}
	return err.Error()
}
