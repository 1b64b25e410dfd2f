// README: Generation orchestrator; turns preferences into validated plans.
package planner

import (
	"context"
	"fmt"
	"time"

	"dayplan/internal/ai"
)

// Geocoder resolves a place name near a locality to coordinates.
type Geocoder interface {
	Locate(ctx context.Context, place, near string) (lat, lng float64, err error)
}

// Service composes prompt construction, extraction, validation, and
// enrichment into the two public planning operations. It holds no mutable
// state; every call is independent and safely concurrent.
type Service struct {
	text     ai.TextGenerator
	images   ai.ImageGenerator
	geocoder Geocoder
	now      func() time.Time
}

// NewService wires the orchestrator. images and geocoder may be nil, which
// disables the corresponding best-effort enrichment.
func NewService(text ai.TextGenerator, images ai.ImageGenerator, geocoder Geocoder) *Service {
	return &Service{
		text:     text,
		images:   images,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// GeneratePlan builds a full one-day itinerary from the preferences. The
// plan is all-or-nothing: extraction or validation failure fails the call.
// Image and coordinate enrichment are all-or-something: per-activity
// failures degrade to a plan without that garnish. No call is retried.
func (s *Service) GeneratePlan(ctx context.Context, prefs Preferences) (TripPlan, error) {
	prompt := BuildPlanPrompt(prefs, s.now())

	result, err := s.text.GenerateText(ctx, prompt, ai.TextOptions{UseSearchGrounding: true})
	if err != nil {
		return TripPlan{}, fmt.Errorf("generate plan: %w", err)
	}

	jsonText, err := ExtractJSON(result.Text)
	if err != nil {
		return TripPlan{}, fmt.Errorf("generate plan: %w", err)
	}

	plan, err := ValidatePlan(jsonText)
	if err != nil {
		return TripPlan{}, fmt.Errorf("generate plan: %w", err)
	}

	plan.Itinerary = s.enrichWithImages(ctx, plan.Itinerary)
	plan.Itinerary = s.backfillCoordinates(ctx, prefs, plan.Itinerary)
	plan.Sources = convertSources(result.Sources)
	return plan, nil
}

// FindAlternative asks the model for a replacement for the activity at index
// and returns it WITHOUT merging: the caller inspects the suggestion and
// applies it through ReplaceActivity when accepted.
func (s *Service) FindAlternative(ctx context.Context, prefs Preferences, plan TripPlan, replace Activity, index int) (Activity, error) {
	if index < 0 || index >= len(plan.Itinerary) {
		return Activity{}, ErrIndexOutOfRange
	}

	prompt := BuildAlternativePrompt(prefs, plan, replace, index, s.now())

	result, err := s.text.GenerateText(ctx, prompt, ai.TextOptions{UseSearchGrounding: true})
	if err != nil {
		return Activity{}, fmt.Errorf("find alternative: %w", err)
	}

	jsonText, err := ExtractJSON(result.Text)
	if err != nil {
		return Activity{}, fmt.Errorf("find alternative: %w", err)
	}

	activity, err := ValidateActivity(jsonText)
	if err != nil {
		return Activity{}, fmt.Errorf("find alternative: %w", err)
	}

	enriched := s.enrichWithImages(ctx, []Activity{activity})
	enriched = s.backfillCoordinates(ctx, prefs, enriched)
	return enriched[0], nil
}

// convertSources maps provider citations into the plan model. Entries
// lacking a URI stay in; rendering decisions belong to consumers.
func convertSources(in []ai.Source) []Source {
	if len(in) == 0 {
		return []Source{}
	}
	out := make([]Source, len(in))
	for i, s := range in {
		out[i] = Source{URI: s.URI, Title: s.Title}
	}
	return out
}
