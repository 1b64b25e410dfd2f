package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dayplan/internal/ai"
)

type imageGenFunc func(ctx context.Context, prompt string, opts ai.ImageOptions) (*ai.ImageResult, error)

func (f imageGenFunc) GenerateImage(ctx context.Context, prompt string, opts ai.ImageOptions) (*ai.ImageResult, error) {
	return f(ctx, prompt, opts)
}

type geocoderFunc func(ctx context.Context, place, near string) (float64, float64, error)

func (f geocoderFunc) Locate(ctx context.Context, place, near string) (float64, float64, error) {
	return f(ctx, place, near)
}

func enrichFixture() []Activity {
	return []Activity{
		{TimeOfDay: "Morning", Title: "Castle", Description: "Old walls."},
		{TimeOfDay: "Afternoon", Title: "Garden", Description: "Botanical stroll."},
		{TimeOfDay: "Evening", Title: "Bistro", Description: "Dinner."},
	}
}

func TestEnrichWithImagesFanout(t *testing.T) {
	gen := imageGenFunc(func(_ context.Context, prompt string, _ ai.ImageOptions) (*ai.ImageResult, error) {
		if strings.Contains(prompt, "Garden") {
			return nil, errors.New("rate limited")
		}
		return &ai.ImageResult{ImageBytes: []byte{1, 2, 3}, MIMEType: "image/png"}, nil
	})
	svc := NewService(nil, gen, nil)

	input := enrichFixture()
	got := svc.enrichWithImages(context.Background(), input)

	if len(got) != 3 {
		t.Fatalf("length changed: %d", len(got))
	}
	for i, title := range []string{"Castle", "Garden", "Bistro"} {
		if got[i].Title != title {
			t.Errorf("order changed at %d: %q", i, got[i].Title)
		}
	}
	if !strings.HasPrefix(got[0].GeneratedImageURL, "data:image/png;base64,") {
		t.Errorf("first activity should carry a data URI, got %q", got[0].GeneratedImageURL)
	}
	if got[1].GeneratedImageURL != "" {
		t.Errorf("failed generation must leave the activity without an image")
	}
	if got[2].GeneratedImageURL == "" {
		t.Errorf("failure of one activity must not affect the others")
	}
	if input[0].GeneratedImageURL != "" {
		t.Errorf("input slice must stay untouched")
	}
}

// A provider may legitimately produce nothing; that is not a failure and not
// an image.
func TestEnrichWithImagesProviderReturnsNone(t *testing.T) {
	gen := imageGenFunc(func(context.Context, string, ai.ImageOptions) (*ai.ImageResult, error) {
		return nil, nil
	})
	svc := NewService(nil, gen, nil)

	got := svc.enrichWithImages(context.Background(), enrichFixture())
	for i := range got {
		if got[i].GeneratedImageURL != "" {
			t.Errorf("activity %d should have no image", i)
		}
	}
}

func TestEnrichWithImagesDisabled(t *testing.T) {
	svc := NewService(nil, nil, nil)
	input := enrichFixture()
	got := svc.enrichWithImages(context.Background(), input)
	if len(got) != len(input) {
		t.Fatalf("length changed: %d", len(got))
	}
	for i := range got {
		if got[i].GeneratedImageURL != "" {
			t.Errorf("no generator wired, activity %d should have no image", i)
		}
	}
}

func TestBackfillCoordinates(t *testing.T) {
	lat, lng := 41.1579, -8.6291
	geo := geocoderFunc(func(_ context.Context, place, near string) (float64, float64, error) {
		if near != "Porto" {
			t.Errorf("geocode should be biased by the trip location, got %q", near)
		}
		if place == "Nowhere Square" {
			return 0, 0, errors.New("not found")
		}
		return lat, lng, nil
	})
	svc := NewService(nil, nil, geo)

	known := 1.0
	activities := []Activity{
		{TimeOfDay: "M", Title: "A", Description: "D", Location: "Ribeira"},
		{TimeOfDay: "M", Title: "B", Description: "D", Location: "Nowhere Square"},
		{TimeOfDay: "M", Title: "C", Description: "D", Location: "Se", Latitude: &known, Longitude: &known},
		{TimeOfDay: "M", Title: "E", Description: "D"},
	}

	got := svc.backfillCoordinates(context.Background(), Preferences{Location: "Porto"}, activities)

	if got[0].Latitude == nil || *got[0].Latitude != lat {
		t.Errorf("missing coordinates should be backfilled")
	}
	if got[1].Latitude != nil {
		t.Errorf("lookup failure should leave the activity without coordinates")
	}
	if *got[2].Latitude != known {
		t.Errorf("existing coordinates must not be overwritten")
	}
	if got[3].Latitude != nil {
		t.Errorf("activities without a location name are skipped")
	}
}
