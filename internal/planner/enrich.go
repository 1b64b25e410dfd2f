package planner

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"sync"

	"dayplan/internal/ai"
)

// enrichWithImages requests one illustrative image per activity, all in
// flight at once. The itinerary is user-day-scale, so a full fan-out with no
// pool is fine. Per-item failures resolve to "no image" and never fail the
// call; the output always has the input's length and order.
func (s *Service) enrichWithImages(ctx context.Context, activities []Activity) []Activity {
	if s.images == nil || len(activities) == 0 {
		return activities
	}

	enriched := make([]Activity, len(activities))
	copy(enriched, activities)

	var wg sync.WaitGroup
	wg.Add(len(activities))
	for i := range enriched {
		go func(i int) {
			defer wg.Done()
			uri, err := s.generateActivityImage(ctx, enriched[i])
			if err != nil {
				log.Printf("image enrichment failed for %q: %v", enriched[i].Title, err)
				return
			}
			enriched[i].GeneratedImageURL = uri
		}(i)
	}
	wg.Wait()

	return enriched
}

// generateActivityImage returns a data URI for the activity, or "" when the
// provider produced no image.
func (s *Service) generateActivityImage(ctx context.Context, a Activity) (string, error) {
	prompt := imagePrompt(a)
	result, err := s.images.GenerateImage(ctx, prompt, ai.ImageOptions{AspectRatio: "16:9"})
	if err != nil {
		return "", err
	}
	if result == nil || len(result.ImageBytes) == 0 {
		return "", nil
	}
	return fmt.Sprintf("data:%s;base64,%s", result.MIMEType,
		base64.StdEncoding.EncodeToString(result.ImageBytes)), nil
}

func imagePrompt(a Activity) string {
	subject := a.Title
	if a.Location != "" {
		subject = fmt.Sprintf("%s at %s", a.Title, a.Location)
	}
	return fmt.Sprintf("A vibrant, photorealistic travel photograph of %s. %s No text or watermarks.", subject, a.Description)
}

// backfillCoordinates fills missing latitude/longitude from the geocoder for
// activities that name a place. Best-effort with the same failure isolation
// as images: a lookup failure leaves the activity without coordinates.
func (s *Service) backfillCoordinates(ctx context.Context, prefs Preferences, activities []Activity) []Activity {
	if s.geocoder == nil {
		return activities
	}
	for i := range activities {
		a := &activities[i]
		if a.Latitude != nil || a.Location == "" {
			continue
		}
		lat, lng, err := s.geocoder.Locate(ctx, a.Location, prefs.Location)
		if err != nil {
			log.Printf("geocode backfill failed for %q: %v", a.Location, err)
			continue
		}
		a.Latitude = &lat
		a.Longitude = &lng
	}
	return activities
}
