package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves place names to coordinates via the Google Maps
// Geocoding API. Used to backfill activities the model returned without a
// usable latitude/longitude pair.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Locate geocodes a place name, biased by the trip's locality. Returns the
// first match; ambiguity is acceptable since the result only positions a
// map marker.
func (s *GeocodeService) Locate(ctx context.Context, place, near string) (float64, float64, error) {
	address := place
	if near != "" {
		address = fmt.Sprintf("%s, %s", place, near)
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %q", address)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
