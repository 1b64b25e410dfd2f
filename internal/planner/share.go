package planner

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeShare packs a plan into a URL-safe token for link sharing. The
// encoding is stateless and reversible; DecodeShare(EncodeShare(p)) == p.
func EncodeShare(plan TripPlan) (string, error) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeShare unpacks a share token back into a plan.
func DecodeShare(token string) (TripPlan, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return TripPlan{}, fmt.Errorf("decode share token: %w", err)
	}
	var plan TripPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return TripPlan{}, fmt.Errorf("decode share token: %w", err)
	}
	return plan, nil
}
