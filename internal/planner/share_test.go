package planner

import (
	"reflect"
	"strings"
	"testing"
)

func TestShareTokenRoundTrip(t *testing.T) {
	plan := replacementFixture()
	rating := 4.5
	plan.Itinerary[0].Reviews = &ReviewSummary{Rating: &rating, Summary: "busy but worth it"}

	token, err := EncodeShare(plan)
	if err != nil {
		t.Fatalf("EncodeShare: %v", err)
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token must be URL-safe, got %q", token)
	}

	got, err := DecodeShare(token)
	if err != nil {
		t.Fatalf("DecodeShare: %v", err)
	}
	if !reflect.DeepEqual(got, plan) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, plan)
	}
}

func TestDecodeShareRejectsGarbage(t *testing.T) {
	for _, token := range []string{"not base64 !!!", "aGVsbG8"} {
		if _, err := DecodeShare(token); err == nil {
			t.Errorf("token %q should not decode", token)
		}
	}
}
