package planner

import (
	"errors"
	"testing"
)

func replacementFixture() TripPlan {
	total := Cost{Amount: 42, Currency: "USD"}
	return TripPlan{
		Title:   "Harbor Day",
		Summary: "Boats and seafood.",
		Itinerary: []Activity{
			{TimeOfDay: "Morning", Title: "Fish Market", Description: "Early catch."},
			{TimeOfDay: "Afternoon", Title: "Ferry Ride", Description: "Cross the bay."},
			{TimeOfDay: "Evening", Title: "Pier Dinner", Description: "Sunset table."},
		},
		Weather:            &WeatherInfo{Condition: "Breezy"},
		TotalEstimatedCost: &total,
	}
}

func TestReplaceActivity(t *testing.T) {
	plan := replacementFixture()
	alt := Activity{TimeOfDay: "Afternoon", Title: "Maritime Museum", Description: "Indoors if windy."}

	next, err := ReplaceActivity(plan, 1, alt)
	if err != nil {
		t.Fatalf("ReplaceActivity: %v", err)
	}

	if next.Itinerary[1].Title != "Maritime Museum" {
		t.Errorf("slot 1 not replaced: %q", next.Itinerary[1].Title)
	}
	if next.Itinerary[0].Title != "Fish Market" || next.Itinerary[2].Title != "Pier Dinner" {
		t.Errorf("neighboring slots changed")
	}
	if next.Title != plan.Title || next.Summary != plan.Summary {
		t.Errorf("plan metadata changed")
	}
	if next.TotalEstimatedCost == nil || next.TotalEstimatedCost.Amount != 42 {
		t.Errorf("total cost must carry over unrecomputed, got %+v", next.TotalEstimatedCost)
	}

	// The input plan stays intact for concurrent holders.
	if plan.Itinerary[1].Title != "Ferry Ride" {
		t.Errorf("input plan mutated: %q", plan.Itinerary[1].Title)
	}
}

func TestReplaceActivityIndexOutOfRange(t *testing.T) {
	plan := replacementFixture()
	alt := Activity{TimeOfDay: "Morning", Title: "X", Description: "Y"}

	for _, index := range []int{-1, 3, 99} {
		if _, err := ReplaceActivity(plan, index, alt); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
}
