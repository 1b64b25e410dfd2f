package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"dayplan/internal/ai"
	"dayplan/internal/planner"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	// Images and geocoding are skipped; this exercises the text pipeline only.
	svc := planner.NewService(provider, nil, nil)

	prefs := planner.Preferences{
		Location:     "Kyoto, Japan",
		ActivityType: planner.ActivityTypeMix,
		Interests:    "temples, tea houses, local food",
		TripDate:     "today",
	}

	fmt.Printf("Planning a day in %s...\n", prefs.Location)
	plan, err := svc.GeneratePlan(ctx, prefs)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	fmt.Printf("Title: %s\n", plan.Title)
	fmt.Printf("Summary: %s\n", plan.Summary)
	for i, a := range plan.Itinerary {
		fmt.Printf("%d. [%s] %s\n", i+1, a.TimeOfDay, a.Title)
	}

	raw, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding plan: %v", err)
	}
	fmt.Println(string(raw))
}
