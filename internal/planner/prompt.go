package planner

import (
	"fmt"
	"strings"
	"time"
)

// planSchemaInstructions enumerates the exact JSON contract the model must
// return for a full plan. Every field name here must stay in sync with the
// model structs' json tags.
const planSchemaInstructions = `**JSON Structure:**
The root object must have "tripTitle", "summary", "totalEstimatedCost" (with "amount", "currency", "details"), "weather" (with "temperature", "condition", "forecast"), and an "itinerary" array.
Each object in the "itinerary" array must have: "timeOfDay", "title", "description", "location", "latitude", "longitude", "reviews" (with "rating", "summary"), "weatherOnSite" (with "temperature", "condition"), "travelFromPrevious" (with "duration", "mode", or null), and "cost" (with "amount", "currency", "details").`

const activitySchemaInstructions = `Your response must be a single JSON object for the new activity. The object must contain: "timeOfDay", "title", "description", "location", "latitude", "longitude", "reviews" (with "rating", "summary"), "weatherOnSite" (with "temperature", "condition"), "travelFromPrevious" (with "duration", "mode", or null), and "cost" (with "amount", "currency", "details").`

// BuildPlanPrompt renders the full-plan instruction text. Pure: identical
// inputs produce identical output; now is only used to resolve the "today"
// trip-date token into a human-readable date.
func BuildPlanPrompt(prefs Preferences, now time.Time) string {
	date := friendlyTripDate(prefs.TripDate, now)

	var b strings.Builder
	b.WriteString("You are an expert travel planner. Create a detailed, enjoyable, and feasible 1-day itinerary based on the user's preferences.\n")
	b.WriteString("Your entire response MUST be a single JSON object, optionally inside a ```json code block, with no other text.\n\n")
	b.WriteString(planSchemaInstructions)
	b.WriteString("\n\n**Instructions:**\n")
	fmt.Fprintf(&b, "1. Use Google Search for the weather forecast for %s in %q to populate the main \"weather\" object.\n", date, prefs.Location)
	b.WriteString("2. Generate an itinerary based on the weather and user preferences. Adjust for rain if \"mix\" is chosen.\n")
	b.WriteString("3. Respect the user's timing preferences.\n")
	b.WriteString("4. For each activity, estimate travel time from the previous stop in \"travelFromPrevious\".\n")
	b.WriteString("5. For each activity, use Google Search to find details: a review summary with rating, and latitude/longitude.\n")
	b.WriteString("6. For each activity, provide a location-specific forecast in \"weatherOnSite\".\n")
	b.WriteString("7. For each activity, estimate the cost: an \"amount\", a \"currency\" code (e.g. \"USD\"), and \"details\" (e.g. \"per person\"). Use amount 0 when free.\n")
	b.WriteString("8. Sum the activity costs into \"totalEstimatedCost\" for the entire day.\n")

	b.WriteString("\n**User Preferences:**\n")
	fmt.Fprintf(&b, "- Location: %s\n", prefs.Location)
	fmt.Fprintf(&b, "- Date: %s\n", date)
	if prefs.StartAddress != "" {
		fmt.Fprintf(&b, "- Start Address: %s\n", prefs.StartAddress)
	}
	if prefs.StartTime != "" {
		fmt.Fprintf(&b, "- Start Time: %s\n", prefs.StartTime)
	}
	if prefs.EndTime != "" {
		fmt.Fprintf(&b, "- End Time/Duration: %s\n", prefs.EndTime)
	}
	fmt.Fprintf(&b, "- Type: %s\n", prefs.ActivityType)
	fmt.Fprintf(&b, "- Interests: %s\n", prefs.Interests)
	fmt.Fprintf(&b, "- Kid-Friendly: %s\n", yesNo(prefs.IsKidFriendly))
	if prefs.LikedExample != "" {
		fmt.Fprintf(&b, "- Inspiration: The user likes places similar to %q. Try to capture a similar vibe or type of experience.\n", prefs.LikedExample)
	}
	return b.String()
}

// BuildAlternativePrompt renders the single-activity replacement instruction.
// It lists every existing title so the model avoids duplicates, and anchors
// the suggestion on the preceding stop (or the start address when the first
// slot is being replaced).
func BuildAlternativePrompt(prefs Preferences, plan TripPlan, replace Activity, index int, now time.Time) string {
	date := friendlyTripDate(prefs.TripDate, now)

	var b strings.Builder
	b.WriteString("You are an expert travel planner. A user wants an alternative for one activity in an existing 1-day itinerary.\n")
	b.WriteString(activitySchemaInstructions)
	b.WriteString("\n\n**Original User Preferences:**\n")
	fmt.Fprintf(&b, "- Location: %s, Date: %s, Type: %s, Interests: %s, Kid-Friendly: %s\n",
		prefs.Location, date, prefs.ActivityType, prefs.Interests, yesNo(prefs.IsKidFriendly))
	if prefs.StartAddress != "" {
		fmt.Fprintf(&b, "- Start Address: %s\n", prefs.StartAddress)
	}
	if prefs.StartTime != "" {
		fmt.Fprintf(&b, "- Start Time: %s\n", prefs.StartTime)
	}
	if prefs.EndTime != "" {
		fmt.Fprintf(&b, "- End Time: %s\n", prefs.EndTime)
	}
	if prefs.LikedExample != "" {
		fmt.Fprintf(&b, "- Inspiration: The user likes places similar to %q. Keep this in mind for the alternative.\n", prefs.LikedExample)
	}

	if plan.Weather != nil && plan.Weather.Forecast != "" {
		fmt.Fprintf(&b, "\n**Weather Forecast:** %s. The new activity must be appropriate.\n", plan.Weather.Forecast)
	}

	titles := make([]string, len(plan.Itinerary))
	for i, a := range plan.Itinerary {
		titles[i] = a.Title
	}
	fmt.Fprintf(&b, "\n**Current Itinerary:** %s\n", strings.Join(titles, ", "))
	fmt.Fprintf(&b, "**Activity to Replace:** %q at %s\n", replace.Title, replace.TimeOfDay)

	b.WriteString("\n**Travel Context:**\n")
	switch {
	case index > 0:
		fmt.Fprintf(&b, "Previous activity is %q.\n", plan.Itinerary[index-1].Title)
	case prefs.StartAddress != "":
		fmt.Fprintf(&b, "Starts from %q.\n", prefs.StartAddress)
	default:
		b.WriteString("This is the first activity.\n")
	}

	fmt.Fprintf(&b, "\n**Task:** Suggest a different activity to replace %q. It must fit the schedule, interests, and weather, and must not duplicate any itinerary title above. Use Google Search to find its details (reviews, latitude/longitude). Estimate travel time in \"travelFromPrevious\" and the cost in \"cost\".\n", replace.Title)
	return b.String()
}

// friendlyTripDate resolves the trip date for prompt text. The "today" token
// resolves against the supplied clock; explicit ISO dates render long-form.
func friendlyTripDate(tripDate string, now time.Time) string {
	if tripDate == "today" {
		return fmt.Sprintf("today (%s)", now.Format("Monday, January 2, 2006"))
	}
	if d, err := time.Parse("2006-01-02", tripDate); err == nil {
		return d.Format("Monday, January 2, 2006")
	}
	return tripDate
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
