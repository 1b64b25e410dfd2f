// README: Canonical trip-plan model shared by the pipeline and the HTTP layer.
package planner

// Preferences are the user inputs a plan is generated from. Optional fields
// left empty are omitted from prompts entirely; empty string never reaches
// the model as a value.
type Preferences struct {
	Location      string `json:"location"`
	StartAddress  string `json:"startAddress,omitempty"`
	ActivityType  string `json:"activityType"`
	Interests     string `json:"interests"`
	IsKidFriendly bool   `json:"isKidFriendly"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	// TripDate is the literal token "today" or an ISO calendar date (2006-01-02).
	TripDate     string `json:"tripDate"`
	LikedExample string `json:"likedLocationExample,omitempty"`
}

// Activity type categories accepted in Preferences.ActivityType.
const (
	ActivityTypeIndoor  = "indoor"
	ActivityTypeOutdoor = "outdoor"
	ActivityTypeMix     = "mix"
)

// TravelSegment describes the hop from the previous itinerary stop.
type TravelSegment struct {
	Duration string `json:"duration"`
	Mode     string `json:"mode"`
}

// ReviewSummary is an aggregated review blurb for a venue.
// Rating is nil when the model could not find one.
type ReviewSummary struct {
	Rating  *float64 `json:"rating"`
	Summary string   `json:"summary"`
}

// SiteWeather is the forecast at one activity's location.
type SiteWeather struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
}

// WeatherInfo is the day-level forecast for the whole plan.
type WeatherInfo struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Forecast    string `json:"forecast"`
}

// Cost is a model-estimated price. Amount 0 means free.
type Cost struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Details  string  `json:"details,omitempty"`
}

// Source is a web citation the text provider attached when it used live
// search. Entries without a URI are non-renderable; consumers skip them.
type Source struct {
	URI   *string `json:"uri,omitempty"`
	Title *string `json:"title,omitempty"`
}

// Activity is a single stop in the day. Latitude and longitude are
// all-or-nothing: an activity never carries just one of them.
type Activity struct {
	TimeOfDay          string         `json:"timeOfDay"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Location           string         `json:"location,omitempty"`
	Latitude           *float64       `json:"latitude,omitempty"`
	Longitude          *float64       `json:"longitude,omitempty"`
	TravelFromPrevious *TravelSegment `json:"travelFromPrevious,omitempty"`
	GeneratedImageURL  string         `json:"generatedImageUrl,omitempty"`
	Reviews            *ReviewSummary `json:"reviews,omitempty"`
	WeatherOnSite      *SiteWeather   `json:"weatherOnSite,omitempty"`
	Cost               *Cost          `json:"cost,omitempty"`
}

// TripPlan is the full one-day itinerary document. Itinerary order is the
// chronological order of the day and is preserved through every mutation.
type TripPlan struct {
	Title              string       `json:"tripTitle"`
	Summary            string       `json:"summary"`
	Itinerary          []Activity   `json:"itinerary"`
	Weather            *WeatherInfo `json:"weather,omitempty"`
	TotalEstimatedCost *Cost        `json:"totalEstimatedCost,omitempty"`
	Sources            []Source     `json:"sources,omitempty"`
}
