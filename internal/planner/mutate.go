package planner

// ReplaceActivity returns a new plan with exactly the slot at index swapped
// for newActivity. Every other slot, the title, summary, weather, sources,
// and the total cost carry over untouched; the model-authored total is NOT
// recomputed after a swap because it may include day-level costs (e.g. a
// transit pass) not attributable to any single slot. The input plan is never
// modified, so concurrent holders keep seeing a consistent value.
func ReplaceActivity(plan TripPlan, index int, newActivity Activity) (TripPlan, error) {
	if index < 0 || index >= len(plan.Itinerary) {
		return TripPlan{}, ErrIndexOutOfRange
	}

	itinerary := make([]Activity, len(plan.Itinerary))
	copy(itinerary, plan.Itinerary)
	itinerary[index] = newActivity

	next := plan
	next.Itinerary = itinerary
	return next, nil
}
