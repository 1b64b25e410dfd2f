package usage

import "errors"

// ErrQuotaExceeded is returned when a user has no plan generations remaining
// for the current month.
var ErrQuotaExceeded = errors.New("monthly plan quota exceeded")

// DefaultMonthlyPlans is the number of plan generations granted per month
// when no explicit limit is configured.
const DefaultMonthlyPlans = 50
