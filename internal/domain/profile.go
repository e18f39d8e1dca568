package domain

// NotificationCount is the number of notifications a user receives per day.
// The product offers a small fixed choice set.
type NotificationCount int

var allowedCounts = map[NotificationCount]struct{}{
	1: {},
	2: {},
	3: {},
	5: {},
}

func (c NotificationCount) Validate() error {
	if _, ok := allowedCounts[c]; !ok {
		return ErrInvalidCount
	}
	return nil
}

// DefaultNotificationCount is used when the profile predates count selection.
const DefaultNotificationCount NotificationCount = 3

// SchedulingProfile is the per-user input to a reschedule: the daily window,
// the desired count, and the interest categories that filter the quote pool.
type SchedulingProfile struct {
	UserID              string
	Name                string
	Window              *DailyWindow
	Count               NotificationCount
	InterestCategoryIDs []string
}

// Configured reports whether the user finished onboarding far enough to
// schedule: a valid window and at least one interest category.
func (p *SchedulingProfile) Configured() bool {
	if p == nil || p.Window == nil {
		return false
	}
	if p.Window.Validate() != nil {
		return false
	}
	return len(p.InterestCategoryIDs) > 0
}
