package profileapi

// profileResponse mirrors the user backend's scheduling-profile resource.
// Window times arrive as "HH:MM" strings; empty strings mean the user has not
// picked a window yet.
type profileResponse struct {
	UserID              string   `json:"user_id"`
	Name                string   `json:"name"`
	WindowStart         string   `json:"notification_time_start"`
	WindowEnd           string   `json:"notification_time_end"`
	NotificationCount   int      `json:"notification_count"`
	InterestCategoryIDs []string `json:"interest_category_ids"`
}
