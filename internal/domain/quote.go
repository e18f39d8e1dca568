package domain

// Quote is a candidate message sourced from the quote catalog,
// already filtered to the user's interest categories.
type Quote struct {
	ID         string
	Content    string
	Author     string
	CategoryID string
}
