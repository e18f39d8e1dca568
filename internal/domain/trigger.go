package domain

import "time"

// Trigger is one scheduled (time, content) pair registered with the push gateway.
type Trigger struct {
	Time   time.Time
	Tone   Tone
	Title  string
	Body   string
	Handle string
}

// HandleSet is the persisted set of gateway handles for a user's active triggers.
// Each reschedule supersedes the previous set.
type HandleSet struct {
	UserID  string    `json:"user_id"`
	Handles []string  `json:"handles"`
	SavedAt time.Time `json:"saved_at"`
}

func NewHandleSet(userID string) *HandleSet {
	return &HandleSet{
		UserID:  userID,
		Handles: make([]string, 0),
		SavedAt: time.Now().UTC(),
	}
}

func (s *HandleSet) Add(handle string) {
	s.Handles = append(s.Handles, handle)
}

func (s *HandleSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Handles)
}
