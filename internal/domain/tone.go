package domain

// Tone classifies a trigger's time of day for greeting selection.
type Tone string

const (
	ToneMorning   Tone = "morning"
	ToneAfternoon Tone = "afternoon"
	ToneEvening   Tone = "evening"
)

func (t Tone) String() string {
	return string(t)
}

// ToneForHour maps an hour of day to its tone: before 12 is morning,
// 12 through 17 is afternoon, 18 onward is evening.
func ToneForHour(hour int) Tone {
	switch {
	case hour < 12:
		return ToneMorning
	case hour < 18:
		return ToneAfternoon
	default:
		return ToneEvening
	}
}
