package content

import "github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"

// Greeting pools are cosmetic; one is drawn per trigger to match its tone.
var greetingTitles = map[domain.Tone][]string{
	domain.ToneMorning: {
		"Good morning!",
		"A new day, a fresh start",
		"Today is going to be great",
		"Start the day strong",
	},
	domain.ToneAfternoon: {
		"Afternoon boost",
		"Keep going, you're doing great",
		"The second half of your day",
		"Recharge your energy",
	},
	domain.ToneEvening: {
		"Evening inspiration",
		"Finish the day well",
		"One last push",
		"Get ready for tomorrow",
	},
}
