package content

import (
	"log/slog"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/random"
)

// Selection pairs a quote with the tone and greeting for its trigger time.
type Selection struct {
	Quote domain.Quote
	Time  time.Time
	Tone  domain.Tone
	Title string
}

// Selector picks distinct quotes from the candidate pool and classifies each
// trigger's tone from its resolved hour.
type Selector struct {
	rng random.Source
}

func NewSelector(rng random.Source) *Selector {
	return &Selector{rng: rng}
}

// Select shuffles a copy of the pool and pairs the first quotes with the given
// trigger times index-wise. When the pool is smaller than the requested times,
// fewer selections come back; quotes are never repeated to pad the result.
// An empty pool is a terminal condition for scheduling.
func (s *Selector) Select(pool []domain.Quote, times []time.Time) ([]Selection, error) {
	if len(pool) == 0 {
		return nil, domain.ErrNoContent
	}

	shuffled := make([]domain.Quote, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := min(len(times), len(shuffled))
	if n < len(times) {
		slog.Debug("quote pool smaller than requested count",
			slog.Int("pool_size", len(pool)),
			slog.Int("requested", len(times)),
		)
	}

	selections := make([]Selection, 0, n)
	for i := 0; i < n; i++ {
		tone := domain.ToneForHour(times[i].Hour())
		selections = append(selections, Selection{
			Quote: shuffled[i],
			Time:  times[i],
			Tone:  tone,
			Title: s.title(tone),
		})
	}

	return selections, nil
}

func (s *Selector) title(tone domain.Tone) string {
	pool := greetingTitles[tone]
	return pool[s.rng.IntBetween(0, len(pool)-1)]
}
