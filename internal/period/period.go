// Package period turns a dashboard period token into absolute time windows.
package period

import (
	"strings"
	"time"

	"github.com/tastyhub/dashboard-manager/internal/entity"
)

// Token selects the width of a dashboard window.
type Token string

const (
	Day   Token = "day"
	Week  Token = "week"
	Month Token = "month"
	Year  Token = "year"
)

// ParseToken is case-insensitive. Unknown or empty input yields Month.
func ParseToken(s string) Token {
	switch t := Token(strings.ToLower(strings.TrimSpace(s))); t {
	case Day, Week, Month, Year:
		return t
	default:
		return Month
	}
}

// Resolve returns the window for tok ending at now. Calendar boundaries are
// taken in now's location.
func Resolve(tok Token, now time.Time) entity.TimeWindow {
	var start time.Time
	switch tok {
	case Day:
		start = startOfDay(now)
	case Week:
		start = now.AddDate(0, 0, -7)
	case Year:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		start = startOfMonth(now)
	}
	return entity.TimeWindow{Start: start, End: now}
}

// Previous returns the window immediately preceding w. It ends one millisecond
// before w.Start so the boundary instant is never counted twice.
func Previous(tok Token, w entity.TimeWindow) entity.TimeWindow {
	end := w.Start.Add(-time.Millisecond)
	var start time.Time
	switch tok {
	case Day:
		start = end.AddDate(0, 0, -1)
	case Week:
		start = end.AddDate(0, 0, -7)
	case Year:
		start = time.Date(end.Year()-1, time.January, 1, 0, 0, 0, 0, end.Location())
	default:
		start = startOfMonth(end)
	}
	return entity.TimeWindow{Start: start, End: end}
}

// Windows resolves the current window and its predecessor in one call.
func Windows(tok Token, now time.Time) (current, previous entity.TimeWindow) {
	current = Resolve(tok, now)
	return current, Previous(tok, current)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
