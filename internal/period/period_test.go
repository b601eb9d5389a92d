package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseToken(t *testing.T) {
	cases := map[string]Token{
		"day":     Day,
		"DAY":     Day,
		" Week ":  Week,
		"month":   Month,
		"Year":    Year,
		"":        Month,
		"quarter": Month,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseToken(in), "input %q", in)
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		w := Resolve(Day, now)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, now, w.End)
	})

	t.Run("week", func(t *testing.T) {
		w := Resolve(Week, now)
		assert.Equal(t, time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC), w.Start)
		assert.Equal(t, now, w.End)
	})

	t.Run("month", func(t *testing.T) {
		w := Resolve(Month, now)
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, now, w.End)
	})

	t.Run("year", func(t *testing.T) {
		w := Resolve(Year, now)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	})

	t.Run("unknown token behaves as month", func(t *testing.T) {
		assert.Equal(t, Resolve(Month, now), Resolve(Token("fortnight"), now))
	})

	t.Run("uses location of now", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		local := time.Date(2024, time.March, 15, 1, 0, 0, 0, loc)
		w := Resolve(Day, local)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), w.Start)
	})
}

func TestPrevious(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		cur, prev := Windows(Day, now)
		assert.Equal(t, cur.Start.Add(-time.Millisecond), prev.End)
		assert.Equal(t, prev.End.AddDate(0, 0, -1), prev.Start)
	})

	t.Run("week", func(t *testing.T) {
		cur, prev := Windows(Week, now)
		assert.Equal(t, cur.Start.Add(-time.Millisecond), prev.End)
		assert.Equal(t, prev.End.AddDate(0, 0, -7), prev.Start)
	})

	t.Run("month", func(t *testing.T) {
		_, prev := Windows(Month, now)
		assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), prev.Start)
		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), prev.End)
	})

	t.Run("month across a year boundary", func(t *testing.T) {
		_, prev := Windows(Month, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	})

	t.Run("year", func(t *testing.T) {
		_, prev := Windows(Year, now)
		assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 999000000, time.UTC), prev.End)
		assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	})
}

func TestWindowOrdering(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC),
	}
	for _, now := range instants {
		for _, tok := range []Token{Day, Week, Month, Year, Token("bogus")} {
			cur, prev := Windows(tok, now)
			assert.False(t, cur.Start.After(cur.End), "%s at %s", tok, now)
			assert.False(t, prev.Start.After(prev.End), "%s at %s", tok, now)
			assert.True(t, prev.End.Before(cur.Start), "%s at %s", tok, now)
		}
	}
}
