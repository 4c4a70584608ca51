package timeinterval

import (
	"testing"
	"time"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/stretchr/testify/assert"
)

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestWindow(t *testing.T) {
	cases := map[string]struct {
		d               time.Duration
		expectedLesser  time.Time
		expectedGreater time.Time
		expectedEmpty   bool
	}{
		"Forward":  {d: time.Hour, expectedLesser: start, expectedGreater: start.Add(time.Hour)},
		"Backward": {d: -time.Hour, expectedLesser: start.Add(-time.Hour), expectedGreater: start},
		"Zero":     {d: 0, expectedLesser: start, expectedGreater: start, expectedEmpty: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := Window(start, tc.d)
			assert.Equal(t, tc.expectedLesser, w.Lesser())
			assert.Equal(t, tc.expectedGreater, w.Greater())
			assert.Equal(t, tc.expectedEmpty, w.IsEmpty())
		})
	}
}

func TestRelate(t *testing.T) {
	day := New(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	)

	meeting := Window(start, time.Hour)
	assert.True(t, meeting.IsDuring(day))
	assert.True(t, day.Contains(meeting))
	assert.Equal(t, interval.During, meeting.Relate(day))

	nextDay := Window(day.Greater(), 24*time.Hour)
	assert.True(t, day.Meets(nextDay))
	assert.True(t, nextDay.IsMetBy(day))
	assert.True(t, meeting.IsBefore(nextDay))
}

func TestParse(t *testing.T) {
	cases := map[string]struct {
		from        string
		to          string
		expectedErr bool
	}{
		"Normal":      {from: "2024-05-01T12:00:00Z", to: "2024-05-01T13:00:00Z"},
		"Swapped":     {from: "2024-05-01T13:00:00Z", to: "2024-05-01T12:00:00Z"},
		"InvalidFrom": {from: "noon", to: "2024-05-01T13:00:00Z", expectedErr: true},
		"InvalidTo":   {from: "2024-05-01T12:00:00Z", to: "13:00", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, err := Parse(tc.from, tc.to)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), w.Lesser())
			assert.Equal(t, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC), w.Greater())
		})
	}
}
