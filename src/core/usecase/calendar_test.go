package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidmaster/src/core/domain"
)

func TestCalendarService_Current(t *testing.T) {
	f := newFixture(t)

	ym := f.calendar.Current()

	assert.Equal(t, 2026, ym.Year)
	assert.Equal(t, time.October, ym.Month)
}

func TestCalendarService_MonthWithOffset(t *testing.T) {
	f := newFixture(t)

	view := f.calendar.Month(f.calendar.Current(), 3)

	assert.Equal(t, 2027, view.Year)
	assert.Equal(t, 1, view.Month)
	assert.Equal(t, "2026-12", view.Prev)
	assert.Equal(t, "2027-02", view.Next)
	require.NotEmpty(t, view.Cells)
	for _, c := range view.Cells {
		if c != nil {
			assert.False(t, c.IsPast)
		}
	}
}

func TestCalendarService_TodayIsMarked(t *testing.T) {
	f := newFixture(t)

	view := f.calendar.Month(f.calendar.Current(), 0)

	var today []*domain.CalendarCell
	for _, c := range view.Cells {
		if c != nil && c.IsToday {
			today = append(today, c)
		}
	}
	require.Len(t, today, 1)
	assert.Equal(t, 19, today[0].Day)
	assert.Equal(t, "2026-10-19", today[0].Date)
	assert.False(t, today[0].IsPast)
}
