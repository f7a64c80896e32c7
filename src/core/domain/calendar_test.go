package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonthGrid_FebruaryNonLeapStartingWednesday(t *testing.T) {
	ym := YearMonth{Year: 2023, Month: time.February}
	now := time.Date(2023, time.February, 10, 15, 30, 0, 0, time.UTC)

	grid := GenerateMonthGrid(ym, now)

	require.Len(t, grid, 3+28)
	for i := 0; i < 3; i++ {
		assert.Nil(t, grid[i], "leading placeholder %d", i)
	}

	cells := grid[3:]
	assert.Equal(t, "2023-02-01", cells[0].Date)
	assert.Equal(t, "2023-02-28", cells[27].Date)
	for i, cell := range cells {
		require.NotNil(t, cell)
		assert.Equal(t, i+1, cell.Day)
		if i > 0 {
			assert.Less(t, cells[i-1].Date, cell.Date)
		}
	}

	assert.True(t, cells[0].IsPast)
	assert.True(t, cells[8].IsPast, "Feb 9 is before Feb 10")
	assert.False(t, cells[9].IsPast, "today is not past")
	assert.True(t, cells[9].IsToday)
	assert.False(t, cells[10].IsPast)
	assert.False(t, cells[10].IsToday)
}

func TestGenerateMonthGrid_UsesCivilDateOfNow(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	// 00:30 local on the 1st is still the previous day in UTC.
	now := time.Date(2026, time.March, 1, 0, 30, 0, 0, taipei)

	grid := GenerateMonthGrid(YearMonth{Year: 2026, Month: time.March}, now)

	first := grid[int(time.Sunday)]
	require.NotNil(t, first)
	assert.Equal(t, "2026-03-01", first.Date)
	assert.True(t, first.IsToday)
	assert.False(t, first.IsPast)
}

func TestGenerateMonthGrid_Restartable(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	ym := CurrentYearMonth(now)

	a := GenerateMonthGrid(ym.AddMonths(1), now)
	_ = GenerateMonthGrid(ym.AddMonths(-5), now)
	b := GenerateMonthGrid(ym.AddMonths(1), now)

	assert.Equal(t, a, b)
}

func TestYearMonth_AddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   YearMonth
		n    int
		want YearMonth
	}{
		{"december rolls into january", YearMonth{2026, time.December}, 1, YearMonth{2027, time.January}},
		{"january back into december", YearMonth{2026, time.January}, -1, YearMonth{2025, time.December}},
		{"same year", YearMonth{2026, time.March}, 4, YearMonth{2026, time.July}},
		{"many years", YearMonth{2026, time.October}, 27, YearMonth{2029, time.January}},
		{"zero", YearMonth{2026, time.October}, 0, YearMonth{2026, time.October}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.AddMonths(tt.n))
		})
	}
}

func TestYearMonth_DaysInAndWeekday(t *testing.T) {
	assert.Equal(t, 29, YearMonth{2024, time.February}.DaysIn())
	assert.Equal(t, 28, YearMonth{2023, time.February}.DaysIn())
	assert.Equal(t, 31, YearMonth{2026, time.December}.DaysIn())
	assert.Equal(t, time.Wednesday, YearMonth{2023, time.February}.FirstWeekday())
	assert.Equal(t, "2026-03", YearMonth{2026, time.March}.String())
}

func TestNewYearMonth(t *testing.T) {
	ym, err := NewYearMonth(2026, 12)
	require.NoError(t, err)
	assert.Equal(t, YearMonth{2026, time.December}, ym)

	_, err = NewYearMonth(2026, 0)
	assert.True(t, IsValidationError(err))
	_, err = NewYearMonth(2026, 13)
	assert.True(t, IsValidationError(err))
}
