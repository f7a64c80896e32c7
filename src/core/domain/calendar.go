package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for registration dates.
const DateLayout = "2006-01-02"

// CalendarCell is one selectable day in a month grid.
type CalendarCell struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	IsPast  bool   `json:"isPast"`
	IsToday bool   `json:"isToday"`
}

// YearMonth is the month currently being viewed.
type YearMonth struct {
	Year  int
	Month time.Month
}

// CurrentYearMonth returns the month containing now.
func CurrentYearMonth(now time.Time) YearMonth {
	return YearMonth{Year: now.Year(), Month: now.Month()}
}

// NewYearMonth validates a year and 1-based month.
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, NewValidationError("month", "must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return YearMonth{}, NewValidationError("year", "must be between 1 and 9999")
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// AddMonths moves by whole months; Dec + 1 is Jan of the next year.
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// String renders the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// DaysIn returns the number of days in the month.
func (ym YearMonth) DaysIn() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 (Sunday = 0).
func (ym YearMonth) FirstWeekday() time.Weekday {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// GenerateMonthGrid lays out a month for a Sunday-first calendar. Nil
// entries are leading placeholders so day 1 falls under its weekday column.
// Past and today flags are computed against now's civil date.
func GenerateMonthGrid(ym YearMonth, now time.Time) []*CalendarCell {
	lead := int(ym.FirstWeekday())
	days := ym.DaysIn()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	grid := make([]*CalendarCell, lead, lead+days)
	for d := 1; d <= days; d++ {
		date := time.Date(ym.Year, ym.Month, d, 0, 0, 0, 0, time.UTC)
		grid = append(grid, &CalendarCell{
			Date:    date.Format(DateLayout),
			Day:     d,
			IsPast:  date.Before(today),
			IsToday: date.Equal(today),
		})
	}
	return grid
}
