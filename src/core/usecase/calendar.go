package usecase

import (
	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// MonthView is one rendered month plus its navigation neighbours.
type MonthView struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Cells []*domain.CalendarCell `json:"cells"`
	Prev  string                 `json:"prev"`
	Next  string                 `json:"next"`
}

// CalendarService renders date-picker months against the current clock.
type CalendarService struct {
	clock ports.Clock
}

func NewCalendarService(clock ports.Clock) *CalendarService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &CalendarService{clock: clock}
}

// Current returns the month containing today.
func (s *CalendarService) Current() domain.YearMonth {
	return domain.CurrentYearMonth(s.clock.Now())
}

// Month renders ym shifted by offset months.
func (s *CalendarService) Month(ym domain.YearMonth, offset int) MonthView {
	ym = ym.AddMonths(offset)
	return MonthView{
		Year:  ym.Year,
		Month: int(ym.Month),
		Cells: domain.GenerateMonthGrid(ym, s.clock.Now()),
		Prev:  ym.AddMonths(-1).String(),
		Next:  ym.AddMonths(1).String(),
	}
}
