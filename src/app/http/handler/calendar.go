package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/domain"
	"raidmaster/src/core/usecase"
)

const maxMonthOffset = 1200

// CalendarHandler serves date-picker month grids.
type CalendarHandler struct {
	calendar *usecase.CalendarService
}

func NewCalendarHandler(calendar *usecase.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// Month renders one month. year and month (1-12) default to the current
// month; offset shifts by whole months.
// GET /v1/calendar?year=2026&month=2&offset=1
func (h *CalendarHandler) Month(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ym := h.calendar.Current()

	if c.Query("year") != "" || c.Query("month") != "" {
		year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(ym.Year)))
		if err != nil {
			response.ValidationError(c, "year", "year must be a number", requestID)
			return
		}
		month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(ym.Month))))
		if err != nil {
			response.ValidationError(c, "month", "month must be a number", requestID)
			return
		}
		ym, err = domain.NewYearMonth(year, month)
		if err != nil {
			c.Error(err)
			response.FromDomainError(c, err, requestID)
			return
		}
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < -maxMonthOffset || n > maxMonthOffset {
			response.ValidationError(c, "offset", "offset must be a number of months within 100 years", requestID)
			return
		}
		offset = n
	}

	response.OK(c, h.calendar.Month(ym, offset))
}
