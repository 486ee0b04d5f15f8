package services

import (
	"regexp"
	"strconv"
	"time"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// M/D, optionally followed by a non-date suffix such as a weekday
var calendarTokenPattern = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})(?:$|[^\d/])`)

// BuildCalendar turns month/day tokens without a year into a business-day calendar.
//
// Tokens are read in order starting at startYear; whenever a token's month is
// lower than the previous token's month the year advances, so a horizon can wrap
// from December into January. Tokens that are not M/D dates (header cells, blanks,
// dates that carry their own year) are skipped. Returns entities.ErrCalendarEmpty
// when no token is a date.
func BuildCalendar(tokens []string, startYear int) (*entities.Calendar, error) {
	days := make([]time.Time, 0, len(tokens))
	year, lastMonth := startYear, 1

	for _, token := range tokens {
		month, dayOfMonth, ok := parseMonthDay(token)
		if !ok {
			continue
		}
		if month < lastMonth {
			year++
		}
		lastMonth = month

		d := time.Date(year, time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
		// reject overflow such as 2/30
		if d.Month() != time.Month(month) || d.Day() != dayOfMonth {
			continue
		}
		days = append(days, d)
	}

	return entities.NewCalendar(days)
}

func parseMonthDay(token string) (month, day int, ok bool) {
	m := calendarTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(m[1])
	day, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 {
		return 0, 0, false
	}
	return month, day, true
}
