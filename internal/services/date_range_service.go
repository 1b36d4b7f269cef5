package services

import (
	"errors"
	"fmt"
	"time"

	"expense-manager/internal/dto"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

var (
	ErrInvalidRangeOption = errors.New("invalid range option")
	ErrMissingCustomDates = errors.New("custom range requires both start and end dates")
	ErrEndBeforeStart     = errors.New("end date cannot precede start date")
)

type dateRangeService struct {
	nowFunc func() time.Time
}

// NewDateRangeService creates a new date range service
func NewDateRangeService() DateRangeServiceInterface {
	return &dateRangeService{
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Resolve turns a range option into a closed [start, end] interval. The week
// option covers the Sunday-through-Saturday week containing the current day.
// Start is the first instant of its day and end is the last instant of its
// day, so expenses dated anywhere on a boundary day are included.
func (s *dateRangeService) Resolve(rangeOption, startDate, endDate string) (time.Time, time.Time, error) {
	now := s.nowFunc()

	switch rangeOption {
	case dto.RangeToday:
		return startOfDay(now), endOfDay(now), nil

	case dto.RangeWeek:
		weekStart := now.AddDate(0, 0, -int(now.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return startOfDay(weekStart), endOfDay(weekEnd), nil

	case dto.RangeMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, -1)
		return monthStart, endOfDay(monthEnd), nil

	case dto.RangeCustom:
		return s.resolveCustom(startDate, endDate)

	default:
		return time.Time{}, time.Time{}, ErrInvalidRangeOption
	}
}

func (s *dateRangeService) resolveCustom(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, ErrMissingCustomDates
	}

	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	end, err := time.ParseInLocation(DateLayout, endDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrEndBeforeStart
	}

	return start, endOfDay(end), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's day
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
