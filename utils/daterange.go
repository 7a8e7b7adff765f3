package utils

import (
	"fmt"
	"time"
)

// ResolveDateRange menerjemahkan nama filter waktu ke batas [start, end).
// Satu implementasi dipakai semua handler laporan dan saran pencarian.
//
// allTime mengembalikan start zero-value; pemanggil melewatkan klausa WHERE
// kalau start.IsZero().
func ResolveDateRange(name string, now time.Time) (start, end time.Time, err error) {
	loc := now.Location()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	switch name {
	case "", "today":
		return startOfDay, startOfDay.AddDate(0, 0, 1), nil
	case "thisWeek":
		// minggu mulai Senin
		offset := (int(now.Weekday()) + 6) % 7
		monday := startOfDay.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7), nil
	case "thisMonth":
		return startOfMonth, startOfMonth.AddDate(0, 1, 0), nil
	case "lastMonth":
		return startOfMonth.AddDate(0, -1, 0), startOfMonth, nil
	case "last3Months":
		return startOfMonth.AddDate(0, -2, 0), startOfMonth.AddDate(0, 1, 0), nil
	case "thisYear":
		startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return startOfYear, startOfYear.AddDate(1, 0, 0), nil
	case "allTime":
		return time.Time{}, time.Time{}, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("time_filter tidak dikenal: %s", name)
	}
}

// ParseDateRange memakai start_date/end_date eksplisit (YYYY-MM-DD) kalau ada,
// selain itu jatuh ke ResolveDateRange.
func ParseDateRange(timeFilter, startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	if startDate != "" && endDate != "" {
		s, err := time.ParseInLocation("2006-01-02", startDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date tidak valid: %s", startDate)
		}
		e, err := time.ParseInLocation("2006-01-02", endDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date tidak valid: %s", endDate)
		}
		return s, e.AddDate(0, 0, 1), nil
	}
	return ResolveDateRange(timeFilter, now)
}
