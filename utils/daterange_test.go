package utils

import (
	"testing"
	"time"
)

// Jumat 2025-08-15 10:30 WIB
func frozenNow() time.Time {
	return time.Date(2025, 8, 15, 10, 30, 0, 0, OrgLocation())
}

func TestResolveDateRangeToday(t *testing.T) {
	start, end, err := ResolveDateRange("today", frozenNow())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	wantStart := time.Date(2025, 8, 15, 0, 0, 0, 0, OrgLocation())
	if !start.Equal(wantStart) || !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("today: [%v, %v)", start, end)
	}
}

func TestResolveDateRangeThisWeek(t *testing.T) {
	start, end, err := ResolveDateRange("thisWeek", frozenNow())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// Senin 11 Agustus s/d Senin 18 Agustus
	if start.Day() != 11 || start.Weekday() != time.Monday {
		t.Fatalf("minggu mulai Senin, dapat %v", start)
	}
	if end.Day() != 18 {
		t.Fatalf("akhir minggu: %v", end)
	}
}

func TestResolveDateRangeMonths(t *testing.T) {
	now := frozenNow()

	start, end, _ := ResolveDateRange("thisMonth", now)
	if start.Month() != time.August || start.Day() != 1 || end.Month() != time.September {
		t.Fatalf("thisMonth: [%v, %v)", start, end)
	}

	start, end, _ = ResolveDateRange("lastMonth", now)
	if start.Month() != time.July || end.Month() != time.August {
		t.Fatalf("lastMonth: [%v, %v)", start, end)
	}

	start, end, _ = ResolveDateRange("last3Months", now)
	if start.Month() != time.June || end.Month() != time.September {
		t.Fatalf("last3Months: [%v, %v)", start, end)
	}

	start, end, _ = ResolveDateRange("thisYear", now)
	if start.Month() != time.January || start.Year() != 2025 || end.Year() != 2026 {
		t.Fatalf("thisYear: [%v, %v)", start, end)
	}
}

func TestResolveDateRangeAllTimeAndUnknown(t *testing.T) {
	start, _, err := ResolveDateRange("allTime", frozenNow())
	if err != nil || !start.IsZero() {
		t.Fatalf("allTime harus start zero tanpa error, dapat %v %v", start, err)
	}
	if _, _, err := ResolveDateRange("kemarin", frozenNow()); err == nil {
		t.Fatalf("filter tidak dikenal harus error")
	}
}

func TestParseDateRangeExplicitWins(t *testing.T) {
	start, end, err := ParseDateRange("thisMonth", "2025-01-10", "2025-01-12", frozenNow())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if start.Day() != 10 || end.Day() != 13 {
		t.Fatalf("rentang eksplisit inklusif end: [%v, %v)", start, end)
	}
	if _, _, err := ParseDateRange("", "10-01-2025", "2025-01-12", frozenNow()); err == nil {
		t.Fatalf("format start_date salah harus error")
	}
}

func TestTodayUsesOrgTimezone(t *testing.T) {
	saved := Now
	defer func() { Now = saved }()

	// 2025-08-15 20:00 UTC = 2025-08-16 03:00 WIB
	Now = func() time.Time {
		return time.Date(2025, 8, 15, 20, 0, 0, 0, time.UTC).In(OrgLocation())
	}
	if d := Today(); d.Day() != 16 {
		t.Fatalf("hari ini menurut WIB harus tanggal 16, dapat %v", d)
	}
}
