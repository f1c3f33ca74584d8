package report

import (
	"fmt"
	"time"
)

// periodRange - hazır dönem adını [from, to) penceresine çevirir. to hep
// sıfırdır (şu ana kadar); from dönem başıdır. "all" veya boş dönem
// sınırsız pencere demektir. Hafta pazar günü başlar.
func periodRange(period string, now time.Time) (time.Time, time.Time, error) {
	loc := now.Location()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case "", "all":
		return time.Time{}, time.Time{}, nil
	case "today":
		return startOfDay, time.Time{}, nil
	case "week":
		return startOfDay.AddDate(0, 0, -int(now.Weekday())), time.Time{}, nil
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), time.Time{}, nil
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc), time.Time{}, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("geçersiz dönem: %s", period)
	}
}
