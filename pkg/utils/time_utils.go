package utils

import (
	"fmt"
	"strconv"
	"time"
)

// NewTimeID generates the millisecond-timestamp ids used for groups,
// polls and comments created in-session.
func NewTimeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FormatDistanceToNow renders a compact relative time: "just now",
// "12m", "3h", "5d", then "Jan 2" past a week.
func FormatDistanceToNow(t time.Time) string {
	diff := time.Since(t)

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	case days < 7:
		return fmt.Sprintf("%dd", days)
	default:
		return t.Format("Jan 2")
	}
}

func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
