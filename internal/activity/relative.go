package activity

import (
	"fmt"
	"time"
)

// Relative renders t as a coarse distance from now: days when at least one
// whole day has passed, otherwise hours, then minutes.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	days := int(d / (24 * time.Hour))
	switch {
	case days >= 2:
		return fmt.Sprintf("%d days ago", days)
	case days == 1:
		return "yesterday"
	}
	if hours := int(d / time.Hour); hours > 0 {
		return plural(hours, "hour")
	}
	return plural(int(d/time.Minute), "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
