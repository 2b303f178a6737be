package domain

import (
	"fmt"
	"time"
)

// StampStatus prefixes a status update with the day it was applied, e.g.
// "[2024-05-01] Delivered successfully". Updates overwrite the previous
// value wholesale; no history is kept.
func StampStatus(day time.Time, status string) string {
	return fmt.Sprintf("[%s] %s", day.Format("2006-01-02"), status)
}
