// ════════════════════════════════════════════════════════════
// Path: utils/time_text.go
// Human readable remaining-time text for lockout messages
// ════════════════════════════════════════════════════════════

package utils

import (
	"fmt"
	"time"
)

// TimeUntilText renders the time remaining between now and until as
// "X hour, Y minute and Z second", dropping the hour part when it is
// zero. The wording is part of the login lockout message contract, so
// clients that parse it keep working.
func TimeUntilText(now, until time.Time) string {
	d := until.Sub(now)
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	if hours > 0 {
		return fmt.Sprintf("%d hour, %d minute and %d second", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d minute and %d second", minutes, seconds)
}
