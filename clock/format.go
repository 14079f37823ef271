package clock

import (
	"time"

	"github.com/lixenwraith/bigclock/constants"
)

// Timestamp formats t as a fixed-width HH:MM:SS string, 24-hour,
// in the local timezone. Always exactly 8 characters
func Timestamp(t time.Time) string {
	return t.Format(constants.TimeLayout)
}
