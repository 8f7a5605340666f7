package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day at minute granularity, stored as
// minutes since midnight. The day is a plain 24-hour range; there is no
// date or time zone attached.
type Clock int

// ParseClock parses a "HH:mm" string into a Clock.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return Clock(hours*60 + minutes), nil
}

// String renders the clock as "HH:mm".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
