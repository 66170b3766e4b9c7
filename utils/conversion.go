package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesFromClock parses a wall-clock string like "08:30" into minutes from
// midnight. The accepted range is 00:00 through 24:00 (1440, end of day).
func MinutesFromClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	if hours < 0 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	total := hours*60 + mins
	if total > 24*60 {
		return 0, fmt.Errorf("clock value %q past end of day", clock)
	}
	return total, nil
}

// ClockFromMinutes renders minutes from midnight as "HH:MM".
func ClockFromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
