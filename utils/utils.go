package utils

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/viper"
)

// Today returns the run's reference date at midnight local time. The
// "as_of" viper key, bound to the --as-of flag, overrides the wall clock so
// runs can be replayed against a fixed day.
func Today() (time.Time, error) {
	if override := viper.GetString("as_of"); override != "" {
		parsed, err := dateparse.ParseLocal(override)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --as-of value %q: %w", override, err)
		}
		return DateOnly(parsed), nil
	}
	return DateOnly(time.Now()), nil
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
