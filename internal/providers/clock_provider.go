package providers

import (
	"fmt"
	"gritd/internal/structures"
	"time"
)

// Clock is the store's source of "now". Location is the zone calendar days
// are taken in.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type SystemClock struct {
	loc *time.Location
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

func (c *SystemClock) Location() *time.Location {
	return c.loc
}

func NewClockProvider(conf *structures.Config) (Clock, error) {
	if conf.Tracker.TimeZone == "" {
		return &SystemClock{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(conf.Tracker.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", conf.Tracker.TimeZone, err)
	}
	return &SystemClock{loc: loc}, nil
}
