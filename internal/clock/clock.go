package clock

import (
	"fmt"
	"strconv"
	"time"
)

// TimeOfDay is a wall-clock time truncated to the minute.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Equal reports exact field equality. There is no tolerance window: a tick
// that lands on the stored minute matches, any other minute does not.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Hours == other.Hours && t.Minutes == other.Minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// Parse reads a time in "HH:MM" form. The input must be exactly 5 characters
// with a colon separator, the hour must be in [1,23] and the minute in [0,59].
// Midnight is not a settable time; hour 0 is rejected.
func Parse(text string) (TimeOfDay, error) {
	if len(text) != 5 || text[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", text)
	}

	hours, err := strconv.Atoi(text[0:2])
	if err != nil || hours < 1 || hours > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", text)
	}

	minutes, err := strconv.Atoi(text[3:5])
	if err != nil || minutes < 0 || minutes > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", text)
	}

	return TimeOfDay{Hours: hours, Minutes: minutes}, nil
}

// Clock maps the host clock to the team's local time using a fixed UTC offset.
// The offset is plain configuration, not a timezone database lookup, so it does
// not follow daylight-saving transitions.
type Clock struct {
	offset time.Duration
	nowFn  func() time.Time
}

func New(utcOffsetHours int) *Clock {
	return &Clock{
		offset: time.Duration(utcOffsetHours) * time.Hour,
		nowFn:  time.Now,
	}
}

// NewAt returns a Clock whose current instant is supplied by nowFn. Used in tests.
func NewAt(utcOffsetHours int, nowFn func() time.Time) *Clock {
	c := New(utcOffsetHours)
	c.nowFn = nowFn
	return c
}

// Now returns the offset-corrected local instant.
func (c *Clock) Now() time.Time {
	return c.nowFn().UTC().Add(c.offset)
}

// TimeOfDay returns the current local time truncated to the minute.
func (c *Clock) TimeOfDay() TimeOfDay {
	now := c.Now()
	return TimeOfDay{Hours: now.Hour(), Minutes: now.Minute()}
}

// Timestamp formats the current local instant the way reports display it.
func (c *Clock) Timestamp() string {
	return c.Now().Format("2006-01-02: 15:04")
}
