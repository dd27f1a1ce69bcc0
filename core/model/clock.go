package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidClock is returned when a time of day is not in "HH:MM" form.
var ErrInvalidClock = errors.New("invalid clock, expected HH:MM")

// Clock is a time of day expressed in minutes since midnight. Values past
// 24h are allowed so that a route running over midnight keeps increasing.
type Clock int

// MinutesPerDay is the length of a day in minutes.
const MinutesPerDay = 24 * 60

// ParseClock parses a "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrInvalidClock)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrInvalidClock)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 || len(m) != 2 {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrInvalidClock)
	}
	return Clock(hh*60 + mm), nil
}

// MustClock is ParseClock for constants; it panics on malformed input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns the clock as a plain minute count.
func (c Clock) Minutes() int { return int(c) }

// Add returns the clock advanced by the given number of minutes.
func (c Clock) Add(minutes int) Clock { return c + Clock(minutes) }

// String formats the clock as "HH:MM", wrapping past midnight.
func (c Clock) String() string {
	m := int(c) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Clock) UnmarshalYAML(n *yaml.Node) error {
	return c.UnmarshalText([]byte(n.Value))
}

// MarshalYAML implements yaml.Marshaler.
func (c Clock) MarshalYAML() (any, error) { return c.String(), nil }
