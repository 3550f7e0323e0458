package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidHours is returned when an operating-hours string cannot be parsed
var ErrInvalidHours = errors.New("invalid operating hours")

const minutesPerDay = 24 * 60

// clockLayout matches the upstream data feed's hour format, e.g. "9:00AM"
const clockLayout = "3:04PM"

// ClockRange is a span of minutes within a day. Open is inclusive, Close is
// exclusive: a visitor arriving exactly at closing time finds the doors shut.
// A range whose Close is not after its Open wraps past midnight.
type ClockRange struct {
	Open  int // minutes since midnight
	Close int
}

// ParseClockRange parses a range like "9:00AM-9:00PM"
func ParseClockRange(s string) (ClockRange, error) {
	open, close, ok := strings.Cut(s, "-")
	if !ok {
		return ClockRange{}, fmt.Errorf("%w: %q is not an open-close pair", ErrInvalidHours, s)
	}

	openMin, err := parseClock(open)
	if err != nil {
		return ClockRange{}, err
	}
	closeMin, err := parseClock(close)
	if err != nil {
		return ClockRange{}, err
	}

	return ClockRange{Open: openMin, Close: closeMin}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHours, s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (r ClockRange) String() string {
	return fmt.Sprintf("%s-%s", formatClock(r.Open), formatClock(r.Close))
}

func formatClock(minutes int) string {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(clockLayout)
}

// contains reports whether the minute-of-day falls inside the range,
// ignoring midnight wrap (handled by the caller)
func (r ClockRange) contains(minute int) bool {
	if r.Close > r.Open {
		return minute >= r.Open && minute < r.Close
	}
	// Wraps midnight: the tail before Close belongs to the next calendar day.
	return minute >= r.Open
}

// OperatingHours is a weekly schedule of open ranges per weekday. A weekday
// with no ranges is closed all day.
type OperatingHours struct {
	Weekly map[time.Weekday][]ClockRange
}

// DailyHours builds a schedule applying the same range specs to every weekday
func DailyHours(specs ...string) (OperatingHours, error) {
	ranges := make([]ClockRange, 0, len(specs))
	for _, spec := range specs {
		r, err := ParseClockRange(spec)
		if err != nil {
			return OperatingHours{}, err
		}
		ranges = append(ranges, r)
	}

	weekly := make(map[time.Weekday][]ClockRange, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		weekly[day] = ranges
	}
	return OperatingHours{Weekly: weekly}, nil
}

// IsOpenAt reports whether the schedule is open at the given local time.
// The opening minute is included, the closing minute is excluded. Ranges
// wrapping past midnight are checked both on the day they start and on the
// following day's early minutes.
func (h OperatingHours) IsOpenAt(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	for _, r := range h.Weekly[t.Weekday()] {
		if r.contains(minute) {
			return true
		}
	}

	// Spillover from the previous day's wrapped ranges.
	prev := t.Weekday() - 1
	if prev < time.Sunday {
		prev = time.Saturday
	}
	for _, r := range h.Weekly[prev] {
		if r.Close <= r.Open && minute < r.Close {
			return true
		}
	}

	return false
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// UnmarshalJSON reads a schedule object keyed by lowercase weekday name.
// The key "daily" applies to every weekday not listed explicitly:
//
//	{"daily": ["9:00AM-9:00PM"], "sunday": []}
func (h *OperatingHours) UnmarshalJSON(data []byte) error {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	parse := func(specs []string) ([]ClockRange, error) {
		ranges := make([]ClockRange, 0, len(specs))
		for _, spec := range specs {
			r, err := ParseClockRange(spec)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
		return ranges, nil
	}

	weekly := make(map[time.Weekday][]ClockRange, 7)

	if daily, ok := raw["daily"]; ok {
		ranges, err := parse(daily)
		if err != nil {
			return err
		}
		for day := time.Sunday; day <= time.Saturday; day++ {
			weekly[day] = ranges
		}
	}

	for key, specs := range raw {
		if key == "daily" {
			continue
		}
		day, ok := weekdayNames[strings.ToLower(key)]
		if !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidHours, key)
		}
		ranges, err := parse(specs)
		if err != nil {
			return err
		}
		weekly[day] = ranges
	}

	h.Weekly = weekly
	return nil
}

// MarshalJSON writes the schedule keyed by lowercase weekday name
func (h OperatingHours) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(h.Weekly))
	for name, day := range weekdayNames {
		ranges, ok := h.Weekly[day]
		if !ok {
			continue
		}
		specs := make([]string, 0, len(ranges))
		for _, r := range ranges {
			specs = append(specs, r.String())
		}
		out[name] = specs
	}
	return json.Marshal(out)
}
