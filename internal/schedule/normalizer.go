package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/saudesim/agenda-service/internal/domain"
)

var (
	dateRe     = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	bareHourRe = regexp.MustCompile(`^\d{1,2}$`)
	hourMinRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Normalizer converts the bot's civil date/time strings into calendar-exact
// intervals in a single fixed timezone. Every other component works with
// the instants produced here; nothing downstream ever parses a date string
// or relies on the host timezone.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer creates a normalizer for the given IANA timezone id
// (e.g. "America/Sao_Paulo")
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the fixed civil timezone all slots are expressed in
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToInterval parses a DD/MM/YYYY date and an H/HH/HH:MM time into a
// one-hour slot. The end instant is computed by adding a real hour to the
// start instant, so the slot stays exactly one hour long across DST
// transitions instead of relying on naive wall-clock arithmetic.
func (n *Normalizer) ToInterval(dateStr, timeStr string) (domain.TimeSlot, error) {
	year, month, day, err := parseDate(dateStr)
	if err != nil {
		return domain.TimeSlot{}, err
	}

	hour, minute, err := parseTime(timeStr)
	if err != nil {
		return domain.TimeSlot{}, err
	}

	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, n.loc)
	return domain.NewTimeSlot(start), nil
}

// StartOfDay returns 00:00:00 of the given civil day
func (n *Normalizer) StartOfDay(dateStr string) (time.Time, error) {
	year, month, day, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, n.loc), nil
}

// EndOfDay returns 23:59:59 of the given civil day
func (n *Normalizer) EndOfDay(dateStr string) (time.Time, error) {
	year, month, day, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 23, 59, 59, 0, n.loc), nil
}

// SlotStart returns the start of the one-hour slot beginning at the given
// civil hour of the given day
func (n *Normalizer) SlotStart(dateStr string, hour int) (time.Time, error) {
	year, month, day, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, n.loc), nil
}

// parseDate validates the DD/MM/YYYY shape and rejects dates that do not
// round-trip: 31/02/2025 normalizes to March when reconstructed, so
// comparing the components back catches it.
func parseDate(dateStr string) (year, month, day int, err error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(dateStr))
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q does not match DD/MM/YYYY", ErrInvalidDate, dateStr)
	}

	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])

	reconstructed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if reconstructed.Year() != year || int(reconstructed.Month()) != month || reconstructed.Day() != day {
		return 0, 0, 0, fmt.Errorf("%w: %q is not a real calendar day", ErrInvalidDate, dateStr)
	}

	return year, month, day, nil
}

// parseTime accepts a bare hour ("9") normalized to 09:00, or HH:MM
func parseTime(timeStr string) (hour, minute int, err error) {
	timeStr = strings.TrimSpace(timeStr)

	if bareHourRe.MatchString(timeStr) {
		hour, _ = strconv.Atoi(timeStr)
		if hour > 23 {
			return 0, 0, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
		}
		return hour, 0, nil
	}

	m := hourMinRe.FindStringSubmatch(timeStr)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q matches neither H nor HH:MM", ErrInvalidTime, timeStr)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
	}
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minute)
	}

	return hour, minute, nil
}
