// Package dectime implements decimal time: the day divided into 10 decimal
// hours of 100 decimal minutes of 100 decimal seconds.
package dectime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

const (
	// MillisPerDay is the number of milliseconds in a day.
	MillisPerDay = 86_400_000
	// MillisPerHour is the number of milliseconds in a standard hour.
	MillisPerHour = 3_600_000

	millisPerDecHour   = MillisPerDay / 10
	millisPerDecMinute = millisPerDecHour / 100
	millisPerDecSecond = millisPerDecMinute / 100

	// SecondsPerDay is the number of decimal seconds in a day.
	SecondsPerDay = 10 * 100 * 100
)

// Second is the real duration of one decimal second.
const Second = millisPerDecSecond * time.Millisecond

// Minute is the real duration of one decimal minute.
const Minute = millisPerDecMinute * time.Millisecond

// ErrBeforeEpoch is returned when the system clock reports a time before
// the Unix epoch.
var ErrBeforeEpoch = errors.New("system clock is set before the Unix epoch")

// Time is a decimal time of day. Values returned by FromMillis, Now and
// Parse are always valid; a Time built by hand may not be (see Valid).
type Time struct {
	Hour   uint // 0-9
	Minute uint // 0-99
	Second uint // 0-99
}

// FromMillis converts a count of milliseconds since the Unix epoch into the
// decimal time of day at the given offset (in whole hours) from UTC.
func FromMillis(epochMillis int64, offsetHours int) Time {
	ms := LocalMillis(epochMillis, offsetHours)
	return Time{
		Hour:   uint(ms / millisPerDecHour),
		Minute: uint(ms % millisPerDecHour / millisPerDecMinute),
		Second: uint(ms % millisPerDecMinute / millisPerDecSecond),
	}
}

// LocalMillis returns the number of milliseconds since local midnight at the
// given offset from UTC. The result is always in [0, MillisPerDay).
func LocalMillis(epochMillis int64, offsetHours int) int64 {
	// Whole days don't change the time of day; reduce both terms first so
	// the sum can't overflow.
	ms := (epochMillis%MillisPerDay + int64(offsetHours%24)*MillisPerHour) % MillisPerDay
	if ms < 0 {
		ms += MillisPerDay
	}
	return ms
}

// EpochMillis reads the wall clock as milliseconds since the Unix epoch.
func EpochMillis() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return 0, fmt.Errorf("error reading system clock: %s", err)
	}
	sec, nsec := ts.Unix()
	if sec < 0 {
		return 0, ErrBeforeEpoch
	}
	return sec*1000 + nsec/1e6, nil
}

// Now returns the current decimal time at the given offset from UTC.
func Now(offsetHours int) (Time, error) {
	ms, err := EpochMillis()
	if err != nil {
		return Time{}, err
	}
	return FromMillis(ms, offsetHours), nil
}

// Valid reports whether every field of t is within its range.
func (t Time) Valid() bool {
	return t.Hour < 10 && t.Minute < 100 && t.Second < 100
}

// Millis returns the number of milliseconds since midnight at which the
// decimal second t begins.
func (t Time) Millis() int64 {
	return int64(t.Hour)*millisPerDecHour +
		int64(t.Minute)*millisPerDecMinute +
		int64(t.Second)*millisPerDecSecond
}

// String formats t as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Increment advances t by one decimal second. Passing midnight wraps to
// 00:00:00.
func (t *Time) Increment() {
	if !carry(&t.Second, 100) {
		return
	}
	if !carry(&t.Minute, 100) {
		return
	}
	carry(&t.Hour, 10)
}

// carry adds one to *v and wraps it to zero at mod, reporting whether it
// wrapped.
func carry[T constraints.Unsigned](v *T, mod T) bool {
	*v++
	if *v < mod {
		return false
	}
	*v = 0
	return true
}

// Parse parses a decimal reading of the form H:MM:SS or HH:MM:SS.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("bad decimal time %q: want HH:MM:SS", s)
	}
	var fields [3]uint
	for i, limit := range [3]uint64{9, 99, 99} {
		if len(parts[i]) == 0 || len(parts[i]) > 2 {
			return Time{}, fmt.Errorf("bad decimal time %q: malformed field %q", s, parts[i])
		}
		n, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return Time{}, fmt.Errorf("bad decimal time %q: %s", s, err)
		}
		if n > limit {
			return Time{}, fmt.Errorf("bad decimal time %q: field %q out of range", s, parts[i])
		}
		fields[i] = uint(n)
	}
	return Time{Hour: fields[0], Minute: fields[1], Second: fields[2]}, nil
}
