// Package solar models the mean apparent motion of the Sun and derives the
// design instant that precedes a birth by a fixed arc of solar travel.
package solar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// EpochMotion is the mean solar motion in degrees per day at EpochYear.
	EpochMotion = 0.9856473354
	// MotionDrift is the change in mean motion per year away from EpochYear.
	MotionDrift = 1e-7
	EpochYear   = 2000

	// DesignArc is the solar arc, in degrees, between the design and birth
	// instants.
	DesignArc = 88.36

	MinOffsetDays = 85.0
	MaxOffsetDays = 91.0
)

// ErrInvalidOffset means the derived offset left the physical band. It points
// at broken constants, not bad input.
var ErrInvalidOffset = errors.New("design offset out of range")

// Motion returns the mean solar motion in degrees per day for year.
func Motion(year int) float64 {
	return EpochMotion + MotionDrift*float64(year-EpochYear)
}

// OffsetDays returns the number of days the Sun needs to travel DesignArc in
// the given year.
func OffsetDays(year int) float64 {
	return DesignArc / Motion(year)
}

// Offset records how a design instant was derived from a birth instant.
type Offset struct {
	Birth  time.Time `json:"personalityTime"`
	Design time.Time `json:"designTime"`
	Days   float64   `json:"offsetDays"`
	Motion float64   `json:"solarMotion"`
}

// DesignInstant returns the design instant for birth. The birth year is taken
// in birth's own location.
func DesignInstant(birth time.Time) (Offset, error) {
	return designFor(birth, Motion(birth.Year()))
}

func designFor(birth time.Time, motion float64) (Offset, error) {
	if motion <= 0 || math.IsNaN(motion) || math.IsInf(motion, 0) {
		return Offset{}, fmt.Errorf("%w: solar motion %v deg/day", ErrInvalidOffset, motion)
	}
	days := DesignArc / motion
	if err := checkOffset(days); err != nil {
		return Offset{}, err
	}
	return Offset{
		Birth:  birth,
		Design: birth.Add(-daysToDuration(days)),
		Days:   days,
		Motion: motion,
	}, nil
}

func checkOffset(days float64) error {
	if math.IsNaN(days) || days < MinOffsetDays || days > MaxOffsetDays {
		return fmt.Errorf("%w: %.4f days not within [%g, %g]", ErrInvalidOffset, days, MinOffsetDays, MaxOffsetDays)
	}
	return nil
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(math.Round(days * float64(24*time.Hour)))
}
