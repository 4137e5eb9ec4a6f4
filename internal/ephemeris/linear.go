package ephemeris

import (
	"context"
	"fmt"
	"time"

	"blueprint/internal/bodygraph"
	"blueprint/internal/wheel"
)

// J2000 is the reference instant of the linear model.
var J2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

type meanMotion struct {
	base float64 // mean longitude at J2000, degrees
	rate float64 // degrees per day
}

// Mercury and Venus never stray far from the Sun, so they ride on its mean
// motion.
var meanMotions = [bodygraph.PlanetCount]meanMotion{
	bodygraph.Sun:     {280.460, 0.9856474},
	bodygraph.Moon:    {218.316, 13.176396},
	bodygraph.Mercury: {280.460, 0.9856474},
	bodygraph.Venus:   {280.460, 0.9856474},
	bodygraph.Mars:    {355.45332, 0.52402068},
	bodygraph.Jupiter: {34.40438, 0.08308529},
	bodygraph.Saturn:  {49.94432, 0.03344414},
	bodygraph.Uranus:  {313.23218, 0.01172834},
	bodygraph.Neptune: {304.88003, 0.00598103},
	bodygraph.Pluto:   {238.92881, 0.00396},
}

// LinearProvider approximates every body by constant mean motion from
// J2000. It is deterministic and never fails on a live context.
type LinearProvider struct{}

// NewLinearProvider returns the linear approximation provider.
func NewLinearProvider() *LinearProvider { return &LinearProvider{} }

func (LinearProvider) Name() string { return "linear" }

func (LinearProvider) Longitudes(ctx context.Context, at time.Time) (bodygraph.Longitudes, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	days := at.Sub(J2000).Hours() / 24
	out := make(bodygraph.Longitudes, bodygraph.PlanetCount)
	for _, p := range bodygraph.Planets {
		m := meanMotions[p]
		out[p] = wheel.Normalize(m.base + m.rate*days)
	}
	return out, nil
}
