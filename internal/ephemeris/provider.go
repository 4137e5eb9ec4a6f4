// Package ephemeris supplies planetary longitudes for an instant. Providers
// range from an external ephemeris program to a deterministic linear
// approximation used when the precise source is unavailable.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blueprint/internal/bodygraph"
)

// ErrUnavailable wraps every failure to obtain longitudes from a provider.
var ErrUnavailable = errors.New("ephemeris unavailable")

// Provider returns geocentric ecliptic longitudes for an instant. A provider
// may omit bodies it cannot compute.
type Provider interface {
	Name() string
	Longitudes(ctx context.Context, at time.Time) (bodygraph.Longitudes, error)
}

// StaticProvider always returns the same longitudes.
type StaticProvider struct {
	lons bodygraph.Longitudes
}

// NewStaticProvider returns a provider serving a copy of lons.
func NewStaticProvider(lons bodygraph.Longitudes) *StaticProvider {
	return &StaticProvider{lons: copyLongitudes(lons)}
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Longitudes(ctx context.Context, _ time.Time) (bodygraph.Longitudes, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return copyLongitudes(p.lons), nil
}

func copyLongitudes(lons bodygraph.Longitudes) bodygraph.Longitudes {
	out := make(bodygraph.Longitudes, len(lons))
	for p, v := range lons {
		out[p] = v
	}
	return out
}

// Resolution is the outcome of WithFallback.
type Resolution struct {
	Longitudes   bodygraph.Longitudes
	Source       string
	UsedFallback bool
	// PrimaryErr is why the primary provider was bypassed, if it was.
	PrimaryErr error
}

// WithFallback asks primary for longitudes at `at`, bounded by timeout. When
// primary is nil or fails, fallback answers instead and the resolution is
// flagged. An error is returned only when no provider produced longitudes.
func WithFallback(ctx context.Context, primary, fallback Provider, at time.Time, timeout time.Duration) (Resolution, error) {
	var primaryErr error
	if primary != nil {
		callCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		lons, err := primary.Longitudes(callCtx, at)
		if err == nil {
			return Resolution{Longitudes: lons, Source: primary.Name()}, nil
		}
		primaryErr = err
	} else {
		primaryErr = fmt.Errorf("%w: no provider configured", ErrUnavailable)
	}

	if fallback == nil {
		return Resolution{PrimaryErr: primaryErr}, primaryErr
	}
	lons, err := fallback.Longitudes(ctx, at)
	if err != nil {
		return Resolution{PrimaryErr: primaryErr}, errors.Join(primaryErr, err)
	}
	return Resolution{
		Longitudes:   lons,
		Source:       fallback.Name(),
		UsedFallback: true,
		PrimaryErr:   primaryErr,
	}, nil
}
