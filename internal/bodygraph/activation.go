package bodygraph

import (
	"encoding/json"
	"fmt"

	"blueprint/internal/wheel"
)

// Activation is one body's gate and line at one instant.
type Activation struct {
	Planet        Planet
	Gate          int
	Line          int
	Longitude     float64
	GateName      string
	Sign          wheel.Sign
	DegreesInSign int
	MinutesInSign int
}

// Notation renders the activation as "gate.line".
func (a Activation) Notation() string {
	return fmt.Sprintf("%d.%d", a.Gate, a.Line)
}

type activationJSON struct {
	Planet        Planet     `json:"planet"`
	Activation    string     `json:"activation"`
	Gate          int        `json:"gate"`
	Line          int        `json:"line"`
	Longitude     float64    `json:"longitude"`
	GateName      string     `json:"gateName"`
	Sign          wheel.Sign `json:"sign"`
	DegreesInSign int        `json:"degreesInSign"`
	MinutesInSign int        `json:"minutesInSign"`
}

// MarshalJSON adds the "gate.line" notation next to the numeric fields.
func (a Activation) MarshalJSON() ([]byte, error) {
	return json.Marshal(activationJSON{
		Planet:        a.Planet,
		Activation:    a.Notation(),
		Gate:          a.Gate,
		Line:          a.Line,
		Longitude:     a.Longitude,
		GateName:      a.GateName,
		Sign:          a.Sign,
		DegreesInSign: a.DegreesInSign,
		MinutesInSign: a.MinutesInSign,
	})
}

// Activate resolves every tracked body present in lons to its gate
// activation, in Planets order. Absent bodies and non-finite longitudes are
// skipped; they are not errors.
func Activate(lons Longitudes) []Activation {
	out := make([]Activation, 0, len(lons))
	for _, p := range Planets {
		lon, ok := lons[p]
		if !ok {
			continue
		}
		pos, err := wheel.Locate(lon)
		if err != nil {
			continue
		}
		out = append(out, Activation{
			Planet:        p,
			Gate:          pos.Gate,
			Line:          pos.Line,
			Longitude:     pos.Longitude,
			GateName:      wheel.GateName(pos.Gate),
			Sign:          pos.Sign,
			DegreesInSign: pos.DegreesInSign,
			MinutesInSign: pos.MinutesInSign,
		})
	}
	return out
}

// Missing lists the tracked bodies that Activate would skip for lons.
func Missing(lons Longitudes) []Planet {
	var out []Planet
	for _, p := range Planets {
		lon, ok := lons[p]
		if !ok {
			out = append(out, p)
			continue
		}
		if _, err := wheel.Locate(lon); err != nil {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the activation for p, if present.
func Find(activations []Activation, p Planet) (Activation, bool) {
	for _, a := range activations {
		if a.Planet == p {
			return a, true
		}
	}
	return Activation{}, false
}
