// Package wheel maps ecliptic longitudes onto the 64-gate mandala.
//
// The wheel is a fixed, ordered partition of the zodiac into 64 gate spans,
// each subdivided into six equal lines. The partition is declared as a table
// of gate start positions (sign, degree, minute, second); span widths are
// derived from consecutive starts, so the table alone defines the wheel.
// The table is validated once at package load and the package panics if it
// does not cover all 64 gates exactly once around the full circle.
package wheel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// GateCount is the number of gates on the wheel.
	GateCount = 64
	// LineCount is the number of lines inside each gate.
	LineCount = 6

	fullCircle = 360.0
)

// ErrInvalidLongitude is returned for NaN or infinite longitudes.
var ErrInvalidLongitude = errors.New("invalid longitude")

// ErrInvalidGate is returned when a gate or line number is out of range.
var ErrInvalidGate = errors.New("invalid gate or line")

// boundary is the start of one gate span.
type boundary struct {
	gate   int
	sign   Sign
	degree int
	minute int
	second int
}

func (b boundary) longitude() float64 {
	arcSeconds := ((int(b.sign)*30+b.degree)*60+b.minute)*60 + b.second
	return float64(arcSeconds) / 3600
}

// wheelTable lists the gate starts in wheel order, beginning with gate 41 at
// 2° Aquarius.
var wheelTable = [GateCount]boundary{
	{41, Aquarius, 2, 0, 0},
	{19, Aquarius, 7, 37, 30},
	{13, Aquarius, 13, 15, 0},
	{49, Aquarius, 18, 52, 30},
	{30, Aquarius, 24, 30, 0},
	{55, Pisces, 0, 7, 30},
	{37, Pisces, 5, 45, 0},
	{63, Pisces, 11, 22, 30},
	{22, Pisces, 17, 0, 0},
	{36, Pisces, 22, 37, 30},
	{25, Pisces, 28, 15, 0},
	{17, Aries, 3, 52, 30},
	{21, Aries, 9, 30, 0},
	{51, Aries, 15, 7, 30},
	{42, Aries, 20, 45, 0},
	{3, Aries, 26, 22, 30},
	{27, Taurus, 2, 0, 0},
	{24, Taurus, 7, 37, 30},
	{2, Taurus, 13, 15, 0},
	{23, Taurus, 18, 52, 30},
	{8, Taurus, 24, 30, 0},
	{20, Gemini, 0, 7, 30},
	{16, Gemini, 5, 45, 0},
	{35, Gemini, 11, 22, 30},
	{45, Gemini, 17, 0, 0},
	{12, Gemini, 22, 37, 30},
	{15, Gemini, 28, 15, 0},
	{52, Cancer, 3, 52, 30},
	{39, Cancer, 9, 30, 0},
	{53, Cancer, 15, 7, 30},
	{62, Cancer, 20, 45, 0},
	{56, Cancer, 26, 22, 30},
	{31, Leo, 2, 0, 0},
	{33, Leo, 7, 37, 30},
	{7, Leo, 13, 15, 0},
	{4, Leo, 18, 52, 30},
	{29, Leo, 24, 30, 0},
	{59, Virgo, 0, 7, 30},
	{40, Virgo, 5, 45, 0},
	{64, Virgo, 11, 22, 30},
	{47, Virgo, 17, 0, 0},
	{6, Virgo, 22, 37, 30},
	{46, Virgo, 28, 15, 0},
	{18, Libra, 3, 52, 30},
	{48, Libra, 9, 30, 0},
	{57, Libra, 15, 7, 30},
	{32, Libra, 20, 45, 0},
	{50, Libra, 26, 22, 30},
	{28, Scorpio, 2, 0, 0},
	{44, Scorpio, 7, 37, 30},
	{1, Scorpio, 13, 15, 0},
	{43, Scorpio, 18, 52, 30},
	{14, Scorpio, 24, 30, 0},
	{34, Sagittarius, 0, 7, 30},
	{9, Sagittarius, 5, 45, 0},
	{5, Sagittarius, 11, 22, 30},
	{26, Sagittarius, 17, 0, 0},
	{11, Sagittarius, 22, 37, 30},
	{10, Sagittarius, 28, 15, 0},
	{58, Capricorn, 3, 52, 30},
	{38, Capricorn, 9, 30, 0},
	{54, Capricorn, 15, 7, 30},
	{61, Capricorn, 20, 45, 0},
	{60, Capricorn, 26, 22, 30},
}

var (
	// origin is the absolute longitude where the first span starts.
	origin float64
	// offsets[i] is the start of span i measured from origin; strictly increasing.
	offsets [GateCount]float64
	// widths[i] is the angular width of span i.
	widths [GateCount]float64
	// position[g] is the wheel index of gate g.
	position [GateCount + 1]int
)

func init() {
	if err := buildWheel(); err != nil {
		panic(fmt.Sprintf("wheel: %v", err))
	}
}

func buildWheel() error {
	origin = wheelTable[0].longitude()
	seen := [GateCount + 1]bool{}
	for i, b := range wheelTable {
		if b.gate < 1 || b.gate > GateCount {
			return fmt.Errorf("entry %d: gate %d out of range", i, b.gate)
		}
		if seen[b.gate] {
			return fmt.Errorf("entry %d: gate %d listed twice", i, b.gate)
		}
		seen[b.gate] = true
		position[b.gate] = i
		offsets[i] = Normalize(b.longitude() - origin)
		if i > 0 && offsets[i] <= offsets[i-1] {
			return fmt.Errorf("entry %d: gate %d does not advance around the wheel", i, b.gate)
		}
	}

	total := 0.0
	for i := range offsets {
		next := fullCircle
		if i+1 < GateCount {
			next = offsets[i+1]
		}
		widths[i] = next - offsets[i]
		total += widths[i]
	}
	if math.Abs(total-fullCircle) > 1e-9 {
		return fmt.Errorf("spans sum to %f, want %f", total, fullCircle)
	}

	for g := 1; g <= GateCount; g++ {
		if gateNames[g] == "" {
			return fmt.Errorf("gate %d has no name", g)
		}
	}
	return nil
}

// Position is the wheel coordinate of a longitude.
type Position struct {
	Gate          int
	Line          int
	Longitude     float64
	Sign          Sign
	DegreesInSign int
	MinutesInSign int
}

// Notation renders the position as "gate.line".
func (p Position) Notation() string {
	return fmt.Sprintf("%d.%d", p.Gate, p.Line)
}

// Normalize folds any finite longitude into [0, 360).
func Normalize(longitude float64) float64 {
	lon := math.Mod(longitude, fullCircle)
	if lon < 0 {
		lon += fullCircle
	}
	if lon >= fullCircle {
		lon = 0
	}
	return lon
}

// Locate resolves a longitude to its gate, line and sign position.
// Finite longitudes outside [0, 360) are folded onto the circle first.
func Locate(longitude float64) (Position, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Position{}, fmt.Errorf("%w: %v", ErrInvalidLongitude, longitude)
	}
	lon := Normalize(longitude)
	off := Normalize(lon - origin)

	i := sort.Search(GateCount, func(i int) bool { return offsets[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	line := int((off-offsets[i])/(widths[i]/LineCount)) + 1
	if line > LineCount {
		line = LineCount
	}

	sign, deg, mins := SignOf(lon)
	return Position{
		Gate:          wheelTable[i].gate,
		Line:          line,
		Longitude:     lon,
		Sign:          sign,
		DegreesInSign: deg,
		MinutesInSign: mins,
	}, nil
}

// Span returns the absolute start longitude and width of a gate.
func Span(gate int) (start, width float64, err error) {
	if gate < 1 || gate > GateCount {
		return 0, 0, fmt.Errorf("%w: gate %d", ErrInvalidGate, gate)
	}
	i := position[gate]
	return Normalize(origin + offsets[i]), widths[i], nil
}

// Midpoint returns the longitude at the center of the given gate line.
func Midpoint(gate, line int) (float64, error) {
	if line < 1 || line > LineCount {
		return 0, fmt.Errorf("%w: line %d", ErrInvalidGate, line)
	}
	start, width, err := Span(gate)
	if err != nil {
		return 0, err
	}
	lineWidth := width / LineCount
	return Normalize(start + (float64(line)-0.5)*lineWidth), nil
}

// Order returns the gates in wheel order, starting with gate 41.
func Order() []int {
	out := make([]int, GateCount)
	for i, b := range wheelTable {
		out[i] = b.gate
	}
	return out
}
