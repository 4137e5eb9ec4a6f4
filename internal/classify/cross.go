package classify

import (
	"fmt"

	"blueprint/internal/bodygraph"
	"blueprint/internal/wheel"
)

// Angle is the geometry of an incarnation cross.
type Angle int

const (
	RightAngle Angle = iota
	Juxtaposition
	LeftAngle
)

var angleNames = [...]string{"Right Angle", "Juxtaposition", "Left Angle"}

func (a Angle) String() string {
	if a < 0 || int(a) >= len(angleNames) {
		return fmt.Sprintf("angle(%d)", int(a))
	}
	return angleNames[a]
}

func (a Angle) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(angleNames) {
		return nil, fmt.Errorf("invalid angle %d", int(a))
	}
	return []byte(angleNames[a]), nil
}

// AngleOf derives the cross angle from the profile. 4/1 is the only
// juxtaposition; conscious lines 5 and 6 are left angle.
func AngleOf(p Profile) Angle {
	switch {
	case p.Conscious == 4 && p.Unconscious == 1:
		return Juxtaposition
	case p.Conscious >= 5:
		return LeftAngle
	default:
		return RightAngle
	}
}

// Cross is the incarnation cross: Sun and Earth gates of both layers.
type Cross struct {
	Angle            Angle `json:"angle"`
	PersonalitySun   int   `json:"personalitySun"`
	PersonalityEarth int   `json:"personalityEarth"`
	DesignSun        int   `json:"designSun"`
	DesignEarth      int   `json:"designEarth"`
}

// String renders e.g. "Right Angle Cross (12/11 | 36/6)".
func (c Cross) String() string {
	return fmt.Sprintf("%s Cross (%d/%d | %d/%d)",
		c.Angle, c.PersonalitySun, c.PersonalityEarth, c.DesignSun, c.DesignEarth)
}

// CrossOf derives the cross. Earth sits opposite the Sun.
func CrossOf(personality, design []bodygraph.Activation, p Profile) (Cross, error) {
	pSun, ok := bodygraph.Find(personality, bodygraph.Sun)
	if !ok {
		return Cross{}, missingBody(LayerPersonality, bodygraph.Sun)
	}
	dSun, ok := bodygraph.Find(design, bodygraph.Sun)
	if !ok {
		return Cross{}, missingBody(LayerDesign, bodygraph.Sun)
	}
	pEarth, err := earthGate(pSun)
	if err != nil {
		return Cross{}, err
	}
	dEarth, err := earthGate(dSun)
	if err != nil {
		return Cross{}, err
	}
	return Cross{
		Angle:            AngleOf(p),
		PersonalitySun:   pSun.Gate,
		PersonalityEarth: pEarth,
		DesignSun:        dSun.Gate,
		DesignEarth:      dEarth,
	}, nil
}

func earthGate(sun bodygraph.Activation) (int, error) {
	pos, err := wheel.Locate(sun.Longitude + 180)
	if err != nil {
		return 0, fmt.Errorf("earth opposite %s: %w", sun.Notation(), err)
	}
	return pos.Gate, nil
}
