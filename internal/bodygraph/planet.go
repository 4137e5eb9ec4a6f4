package bodygraph

import (
	"fmt"
	"strings"
)

// Planet is one of the ten tracked bodies.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// PlanetCount is the number of tracked bodies.
const PlanetCount = 10

// Planets lists the tracked bodies in resolution order. Activation lists are
// always emitted in this order; the Sun comes first.
var Planets = [PlanetCount]Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var planetNames = [PlanetCount]string{
	"sun", "moon", "mercury", "venus", "mars",
	"jupiter", "saturn", "uranus", "neptune", "pluto",
}

func (p Planet) String() string {
	if p < 0 || int(p) >= PlanetCount {
		return fmt.Sprintf("planet(%d)", int(p))
	}
	return planetNames[p]
}

// MarshalText renders the planet by its lowercase name.
func (p Planet) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= PlanetCount {
		return nil, fmt.Errorf("invalid planet %d", int(p))
	}
	return []byte(planetNames[p]), nil
}

// UnmarshalText parses a planet name case-insensitively.
func (p *Planet) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlanet parses a planet name such as "Sun" or "jupiter".
func ParsePlanet(name string) (Planet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range planetNames {
		if n == key {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", name)
}

// Longitudes maps each tracked body to its ecliptic longitude in degrees.
// Bodies may be absent.
type Longitudes map[Planet]float64

// ParseLongitudes converts a name-keyed map (as decoded from JSON or YAML)
// into Longitudes. Unknown body names are rejected.
func ParseLongitudes(raw map[string]float64) (Longitudes, error) {
	out := make(Longitudes, len(raw))
	for name, lon := range raw {
		p, err := ParsePlanet(name)
		if err != nil {
			return nil, err
		}
		out[p] = lon
	}
	return out, nil
}
