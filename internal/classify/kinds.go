// Package classify derives the symbolic profile of a chart from its center
// definition: type, authority, profile, definition and the narrative lookups
// that go with them. Everything here is a pure function of its inputs.
package classify

import "fmt"

// Type is the energy type of a chart.
type Type int

const (
	Reflector Type = iota
	Generator
	ManifestingGenerator
	Manifestor
	Projector
)

var typeNames = [...]string{"Reflector", "Generator", "Manifesting Generator", "Manifestor", "Projector"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("invalid type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

// Authority is the center that governs decisions.
type Authority int

const (
	Emotional Authority = iota
	SacralAuthority
	Splenic
	Ego
	SelfProjected
	Mental
	Lunar
)

var authorityNames = [...]string{"Emotional", "Sacral", "Splenic", "Ego", "Self-Projected", "Mental", "Lunar"}

func (a Authority) String() string {
	if a < 0 || int(a) >= len(authorityNames) {
		return fmt.Sprintf("authority(%d)", int(a))
	}
	return authorityNames[a]
}

func (a Authority) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(authorityNames) {
		return nil, fmt.Errorf("invalid authority %d", int(a))
	}
	return []byte(authorityNames[a]), nil
}

// Definition is the split pattern of the defined centers.
type Definition int

const (
	NoDefinition Definition = iota
	SingleDefinition
	SplitDefinition
	TripleSplit
	QuadrupleSplit
)

var definitionNames = [...]string{"None", "Single", "Split", "Triple Split", "Quadruple Split"}

func (d Definition) String() string {
	if d < 0 || int(d) >= len(definitionNames) {
		return fmt.Sprintf("definition(%d)", int(d))
	}
	return definitionNames[d]
}

func (d Definition) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(definitionNames) {
		return nil, fmt.Errorf("invalid definition %d", int(d))
	}
	return []byte(definitionNames[d]), nil
}
