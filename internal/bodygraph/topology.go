package bodygraph

import (
	"fmt"
	"strings"

	"blueprint/internal/wheel"
)

// Center is one of the nine energy centers.
type Center int

const (
	Head Center = iota
	Ajna
	Throat
	G
	Heart
	Sacral
	Spleen
	SolarPlexus
	Root
)

// CenterCount is the number of centers.
const CenterCount = 9

// AllCenters lists the centers top to bottom.
var AllCenters = [CenterCount]Center{Head, Ajna, Throat, G, Heart, Sacral, Spleen, SolarPlexus, Root}

var centerNames = [CenterCount]string{
	"head", "ajna", "throat", "g", "heart", "sacral", "spleen", "solar_plexus", "root",
}

func (c Center) String() string {
	if c < 0 || int(c) >= CenterCount {
		return fmt.Sprintf("center(%d)", int(c))
	}
	return centerNames[c]
}

// MarshalText renders the center by its snake_case name.
func (c Center) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= CenterCount {
		return nil, fmt.Errorf("invalid center %d", int(c))
	}
	return []byte(centerNames[c]), nil
}

// ParseCenter parses a center name such as "solar_plexus" or "Sacral".
func ParseCenter(name string) (Center, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range centerNames {
		if n == key {
			return Center(i), nil
		}
	}
	return 0, fmt.Errorf("unknown center %q", name)
}

// Category is the functional class of a center.
type Category int

const (
	// CategoryUnassigned marks centers whose category is still an open product
	// question (Throat, G). Nothing in classification reads it.
	CategoryUnassigned Category = iota
	CategoryMotor
	CategoryAwareness
	CategoryPressure
)

var categoryNames = [...]string{"unassigned", "motor", "awareness", "pressure"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalText renders the category name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

var centerCategories = [CenterCount]Category{
	Head:        CategoryPressure,
	Ajna:        CategoryAwareness,
	Throat:      CategoryUnassigned,
	G:           CategoryUnassigned,
	Heart:       CategoryMotor,
	Sacral:      CategoryMotor,
	Spleen:      CategoryAwareness,
	SolarPlexus: CategoryMotor,
	Root:        CategoryPressure,
}

// CategoryOf returns the category of c.
func CategoryOf(c Center) Category {
	return centerCategories[c]
}

// Motors is the fixed motor set used by classification. It is kept apart
// from Category because Solar Plexus and Root are motors while also
// belonging to another category.
var Motors = [...]Center{Heart, Sacral, SolarPlexus, Root}

var centerGates = [CenterCount][]int{
	Head:        {64, 61, 63},
	Ajna:        {47, 24, 4, 17, 43, 11},
	Throat:      {62, 23, 56, 35, 12, 45, 33, 8, 31, 20, 16},
	G:           {1, 13, 25, 46, 2, 15, 10, 7},
	Heart:       {21, 40, 26, 51},
	Sacral:      {5, 14, 29, 59, 9, 3, 42, 27, 34},
	Spleen:      {48, 57, 44, 50, 32, 28, 18},
	SolarPlexus: {36, 22, 37, 6, 49, 55, 30},
	Root:        {53, 60, 52, 19, 39, 41, 58, 38, 54},
}

// gateCenter[g] is the center owning gate g; slot 0 is unused.
var gateCenter [wheel.GateCount + 1]Center

// Channel joins two gates in two different centers.
type Channel struct {
	GateA   int
	GateB   int
	Centers [2]Center
	Name    string
}

// Key identifies the channel as "a-b" with a < b.
func (c Channel) Key() string {
	return fmt.Sprintf("%d-%d", c.GateA, c.GateB)
}

// ChannelCount is the number of channels.
const ChannelCount = 36

// Channels is the complete channel table, ordered by first gate.
var Channels = [ChannelCount]Channel{
	{1, 8, [2]Center{G, Throat}, "Inspiration"},
	{2, 14, [2]Center{G, Sacral}, "The Beat"},
	{3, 60, [2]Center{Sacral, Root}, "Mutation"},
	{4, 63, [2]Center{Ajna, Head}, "Logic"},
	{5, 15, [2]Center{Sacral, G}, "Rhythm"},
	{6, 59, [2]Center{SolarPlexus, Sacral}, "Mating"},
	{7, 31, [2]Center{G, Throat}, "The Alpha"},
	{9, 52, [2]Center{Sacral, Root}, "Concentration"},
	{10, 20, [2]Center{G, Throat}, "Awakening"},
	{10, 34, [2]Center{G, Sacral}, "Exploration"},
	{10, 57, [2]Center{G, Spleen}, "Perfected Form"},
	{11, 56, [2]Center{Ajna, Throat}, "Curiosity"},
	{12, 22, [2]Center{Throat, SolarPlexus}, "Openness"},
	{13, 33, [2]Center{G, Throat}, "The Prodigal"},
	{16, 48, [2]Center{Throat, Spleen}, "The Wavelength"},
	{17, 62, [2]Center{Ajna, Throat}, "Acceptance"},
	{18, 58, [2]Center{Spleen, Root}, "Judgment"},
	{19, 49, [2]Center{Root, SolarPlexus}, "Synthesis"},
	{20, 34, [2]Center{Throat, Sacral}, "Charisma"},
	{20, 57, [2]Center{Throat, Spleen}, "The Brainwave"},
	{21, 45, [2]Center{Heart, Throat}, "Money"},
	{23, 43, [2]Center{Throat, Ajna}, "Structuring"},
	{24, 61, [2]Center{Ajna, Head}, "Awareness"},
	{25, 51, [2]Center{G, Heart}, "Initiation"},
	{26, 44, [2]Center{Heart, Spleen}, "Surrender"},
	{27, 50, [2]Center{Sacral, Spleen}, "Preservation"},
	{28, 38, [2]Center{Spleen, Root}, "Struggle"},
	{29, 46, [2]Center{Sacral, G}, "Discovery"},
	{30, 41, [2]Center{SolarPlexus, Root}, "Recognition"},
	{32, 54, [2]Center{Spleen, Root}, "Transformation"},
	{34, 57, [2]Center{Sacral, Spleen}, "Power"},
	{35, 36, [2]Center{Throat, SolarPlexus}, "Transitoriness"},
	{37, 40, [2]Center{SolarPlexus, Heart}, "Community"},
	{39, 55, [2]Center{Root, SolarPlexus}, "Emoting"},
	{42, 53, [2]Center{Sacral, Root}, "Maturation"},
	{47, 64, [2]Center{Ajna, Head}, "Abstraction"},
}

func init() {
	if err := buildTopology(); err != nil {
		panic(fmt.Sprintf("bodygraph: %v", err))
	}
}

func buildTopology() error {
	assigned := [wheel.GateCount + 1]bool{}
	for c, gates := range centerGates {
		for _, g := range gates {
			if g < 1 || g > wheel.GateCount {
				return fmt.Errorf("center %s: gate %d out of range", Center(c), g)
			}
			if assigned[g] {
				return fmt.Errorf("gate %d assigned to more than one center", g)
			}
			assigned[g] = true
			gateCenter[g] = Center(c)
		}
	}
	for g := 1; g <= wheel.GateCount; g++ {
		if !assigned[g] {
			return fmt.Errorf("gate %d has no center", g)
		}
	}

	keys := make(map[string]bool, len(Channels))
	for _, ch := range Channels {
		if ch.GateA >= ch.GateB {
			return fmt.Errorf("channel %s: gates not ascending", ch.Key())
		}
		if keys[ch.Key()] {
			return fmt.Errorf("channel %s listed twice", ch.Key())
		}
		keys[ch.Key()] = true
		if gateCenter[ch.GateA] != ch.Centers[0] || gateCenter[ch.GateB] != ch.Centers[1] {
			return fmt.Errorf("channel %s: centers %s/%s disagree with gate owners %s/%s",
				ch.Key(), ch.Centers[0], ch.Centers[1], gateCenter[ch.GateA], gateCenter[ch.GateB])
		}
		if ch.Centers[0] == ch.Centers[1] {
			return fmt.Errorf("channel %s joins %s to itself", ch.Key(), ch.Centers[0])
		}
	}
	return nil
}

// CenterOf returns the center owning gate.
func CenterOf(gate int) (Center, error) {
	if gate < 1 || gate > wheel.GateCount {
		return 0, fmt.Errorf("%w: gate %d", wheel.ErrInvalidGate, gate)
	}
	return gateCenter[gate], nil
}

// GatesOf returns a copy of the gates owned by c.
func GatesOf(c Center) []int {
	return append([]int(nil), centerGates[c]...)
}

// ChannelsOf returns the channels touching c.
func ChannelsOf(c Center) []Channel {
	var out []Channel
	for _, ch := range Channels {
		if ch.Centers[0] == c || ch.Centers[1] == c {
			out = append(out, ch)
		}
	}
	return out
}
