// Package bodygraph holds the static center/channel topology and the pure
// functions that turn gate activations into center definition and
// connectivity.
//
// A center is defined only by a completed channel: both gates of a channel
// activated across the personality and design layers together. A center with
// activated gates but no completed channel stays open.
package bodygraph

import (
	"encoding/json"
	"math"
	"sort"
)

// CenterState is the definition state of one center for one chart.
type CenterState struct {
	Name            Center   `json:"name"`
	Category        Category `json:"category"`
	Gates           []int    `json:"gates"`
	Channels        []string `json:"channels"`
	Defined         bool     `json:"defined"`
	OpennessPercent int      `json:"opennessPercent"`
}

// HasChannel reports whether the completed channel key touches this center.
func (s CenterState) HasChannel(key string) bool {
	for _, k := range s.Channels {
		if k == key {
			return true
		}
	}
	return false
}

// Centers is the full set of nine center states, indexed by Center.
type Centers [CenterCount]CenterState

// Get returns the state of c.
func (cs Centers) Get(c Center) CenterState {
	return cs[c]
}

// IsDefined reports whether c is defined.
func (cs Centers) IsDefined(c Center) bool {
	return cs[c].Defined
}

// Defined lists the defined centers in AllCenters order.
func (cs Centers) Defined() []Center {
	var out []Center
	for _, c := range AllCenters {
		if cs[c].Defined {
			out = append(out, c)
		}
	}
	return out
}

// MarshalJSON renders the centers as an object keyed by center name.
func (cs Centers) MarshalJSON() ([]byte, error) {
	byName := make(map[string]CenterState, CenterCount)
	for _, c := range AllCenters {
		byName[c.String()] = cs[c]
	}
	return json.Marshal(byName)
}

// GateSet is the union of activated gates across both layers.
func GateSet(personality, design []Activation) map[int]bool {
	set := make(map[int]bool, len(personality)+len(design))
	for _, a := range personality {
		set[a.Gate] = true
	}
	for _, a := range design {
		set[a.Gate] = true
	}
	return set
}

// CompletedChannels returns the channels whose two gates are both activated,
// in table order.
func CompletedChannels(personality, design []Activation) []Channel {
	active := GateSet(personality, design)
	var out []Channel
	for _, ch := range Channels {
		if active[ch.GateA] && active[ch.GateB] {
			out = append(out, ch)
		}
	}
	return out
}

// Define builds the nine center states from both activation layers.
func Define(personality, design []Activation) Centers {
	var cs Centers
	for _, c := range AllCenters {
		cs[c] = CenterState{
			Name:     c,
			Category: CategoryOf(c),
			Gates:    []int{},
			Channels: []string{},
		}
	}

	// Gate membership never defines a center on its own.
	active := GateSet(personality, design)
	for g := range active {
		c := gateCenter[g]
		cs[c].Gates = append(cs[c].Gates, g)
	}

	for _, ch := range CompletedChannels(personality, design) {
		for _, c := range ch.Centers {
			cs[c].Defined = true
			cs[c].Channels = append(cs[c].Channels, ch.Key())
		}
	}

	for _, c := range AllCenters {
		sort.Ints(cs[c].Gates)
		owned := len(centerGates[c])
		cs[c].OpennessPercent = int(math.Round(100 * float64(len(cs[c].Gates)) / float64(owned)))
	}
	return cs
}
