package classify

import (
	"fmt"

	"blueprint/internal/bodygraph"
	"blueprint/internal/wheel"
)

// UniqueProfile names every line pair that has no canonical archetype pair.
const UniqueProfile = "Unique Profile Combination"

var lineRoles = [wheel.LineCount + 1]string{
	1: "Investigator",
	2: "Hermit",
	3: "Martyr",
	4: "Opportunist",
	5: "Heretic",
	6: "Role Model",
}

// canonicalProfiles are the twelve named conscious/unconscious line pairs.
var canonicalProfiles = [...][2]int{
	{1, 3}, {1, 4}, {2, 4}, {2, 5}, {3, 5}, {3, 6},
	{4, 6}, {4, 1}, {5, 1}, {5, 2}, {6, 2}, {6, 3},
}

// profileNames[c-1][u-1] holds the archetype pair, or UniqueProfile.
var profileNames [wheel.LineCount][wheel.LineCount]string

func init() {
	for c := range profileNames {
		for u := range profileNames[c] {
			profileNames[c][u] = UniqueProfile
		}
	}
	for _, pair := range canonicalProfiles {
		c, u := pair[0], pair[1]
		if profileNames[c-1][u-1] != UniqueProfile {
			panic(fmt.Sprintf("classify: profile %d/%d listed twice", c, u))
		}
		profileNames[c-1][u-1] = lineRoles[c] + "/" + lineRoles[u]
	}
}

// Profile is the pair of Sun lines, conscious over unconscious.
type Profile struct {
	Conscious   int    `json:"conscious"`
	Unconscious int    `json:"unconscious"`
	Name        string `json:"name"`
	Canonical   bool   `json:"canonical"`
}

// Lines renders "c/u".
func (p Profile) Lines() string {
	return fmt.Sprintf("%d/%d", p.Conscious, p.Unconscious)
}

// String renders "c/u (Name)", e.g. "3/5 (Martyr/Heretic)".
func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Lines(), p.Name)
}

// ProfileFor looks up a line pair. Uncanonical pairs are not an error.
func ProfileFor(conscious, unconscious int) (Profile, error) {
	if conscious < 1 || conscious > wheel.LineCount || unconscious < 1 || unconscious > wheel.LineCount {
		return Profile{}, &ClassificationError{
			Kind:   KindInvalidInput,
			Detail: fmt.Sprintf("profile lines %d/%d out of range", conscious, unconscious),
		}
	}
	name := profileNames[conscious-1][unconscious-1]
	return Profile{
		Conscious:   conscious,
		Unconscious: unconscious,
		Name:        name,
		Canonical:   name != UniqueProfile,
	}, nil
}

// ProfileOf reads the Sun line from both layers.
func ProfileOf(personality, design []bodygraph.Activation) (Profile, error) {
	pSun, ok := bodygraph.Find(personality, bodygraph.Sun)
	if !ok {
		return Profile{}, missingBody(LayerPersonality, bodygraph.Sun)
	}
	dSun, ok := bodygraph.Find(design, bodygraph.Sun)
	if !ok {
		return Profile{}, missingBody(LayerDesign, bodygraph.Sun)
	}
	return ProfileFor(pSun.Line, dSun.Line)
}
