package classify

// Narrative is the fixed text attached to a type.
type Narrative struct {
	Strategy     string
	NotSelfTheme string
	Signature    string
	LifePurpose  string
}

var narratives = [...]Narrative{
	Reflector: {
		Strategy:     "Wait a lunar cycle",
		NotSelfTheme: "Disappointment",
		Signature:    "Surprise",
		LifePurpose:  "Finding surprise by mirroring the health of the community",
	},
	Generator: {
		Strategy:     "Wait to respond",
		NotSelfTheme: "Frustration",
		Signature:    "Satisfaction",
		LifePurpose:  "Finding satisfaction through response",
	},
	ManifestingGenerator: {
		Strategy:     "Wait to respond, then inform",
		NotSelfTheme: "Frustration and Anger",
		Signature:    "Satisfaction",
		LifePurpose:  "Finding satisfaction through responding and moving quickly",
	},
	Manifestor: {
		Strategy:     "Inform before acting",
		NotSelfTheme: "Anger",
		Signature:    "Peace",
		LifePurpose:  "Finding peace by initiating and informing others",
	},
	Projector: {
		Strategy:     "Wait for the invitation",
		NotSelfTheme: "Bitterness",
		Signature:    "Success",
		LifePurpose:  "Finding success by guiding others once recognized",
	},
}

// NarrativeFor returns the narrative of t. Unknown types get an empty value.
func NarrativeFor(t Type) Narrative {
	if t < 0 || int(t) >= len(narratives) {
		return Narrative{}
	}
	return narratives[t]
}

var guidance = [...]string{
	Emotional:       "Ride the emotional wave; decide once clarity arrives over time",
	SacralAuthority: "Trust the gut response in the moment",
	Splenic:         "Follow the quiet intuitive hit the first time it speaks",
	Ego:             "Commit only to what the will truly wants",
	SelfProjected:   "Talk it through and listen to your own voice",
	Mental:          "Discuss with trusted others; the environment brings clarity",
	Lunar:           "Take a full lunar cycle before major decisions",
}

// AuthorityGuidance returns a one-line decision guide for a.
func AuthorityGuidance(a Authority) string {
	if a < 0 || int(a) >= len(guidance) {
		return ""
	}
	return guidance[a]
}
