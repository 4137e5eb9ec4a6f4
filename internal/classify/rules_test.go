package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint/internal/bodygraph"
)

func chartOf(gates ...int) (bodygraph.Centers, *bodygraph.Graph) {
	acts := make([]bodygraph.Activation, 0, len(gates))
	for _, g := range gates {
		acts = append(acts, bodygraph.Activation{Planet: bodygraph.Sun, Gate: g, Line: 1})
	}
	cs := bodygraph.Define(acts, nil)
	return cs, bodygraph.NewGraph(cs)
}

func TestRules(t *testing.T) {
	tests := []struct {
		name       string
		gates      []int
		typ        Type
		authority  Authority
		definition Definition
	}{
		{"empty chart", nil, Reflector, Lunar, NoDefinition},
		{"open gates in every center", []int{61, 4, 62, 1, 21, 5, 48, 36, 53}, Reflector, Lunar, NoDefinition},
		{"heart to throat", []int{21, 45}, Manifestor, Ego, SingleDefinition},
		{"solar plexus to throat", []int{12, 22}, Manifestor, Emotional, SingleDefinition},
		{"root to throat through spleen", []int{18, 58, 16, 48}, Manifestor, Splenic, SingleDefinition},
		{"throat without motor", []int{1, 8}, Projector, SelfProjected, SingleDefinition},
		{"sacral to throat", []int{20, 34}, ManifestingGenerator, SacralAuthority, SingleDefinition},
		{"sacral to throat through g", []int{5, 15, 1, 8}, ManifestingGenerator, SacralAuthority, SingleDefinition},
		{"sacral and heart both to throat", []int{20, 34, 21, 45}, ManifestingGenerator, SacralAuthority, SingleDefinition},
		{"sacral and solar plexus both to throat", []int{20, 34, 12, 22, 18, 58}, ManifestingGenerator, Emotional, SplitDefinition},
		{"sacral and throat apart", []int{3, 60, 1, 8}, Generator, SacralAuthority, SplitDefinition},
		{"motor throat with separate sacral", []int{21, 45, 3, 60}, Generator, SacralAuthority, SplitDefinition},
		{"sacral only", []int{3, 60}, Generator, SacralAuthority, SingleDefinition},
		{"emotional generator", []int{6, 59}, Generator, Emotional, SingleDefinition},
		{"head and ajna", []int{47, 64}, Projector, Mental, SingleDefinition},
		{"spleen over heart", []int{18, 58, 25, 51}, Projector, Splenic, SplitDefinition},
		{"triple split", []int{47, 64, 18, 58, 1, 8}, Projector, Splenic, TripleSplit},
		{"quadruple split", []int{47, 64, 18, 58, 1, 8, 6, 59}, Generator, Emotional, QuadrupleSplit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, g := chartOf(tt.gates...)
			assert.Equal(t, tt.typ, TypeOf(cs, g), "type")
			assert.Equal(t, tt.authority, AuthorityOf(cs), "authority")
			assert.Equal(t, tt.definition, DefinitionOf(g), "definition")
		})
	}
}

func TestTypeOf_ReflectorOnlyWhenNothingDefined(t *testing.T) {
	for _, ch := range bodygraph.Channels {
		cs, g := chartOf(ch.GateA, ch.GateB)
		assert.NotEqual(t, Reflector, TypeOf(cs, g), "channel %s", ch.Key())
		assert.NotEqual(t, Lunar, AuthorityOf(cs), "channel %s", ch.Key())
	}
}

func TestAuthorityOf_Priority(t *testing.T) {
	// Every guard center defined at once: the first guard wins.
	cs, _ := chartOf(6, 59, 18, 58, 25, 51, 47, 64, 1, 8)
	require.True(t, cs.IsDefined(bodygraph.SolarPlexus))
	require.True(t, cs.IsDefined(bodygraph.Sacral))
	assert.Equal(t, Emotional, AuthorityOf(cs))
}

func TestEnums_Text(t *testing.T) {
	b, err := ManifestingGenerator.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Manifesting Generator", string(b))

	b, err = SelfProjected.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Self-Projected", string(b))

	b, err = TripleSplit.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Triple Split", string(b))

	_, err = Type(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "authority(-1)", Authority(-1).String())
}

func TestNarrativeFor(t *testing.T) {
	tests := []struct {
		typ       Type
		strategy  string
		notSelf   string
		signature string
	}{
		{Generator, "Wait to respond", "Frustration", "Satisfaction"},
		{ManifestingGenerator, "Wait to respond, then inform", "Frustration and Anger", "Satisfaction"},
		{Manifestor, "Inform before acting", "Anger", "Peace"},
		{Projector, "Wait for the invitation", "Bitterness", "Success"},
		{Reflector, "Wait a lunar cycle", "Disappointment", "Surprise"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			n := NarrativeFor(tt.typ)
			assert.Equal(t, tt.strategy, n.Strategy)
			assert.Equal(t, tt.notSelf, n.NotSelfTheme)
			assert.Equal(t, tt.signature, n.Signature)
			assert.NotEmpty(t, n.LifePurpose)
		})
	}
	assert.Equal(t, "Finding satisfaction through response", NarrativeFor(Generator).LifePurpose)
	assert.Equal(t, Narrative{}, NarrativeFor(Type(99)))

	for a := Emotional; a <= Lunar; a++ {
		assert.NotEmpty(t, AuthorityGuidance(a), a.String())
	}
	assert.Empty(t, AuthorityGuidance(Authority(99)))
}
