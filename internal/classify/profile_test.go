package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint/internal/bodygraph"
)

func TestProfileFor_Table(t *testing.T) {
	want := map[string]string{
		"1/3": "Investigator/Martyr",
		"1/4": "Investigator/Opportunist",
		"2/4": "Hermit/Opportunist",
		"2/5": "Hermit/Heretic",
		"3/5": "Martyr/Heretic",
		"3/6": "Martyr/Role Model",
		"4/6": "Opportunist/Role Model",
		"4/1": "Opportunist/Investigator",
		"5/1": "Heretic/Investigator",
		"5/2": "Heretic/Hermit",
		"6/2": "Role Model/Hermit",
		"6/3": "Role Model/Martyr",
	}

	named := 0
	for c := 1; c <= 6; c++ {
		for u := 1; u <= 6; u++ {
			p, err := ProfileFor(c, u)
			require.NoError(t, err)
			if name, ok := want[p.Lines()]; ok {
				named++
				assert.Equal(t, name, p.Name)
				assert.True(t, p.Canonical)
			} else {
				assert.Equal(t, UniqueProfile, p.Name, p.Lines())
				assert.False(t, p.Canonical)
			}
		}
	}
	assert.Equal(t, len(want), named)
}

func TestProfile_String(t *testing.T) {
	p, err := ProfileFor(3, 5)
	require.NoError(t, err)
	assert.Equal(t, "3/5 (Martyr/Heretic)", p.String())

	p, err = ProfileFor(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "1/1 (Unique Profile Combination)", p.String())
}

func TestProfileFor_OutOfRange(t *testing.T) {
	for _, pair := range [][2]int{{0, 3}, {3, 7}, {-1, -1}} {
		_, err := ProfileFor(pair[0], pair[1])
		var cerr *ClassificationError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, KindInvalidInput, cerr.Kind)
	}
}

func TestProfileOf(t *testing.T) {
	personality := []bodygraph.Activation{
		{Planet: bodygraph.Moon, Gate: 1, Line: 6},
		{Planet: bodygraph.Sun, Gate: 12, Line: 4},
	}
	design := []bodygraph.Activation{{Planet: bodygraph.Sun, Gate: 36, Line: 6}}

	p, err := ProfileOf(personality, design)
	require.NoError(t, err)
	assert.Equal(t, "4/6 (Opportunist/Role Model)", p.String())

	_, err = ProfileOf(personality[:1], design)
	assert.ErrorIs(t, err, ErrMissingBody)
}

func TestAngleOf(t *testing.T) {
	tests := []struct {
		c, u int
		want Angle
	}{
		{1, 3, RightAngle},
		{2, 4, RightAngle},
		{3, 6, RightAngle},
		{4, 6, RightAngle},
		{4, 1, Juxtaposition},
		{5, 1, LeftAngle},
		{5, 2, LeftAngle},
		{6, 2, LeftAngle},
		{6, 3, LeftAngle},
	}
	for _, tt := range tests {
		p, err := ProfileFor(tt.c, tt.u)
		require.NoError(t, err)
		assert.Equal(t, tt.want, AngleOf(p), p.Lines())
	}
}

func TestCrossOf(t *testing.T) {
	personality := bodygraph.Activate(bodygraph.Longitudes{bodygraph.Sun: 84.02})
	design := bodygraph.Activate(bodygraph.Longitudes{bodygraph.Sun: 356.30})
	p, err := ProfileOf(personality, design)
	require.NoError(t, err)

	cross, err := CrossOf(personality, design, p)
	require.NoError(t, err)
	assert.Equal(t, Cross{Angle: RightAngle, PersonalitySun: 12, PersonalityEarth: 11, DesignSun: 36, DesignEarth: 6}, cross)
	assert.Equal(t, "Right Angle Cross (12/11 | 36/6)", cross.String())

	_, err = CrossOf(nil, design, p)
	assert.ErrorIs(t, err, ErrMissingBody)
}
