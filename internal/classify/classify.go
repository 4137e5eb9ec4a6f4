package classify

import (
	"errors"
	"time"

	"blueprint/internal/bodygraph"
	"blueprint/internal/solar"
)

// Input is everything a classification needs. Design longitudes must be for
// the instant solar.DesignInstant derives from Birth.
type Input struct {
	Birth       time.Time
	Personality bodygraph.Longitudes
	Design      bodygraph.Longitudes

	// UsedFallbackDesignPositions marks design longitudes that came from the
	// linear approximation rather than an ephemeris.
	UsedFallbackDesignPositions bool
}

// Gates holds both activation layers.
type Gates struct {
	Personality []bodygraph.Activation `json:"personality"`
	Design      []bodygraph.Activation `json:"design"`
}

// ChannelRef is a completed channel in a result.
type ChannelRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Metadata records the instants and constants a result was derived from.
type Metadata struct {
	PersonalityTime             time.Time `json:"personalityTime"`
	DesignTime                  time.Time `json:"designTime"`
	OffsetDays                  float64   `json:"offsetDays"`
	SolarMotion                 float64   `json:"solarMotion"`
	UsedFallbackDesignPositions bool      `json:"usedFallbackDesignPositions"`
}

// Result is a complete classification. It is built once and never mutated.
type Result struct {
	Type              Type              `json:"type"`
	Authority         Authority         `json:"authority"`
	Profile           string            `json:"profile"`
	ProfileLines      Profile           `json:"profileLines"`
	Definition        Definition        `json:"definition"`
	Centers           bodygraph.Centers `json:"centers"`
	Channels          []ChannelRef      `json:"channels"`
	Gates             Gates             `json:"gates"`
	Strategy          string            `json:"strategy"`
	NotSelfTheme      string            `json:"notSelfTheme"`
	Signature         string            `json:"signature"`
	LifePurpose       string            `json:"lifePurpose"`
	AuthorityGuidance string            `json:"authorityGuidance"`
	Cross             Cross             `json:"cross"`
	IncarnationCross  string            `json:"incarnationCross"`
	Metadata          Metadata          `json:"metadata"`
}

// Classify runs the whole pipeline for one chart.
func Classify(in Input) (*Result, error) {
	offset, err := solar.DesignInstant(in.Birth)
	if err != nil {
		kind := KindInvalidInput
		if errors.Is(err, solar.ErrInvalidOffset) {
			kind = KindInvalidOffset
		}
		return nil, &ClassificationError{Kind: kind, Err: err}
	}

	personality := bodygraph.Activate(in.Personality)
	design := bodygraph.Activate(in.Design)

	profile, err := ProfileOf(personality, design)
	if err != nil {
		return nil, err
	}
	cross, err := CrossOf(personality, design, profile)
	if err != nil {
		return nil, err
	}

	centers := bodygraph.Define(personality, design)
	graph := bodygraph.NewGraph(centers)

	typ := TypeOf(centers, graph)
	authority := AuthorityOf(centers)
	narrative := NarrativeFor(typ)

	completed := bodygraph.CompletedChannels(personality, design)
	channels := make([]ChannelRef, 0, len(completed))
	for _, ch := range completed {
		channels = append(channels, ChannelRef{Key: ch.Key(), Name: ch.Name})
	}

	return &Result{
		Type:              typ,
		Authority:         authority,
		Profile:           profile.String(),
		ProfileLines:      profile,
		Definition:        DefinitionOf(graph),
		Centers:           centers,
		Channels:          channels,
		Gates:             Gates{Personality: personality, Design: design},
		Strategy:          narrative.Strategy,
		NotSelfTheme:      narrative.NotSelfTheme,
		Signature:         narrative.Signature,
		LifePurpose:       narrative.LifePurpose,
		AuthorityGuidance: AuthorityGuidance(authority),
		Cross:             cross,
		IncarnationCross:  cross.String(),
		Metadata: Metadata{
			PersonalityTime:             offset.Birth,
			DesignTime:                  offset.Design,
			OffsetDays:                  offset.Days,
			SolarMotion:                 offset.Motion,
			UsedFallbackDesignPositions: in.UsedFallbackDesignPositions,
		},
	}, nil
}
