package classify

import "blueprint/internal/bodygraph"

// TypeOf applies the type rules in priority order; the first match wins.
func TypeOf(cs bodygraph.Centers, g *bodygraph.Graph) Type {
	throat := cs.IsDefined(bodygraph.Throat)
	sacral := cs.IsDefined(bodygraph.Sacral)

	switch {
	case len(cs.Defined()) == 0:
		return Reflector
	case throat && !sacral && g.Reachable(bodygraph.Throat, bodygraph.Heart, bodygraph.SolarPlexus, bodygraph.Root):
		return Manifestor
	case sacral && throat && g.Reachable(bodygraph.Sacral, bodygraph.Throat):
		return ManifestingGenerator
	case sacral:
		return Generator
	default:
		return Projector
	}
}

type authorityGuard struct {
	center    bodygraph.Center
	authority Authority
}

// authorityGuards is checked top to bottom. Several centers are usually
// defined at once and only the first hit counts.
var authorityGuards = [...]authorityGuard{
	{bodygraph.SolarPlexus, Emotional},
	{bodygraph.Sacral, SacralAuthority},
	{bodygraph.Spleen, Splenic},
	{bodygraph.Heart, Ego},
	{bodygraph.G, SelfProjected},
	{bodygraph.Ajna, Mental},
}

// AuthorityOf returns the governing authority. Charts with none of the guard
// centers defined are Lunar.
func AuthorityOf(cs bodygraph.Centers) Authority {
	for _, guard := range authorityGuards {
		if cs.IsDefined(guard.center) {
			return guard.authority
		}
	}
	return Lunar
}

// DefinitionOf maps the number of connected components to a Definition.
// Counts above four cannot occur with nine centers and are clamped.
func DefinitionOf(g *bodygraph.Graph) Definition {
	n := g.Components()
	if n > int(QuadrupleSplit) {
		return QuadrupleSplit
	}
	return Definition(n)
}
