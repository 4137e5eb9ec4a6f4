package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"

	"blueprint/internal/bodygraph"
)

// derivedFactLimit caps evaluation; a nine-center graph derives far fewer.
const derivedFactLimit = 10000

// Report is what the Datalog program derived and where it disagrees with the
// supplied center states.
type Report struct {
	Defined        []bodygraph.Center `json:"defined"`
	Channels       []string           `json:"channels"`
	Components     int                `json:"components"`
	ThroatToMotor  bool               `json:"throatToMotor"`
	SacralToThroat bool               `json:"sacralToThroat"`
	Mismatches     []string           `json:"mismatches,omitempty"`
}

// OK reports whether both derivations agree.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Check evaluates the audit program over both activation layers and compares
// the result with centers.
func Check(personality, design []bodygraph.Activation, centers bodygraph.Centers) (*Report, error) {
	info, err := program()
	if err != nil {
		return nil, err
	}

	store := factstore.NewSimpleInMemoryStore()
	if err := loadFacts(store, personality, design); err != nil {
		return nil, err
	}
	if _, err := engine.EvalProgramWithStats(info, store, engine.WithCreatedFactLimit(derivedFactLimit)); err != nil {
		return nil, fmt.Errorf("failed to evaluate audit program: %w", err)
	}

	derived, err := readDerived(store)
	if err != nil {
		return nil, err
	}
	report := derived.report()
	compare(report, centers)
	return report, nil
}

func loadFacts(store factstore.FactStore, personality, design []bodygraph.Activation) error {
	for gate := range bodygraph.GateSet(personality, design) {
		store.Add(ast.NewAtom("gate_active", ast.Number(int64(gate))))
	}
	for _, ch := range bodygraph.Channels {
		a, err := centerName(ch.Centers[0])
		if err != nil {
			return err
		}
		b, err := centerName(ch.Centers[1])
		if err != nil {
			return err
		}
		store.Add(ast.NewAtom("channel",
			ast.String(ch.Key()),
			ast.Number(int64(ch.GateA)),
			ast.Number(int64(ch.GateB)),
			a, b))
	}
	for _, m := range bodygraph.Motors {
		name, err := centerName(m)
		if err != nil {
			return err
		}
		store.Add(ast.NewAtom("motor", name))
	}
	return nil
}

func centerName(c bodygraph.Center) (ast.Constant, error) {
	name, err := ast.Name("/" + c.String())
	if err != nil {
		return ast.Constant{}, fmt.Errorf("center %s: %w", c, err)
	}
	return name, nil
}

func centerOf(term ast.BaseTerm) (bodygraph.Center, error) {
	c, ok := term.(ast.Constant)
	if !ok || c.Type != ast.NameType {
		return 0, fmt.Errorf("expected center name, got %v", term)
	}
	return bodygraph.ParseCenter(strings.TrimPrefix(c.Symbol, "/"))
}

type derivation struct {
	defined     [bodygraph.CenterCount]bool
	channels    []string
	reaches     [bodygraph.CenterCount][bodygraph.CenterCount]bool
	throatMotor bool
}

func readDerived(store factstore.FactStore) (*derivation, error) {
	d := &derivation{}

	err := store.GetFacts(ast.NewQuery(predDefined), func(atom ast.Atom) error {
		c, err := centerOf(atom.Args[0])
		if err != nil {
			return err
		}
		d.defined[c] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read defined: %w", err)
	}

	err = store.GetFacts(ast.NewQuery(predComplete), func(atom ast.Atom) error {
		key, ok := atom.Args[0].(ast.Constant)
		if !ok || key.Type != ast.StringType {
			return fmt.Errorf("expected channel key, got %v", atom.Args[0])
		}
		d.channels = append(d.channels, key.Symbol)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read complete: %w", err)
	}

	err = store.GetFacts(ast.NewQuery(predReaches), func(atom ast.Atom) error {
		from, err := centerOf(atom.Args[0])
		if err != nil {
			return err
		}
		to, err := centerOf(atom.Args[1])
		if err != nil {
			return err
		}
		d.reaches[from][to] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read reaches: %w", err)
	}

	err = store.GetFacts(ast.NewQuery(predThroatMotor), func(ast.Atom) error {
		d.throatMotor = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read throat_motor: %w", err)
	}
	return d, nil
}

func (d *derivation) report() *Report {
	r := &Report{
		Channels:       d.channels,
		ThroatToMotor:  d.throatMotor,
		SacralToThroat: d.reaches[bodygraph.Sacral][bodygraph.Throat],
	}
	sort.Strings(r.Channels)

	// A center starts a new component when no earlier center reaches it.
	for i, c := range bodygraph.AllCenters {
		if !d.defined[c] {
			continue
		}
		r.Defined = append(r.Defined, c)
		first := true
		for _, prev := range bodygraph.AllCenters[:i] {
			if d.reaches[prev][c] {
				first = false
				break
			}
		}
		if first {
			r.Components++
		}
	}
	return r
}

func compare(r *Report, centers bodygraph.Centers) {
	addf := func(format string, args ...interface{}) {
		r.Mismatches = append(r.Mismatches, fmt.Sprintf(format, args...))
	}

	var derived [bodygraph.CenterCount]bool
	for _, c := range r.Defined {
		derived[c] = true
	}
	for _, c := range bodygraph.AllCenters {
		if got := centers.IsDefined(c); got != derived[c] {
			addf("center %s: defined=%t, datalog says %t", c, got, derived[c])
		}
	}

	var keys []string
	seen := make(map[string]bool)
	for _, c := range bodygraph.AllCenters {
		for _, k := range centers.Get(c).Channels {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	if strings.Join(keys, ",") != strings.Join(r.Channels, ",") {
		addf("channels: %v, datalog says %v", keys, r.Channels)
	}

	g := bodygraph.NewGraph(centers)
	if got := g.Reachable(bodygraph.Throat, bodygraph.Motors[:]...); got != r.ThroatToMotor {
		addf("throat reaches motor: %t, datalog says %t", got, r.ThroatToMotor)
	}
	if got := g.Reachable(bodygraph.Sacral, bodygraph.Throat); got != r.SacralToThroat {
		addf("sacral reaches throat: %t, datalog says %t", got, r.SacralToThroat)
	}
	if got := g.Components(); got != r.Components {
		addf("components: %d, datalog says %d", got, r.Components)
	}
}
