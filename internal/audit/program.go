// Package audit re-derives center definition and connectivity with a
// Datalog program evaluated by Mangle, independently of the Go rules in
// bodygraph, and reports any disagreement.
package audit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/parse"
)

// rules is the Datalog program. Channel facts carry both owning centers, so
// definition follows from gate activation alone.
const rules = `
Decl gate_active(Gate).
Decl channel(Key, GateA, GateB, CenterA, CenterB).
Decl motor(Center).

complete(Key, CA, CB) :- channel(Key, A, B, CA, CB), gate_active(A), gate_active(B).

defined(C) :- complete(_, C, _).
defined(C) :- complete(_, _, C).

linked(X, Y) :- complete(_, X, Y).
linked(X, Y) :- complete(_, Y, X).

reaches(X, Y) :- linked(X, Y).
reaches(X, Z) :- reaches(X, Y), linked(Y, Z).

throat_motor(M) :- motor(M), reaches(/throat, M).
`

var (
	programOnce sync.Once
	programInfo *analysis.ProgramInfo
	programErr  error
)

// program parses and analyzes the rules once per process.
func program() (*analysis.ProgramInfo, error) {
	programOnce.Do(func() {
		unit, err := parse.Unit(strings.NewReader(rules))
		if err != nil {
			programErr = fmt.Errorf("failed to parse audit rules: %w", err)
			return
		}
		programInfo, programErr = analysis.AnalyzeOneUnit(unit, nil)
		if programErr != nil {
			programErr = fmt.Errorf("failed to analyze audit rules: %w", programErr)
		}
	})
	return programInfo, programErr
}

var (
	predDefined     = ast.PredicateSym{Symbol: "defined", Arity: 1}
	predComplete    = ast.PredicateSym{Symbol: "complete", Arity: 3}
	predReaches     = ast.PredicateSym{Symbol: "reaches", Arity: 2}
	predThroatMotor = ast.PredicateSym{Symbol: "throat_motor", Arity: 1}
)
