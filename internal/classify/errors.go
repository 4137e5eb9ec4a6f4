package classify

import (
	"errors"
	"fmt"

	"blueprint/internal/bodygraph"
)

// ErrMissingBody is returned when a body the rules depend on, the Sun, is
// absent from a layer.
var ErrMissingBody = errors.New("missing body")

// Kind names the failure class of a ClassificationError.
type Kind int

const (
	KindMissingBody Kind = iota + 1
	KindInvalidOffset
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindMissingBody:
		return "missing_body"
	case KindInvalidOffset:
		return "invalid_offset"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Layer identifies which activation set an error refers to.
type Layer string

const (
	LayerPersonality Layer = "personality"
	LayerDesign      Layer = "design"
)

// ClassificationError carries enough detail to render a message upstream:
// the failure class, the layer and body involved, and the wrapped cause.
type ClassificationError struct {
	Kind   Kind
	Layer  Layer
	Planet bodygraph.Planet
	Detail string
	Err    error
}

func (e *ClassificationError) Error() string {
	msg := "classify: " + e.Kind.String()
	if e.Kind == KindMissingBody {
		msg += fmt.Sprintf(": %s absent from %s layer", e.Planet, e.Layer)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func missingBody(layer Layer, p bodygraph.Planet) error {
	return &ClassificationError{Kind: KindMissingBody, Layer: layer, Planet: p, Err: ErrMissingBody}
}
