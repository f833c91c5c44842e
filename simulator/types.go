// Package simulator: circuit model, operation kinds, run status, and
// the circuit-source collaborator interface.

package simulator

// Kind is the closed set of normalized operation kinds. It is a tagged
// variant matched exhaustively by the engine: the zero value is
// deliberately invalid so that an unset or foreign tag is always
// detected instead of falling through a default branch silently.
type Kind int

const (
	// KindInvalid is the zero value; it is never a legal operation.
	KindInvalid Kind = iota

	// KindUnitary is the parametrized single-qubit gate U(θ, φ, λ)
	// acting on Target.
	KindUnitary

	// KindCX is the controlled-NOT acting on (Control, Target).
	KindCX

	// KindMeasure is a measurement; it has no unitary effect and is
	// dropped with a warning.
	KindMeasure

	// KindReset is a qubit reset; same treatment as KindMeasure.
	KindReset

	// KindBarrier is a scheduling marker; recognized and ignored.
	KindBarrier
)

// String implements fmt.Stringer for diagnostics and warnings.
func (k Kind) String() string {
	switch k {
	case KindUnitary:
		return "U"
	case KindCX:
		return "CX"
	case KindMeasure:
		return "measure"
	case KindReset:
		return "reset"
	case KindBarrier:
		return "barrier"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Operation is one normalized circuit operation.
//
// Fields:
//   - Kind    — the operation tag (closed set above).
//   - Target  — target qubit index, 0-based from the least-significant
//     basis bit. Used by every kind except barriers.
//   - Control — control qubit index; meaningful for KindCX only.
//   - Theta, Phi, Lambda — the three real parameters of KindUnitary.
type Operation struct {
	Kind    Kind
	Target  int
	Control int
	Theta   float64
	Phi     float64
	Lambda  float64
}

// Circuit is the engine's input: a total qubit count, a classical-bit
// count (carried for completeness, unused by unitary simulation), and
// the flat, ordered operation list produced by the front-end unroller.
type Circuit struct {
	Qubits int
	Cbits  int
	Ops    []Operation
}

// Source is the dependency-injected front-end collaborator: anything
// that can produce a normalized circuit. The engine treats it purely as
// a data source — no parsing, no unrolling, no hidden global state.
type Source interface {
	Circuit() (*Circuit, error)
}

// StaticSource is a Source wrapping an in-memory circuit.
type StaticSource struct {
	circuit *Circuit
}

// NewStaticSource wraps an already-built circuit as a Source.
func NewStaticSource(c *Circuit) *StaticSource {
	return &StaticSource{circuit: c}
}

// Circuit implements Source.
func (s *StaticSource) Circuit() (*Circuit, error) {
	if s == nil || s.circuit == nil {
		return nil, ErrBadCircuit
	}

	return s.circuit, nil
}

// Status is the terminal state of a run.
type Status int

const (
	// StatusDone marks a successful run: every operation applied, the
	// final unitary available.
	StatusDone Status = iota

	// StatusError marks a terminated run: an unrecognized operation was
	// encountered and the partial unitary was discarded.
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusDone {
		return "DONE"
	}

	return "ERROR"
}

// Result is the engine's output.
//
// On StatusDone, Unitary holds the final 2^n × 2^n matrix as a flat
// row-major slice of length 4^n. On StatusError, Unitary is nil: a
// partially composed matrix is garbage, not a best effort.
type Result struct {
	Status   Status
	Qubits   int
	Unitary  []complex128
	Warnings []string
}
