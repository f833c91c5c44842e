// Package simulator - the unitary construction engine.

package simulator

import (
	"fmt"

	"github.com/atilag/unitary/gate"
	"github.com/atilag/unitary/matrix"
)

// UnitarySimulator folds a circuit's operation list into a single
// cumulative unitary.
//
// Lifecycle: New validates the circuit and initializes the running
// state to identity(2^n); Run applies operations 0..len in order and
// finishes in StatusDone or StatusError. The running matrix has exactly
// one mutable owner (the engine) for the duration of a run, and a
// simulator instance is single-shot: Run after completion returns the
// recorded outcome without recomputing.
type UnitarySimulator struct {
	circuit *Circuit
	qubits  int

	// state is the running unitary, identity at construction and
	// premultiplied by each enlarged gate in operation order.
	state *matrix.Dense[complex128]

	warnings []string
	result   *Result
	runErr   error
}

// New constructs an engine from the injected circuit source.
//
// Stage 1 (Fetch): pull the normalized circuit from the source.
// Stage 2 (Validate): qubit count ≥ 1 and ≤ limit, every operation's
// qubit indices in range, control ≠ target. Configuration failures
// construct no engine; they are fatal, not recoverable mid-run.
// Stage 3 (Prepare): allocate the identity running state, O(4^n).
func New(src Source, opts ...Option) (*UnitarySimulator, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	opt := defaultOptions()
	for _, o := range opts {
		o(&opt)
	}

	circuit, err := src.Circuit()
	if err != nil {
		return nil, fmt.Errorf("fetching circuit: %w", err)
	}
	if circuit == nil || circuit.Qubits < 1 || circuit.Cbits < 0 {
		return nil, ErrBadCircuit
	}
	if circuit.Qubits > opt.qubitLimit {
		return nil, fmt.Errorf("%d qubits, limit %d: %w", circuit.Qubits, opt.qubitLimit, ErrTooManyQubits)
	}

	for i, op := range circuit.Ops {
		if err := validateOp(op, circuit.Qubits); err != nil {
			return nil, fmt.Errorf("operation %d (%s): %w", i, op.Kind, err)
		}
	}

	state, err := matrix.Identity[complex128](1 << circuit.Qubits)
	if err != nil {
		return nil, err
	}

	return &UnitarySimulator{
		circuit: circuit,
		qubits:  circuit.Qubits,
		state:   state,
	}, nil
}

// validateOp checks an operation's qubit indices against the register
// width. Unrecognized kinds pass here on purpose: they are a run-time
// status, not a construction failure.
func validateOp(op Operation, qubits int) error {
	switch op.Kind {
	case KindUnitary, KindMeasure, KindReset:
		if op.Target < 0 || op.Target >= qubits {
			return fmt.Errorf("target %d: %w", op.Target, ErrQubitOutOfRange)
		}
	case KindCX:
		if op.Target < 0 || op.Target >= qubits {
			return fmt.Errorf("target %d: %w", op.Target, ErrQubitOutOfRange)
		}
		if op.Control < 0 || op.Control >= qubits {
			return fmt.Errorf("control %d: %w", op.Control, ErrQubitOutOfRange)
		}
		if op.Control == op.Target {
			return fmt.Errorf("control equals target (%d): %w", op.Target, ErrQubitOutOfRange)
		}
	case KindBarrier, KindInvalid:
		// Barriers carry no indices; invalid kinds are reported by Run.
	default:
		// Foreign tag values are likewise Run's job to report.
	}

	return nil
}

// Qubits returns the register width of the circuit under simulation.
func (us *UnitarySimulator) Qubits() int {
	return us.qubits
}

// Run applies every operation in list order and returns the terminal
// result.
//
// Composition rule: each enlarged gate premultiplies the running state
// (new = enlargement · old), because gates act on kets by left
// multiplication and circuit order composes right-to-left in operator
// notation.
//
// An unrecognized operation kind terminates the run immediately: the
// result carries StatusError and no unitary, the remaining operations
// are never applied, and the error identifies the offending index.
// Internal matrix failures (size mismatches) indicate an engine bug and
// are returned as errors without a result.
// Complexity: O(len(Ops) · 8^n) time, O(4^n) memory.
func (us *UnitarySimulator) Run() (*Result, error) {
	if us.result != nil || us.runErr != nil {
		return us.result, us.runErr
	}

	for i, op := range us.circuit.Ops {
		switch op.Kind {
		case KindUnitary:
			if err := us.applySingle(op); err != nil {
				return nil, fmt.Errorf("operation %d (U): %w", i, err)
			}
		case KindCX:
			if err := us.applyCX(op); err != nil {
				return nil, fmt.Errorf("operation %d (CX): %w", i, err)
			}
		case KindMeasure, KindReset:
			// No notion of mid-circuit collapse in a unitary simulator.
			us.warnings = append(us.warnings,
				fmt.Sprintf("operation %d (%s) dropped: no unitary effect", i, op.Kind))
		case KindBarrier:
			// Scheduling marker only.
		default:
			us.result = &Result{Status: StatusError, Qubits: us.qubits, Warnings: us.warnings}
			us.runErr = fmt.Errorf("operation %d (kind %d): %w", i, int(op.Kind), ErrUnsupportedOp)

			return us.result, us.runErr
		}
	}

	us.result = &Result{
		Status:   StatusDone,
		Qubits:   us.qubits,
		Unitary:  us.state.Data(),
		Warnings: us.warnings,
	}

	return us.result, nil
}

// applySingle enlarges U(θ, φ, λ) to full width at the target qubit and
// premultiplies the running state.
func (us *UnitarySimulator) applySingle(op Operation) error {
	enlarged, err := EnlargeSingle(gate.U(op.Theta, op.Phi, op.Lambda), op.Target, us.qubits)
	if err != nil {
		return err
	}

	next, err := enlarged.Mul(us.state)
	if err != nil {
		return err
	}
	us.state = next

	return nil
}

// applyCX enlarges the fixed controlled-NOT via bit-index remapping,
// lifts it to the complex domain, and premultiplies the running state.
func (us *UnitarySimulator) applyCX(op Operation) error {
	enlarged, err := EnlargeTwo(gate.CX(), op.Control, op.Target, us.qubits)
	if err != nil {
		return err
	}

	next, err := matrix.ToComplex(enlarged).Mul(us.state)
	if err != nil {
		return err
	}
	us.state = next

	return nil
}
