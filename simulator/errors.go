// Package simulator: sentinel error set.
// All construction and run failures surface as these sentinels (wrapped
// with context where useful) and tests match them via errors.Is.
// Panics are reserved for documented programmer errors (InsertTwoBits
// with equal positions).

package simulator

import "errors"

var (
	// ErrNilSource indicates that New was given a nil circuit source.
	ErrNilSource = errors.New("simulator: nil circuit source")

	// ErrBadCircuit indicates a malformed circuit: missing or
	// non-positive qubit count, nil circuit, or negative counts. No
	// engine is constructed.
	ErrBadCircuit = errors.New("simulator: malformed circuit")

	// ErrTooManyQubits indicates the circuit exceeds the configured
	// qubit limit; the 4^n working matrix would not be allocatable.
	ErrTooManyQubits = errors.New("simulator: qubit count exceeds limit")

	// ErrQubitOutOfRange indicates an operation referencing a qubit
	// index outside [0, qubits), or a controlled operation whose control
	// equals its target.
	ErrQubitOutOfRange = errors.New("simulator: qubit index out of range")

	// ErrUnsupportedOp indicates an operation kind outside the
	// recognized set; the run terminates with StatusError.
	ErrUnsupportedOp = errors.New("simulator: unsupported operation kind")
)
