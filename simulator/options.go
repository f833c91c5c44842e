// Package simulator: functional configuration for the engine.
//
// Design goals (shared across the module):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical option values
//     (programmer error); circuit problems return sentinel errors.

package simulator

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultQubitLimit bounds the circuit width the engine accepts.
	// The working matrix costs O(4^n) memory (16 qubits ⇒ 2^32 complex
	// elements already at the limit of practical dense simulation), so
	// the bound is explicit instead of an eventual allocation failure.
	DefaultQubitLimit = 16
)

// Option configures a UnitarySimulator at construction time.
type Option func(*options)

// options is the internal, validated configuration state.
type options struct {
	qubitLimit int
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{qubitLimit: DefaultQubitLimit}
}

// WithQubitLimit overrides the maximum accepted qubit count.
// Panics if limit < 1: a simulator that can simulate nothing is a
// programming error, not a configuration.
func WithQubitLimit(limit int) Option {
	if limit < 1 {
		panic("simulator: WithQubitLimit requires limit >= 1")
	}

	return func(o *options) {
		o.qubitLimit = limit
	}
}
