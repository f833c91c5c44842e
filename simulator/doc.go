// Package simulator computes the exact unitary of a quantum circuit by
// composing every normalized operation into one 2^n × 2^n complex
// matrix.
//
// 🚀 How it works
//
//	A Source hands the engine a Circuit: a qubit count plus a flat,
//	ordered list of operations already unrolled to the normalized basis
//	(parametrized single-qubit U gates and controlled-NOT). The engine
//	starts from the identity on the full Hilbert space and, for each
//	operation in list order, enlarges the gate to full width and
//	premultiplies the running unitary:
//
//	  single-qubit: identity(2^(n−q−1)) ⊗ gate ⊗ identity(2^q)
//	  two-qubit:    bit-index remapping via InsertTwoBits, no full
//	                Kronecker materialization per step
//
//	Both enlargement strategies encode the same q_{n-1} ⊗ … ⊗ q_0 basis
//	convention (qubit 0 is the least-significant basis bit); tests prove
//	they agree on small systems before the fast path is trusted.
//
// Measurement and reset operations have no unitary meaning: they are
// dropped with a recorded warning. Barriers are ignored. An
// unrecognized operation kind terminates the run with StatusError and
// no partial matrix is exposed.
//
// ⚙️ Usage:
//
//	src := simulator.NewStaticSource(&simulator.Circuit{
//	  Qubits: 2,
//	  Ops: []simulator.Operation{
//	    {Kind: simulator.KindUnitary, Target: 1,
//	     Theta: math.Pi / 2, Phi: 0, Lambda: math.Pi}, // H on q1
//	    {Kind: simulator.KindCX, Control: 1, Target: 0},
//	  },
//	})
//	us, err := simulator.New(src)
//	// ...
//	res, err := us.Run()
//	// res.Unitary is the flat row-major 2^n × 2^n matrix.
//
// Resource model: the engine is synchronous and single-threaded —
// unitary composition is non-commutative, so operations apply strictly
// in input order, and the running matrix has a single mutable owner for
// the lifetime of a run. Memory is O(4^n); the qubit limit option makes
// that bound explicit instead of hiding it.
package simulator
