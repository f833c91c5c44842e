// Package simulator - decoding of the backend-circuit JSON document.
//
// The front-end unroller emits circuits in a small JSON shape:
//
//	{
//	  "number_of_qubits": 8,
//	  "number_of_cbits": 5,
//	  "number_of_operations": 2,
//	  "qasm": [
//	    {"name": "U", "theta": 1.5707963267948966, "phi": 0.0,
//	     "lambda": 3.141592653589793, "qubit_indices": [3]},
//	    {"name": "CX", "qubit_indices": [3, 4]}
//	  ]
//	}
//
// ParseCircuit turns that document into a Circuit. Missing or malformed
// counts are construction failures; an unknown operation name maps to
// KindInvalid so that the engine — not the decoder — reports it as a
// terminal run status, exactly like any other unrecognized kind.

package simulator

import (
	"encoding/json"
	"fmt"
)

// jsonCircuit mirrors the wire document.
type jsonCircuit struct {
	Qubits *int            `json:"number_of_qubits"`
	Cbits  int             `json:"number_of_cbits"`
	OpsLen *int            `json:"number_of_operations"`
	Qasm   []jsonOperation `json:"qasm"`
}

// jsonOperation mirrors one qasm entry.
type jsonOperation struct {
	Name         string  `json:"name"`
	Theta        float64 `json:"theta"`
	Phi          float64 `json:"phi"`
	Lambda       float64 `json:"lambda"`
	QubitIndices []int   `json:"qubit_indices"`
}

// ParseCircuit decodes a backend-circuit JSON document into a Circuit.
//
// Validation performed here (construction-error class):
//   - number_of_qubits present and ≥ 1;
//   - number_of_cbits ≥ 0;
//   - number_of_operations, when present, equal to len(qasm);
//   - each recognized operation carries the qubit indices its kind
//     needs (one for U/measure/reset, two for CX).
//
// Qubit-range checks belong to the engine (New), and unknown names are
// preserved as KindInvalid for the engine to reject at run time.
func ParseCircuit(data []byte) (*Circuit, error) {
	var doc jsonCircuit
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCircuit, err)
	}

	if doc.Qubits == nil || *doc.Qubits < 1 {
		return nil, fmt.Errorf("number_of_qubits: %w", ErrBadCircuit)
	}
	if doc.Cbits < 0 {
		return nil, fmt.Errorf("number_of_cbits: %w", ErrBadCircuit)
	}
	if doc.OpsLen != nil && *doc.OpsLen != len(doc.Qasm) {
		return nil, fmt.Errorf("number_of_operations %d, qasm entries %d: %w",
			*doc.OpsLen, len(doc.Qasm), ErrBadCircuit)
	}

	circuit := &Circuit{
		Qubits: *doc.Qubits,
		Cbits:  doc.Cbits,
		Ops:    make([]Operation, 0, len(doc.Qasm)),
	}

	for i, entry := range doc.Qasm {
		op, err := entry.toOperation()
		if err != nil {
			return nil, fmt.Errorf("qasm entry %d (%q): %w", i, entry.Name, err)
		}
		circuit.Ops = append(circuit.Ops, op)
	}

	return circuit, nil
}

// toOperation maps one qasm entry to a normalized Operation.
func (e jsonOperation) toOperation() (Operation, error) {
	switch e.Name {
	case "U":
		if len(e.QubitIndices) < 1 {
			return Operation{}, fmt.Errorf("missing qubit index: %w", ErrBadCircuit)
		}

		return Operation{
			Kind:   KindUnitary,
			Target: e.QubitIndices[0],
			Theta:  e.Theta,
			Phi:    e.Phi,
			Lambda: e.Lambda,
		}, nil
	case "CX":
		if len(e.QubitIndices) < 2 {
			return Operation{}, fmt.Errorf("missing qubit indices: %w", ErrBadCircuit)
		}

		return Operation{
			Kind:    KindCX,
			Control: e.QubitIndices[0],
			Target:  e.QubitIndices[1],
		}, nil
	case "measure":
		if len(e.QubitIndices) < 1 {
			return Operation{}, fmt.Errorf("missing qubit index: %w", ErrBadCircuit)
		}

		return Operation{Kind: KindMeasure, Target: e.QubitIndices[0]}, nil
	case "reset":
		if len(e.QubitIndices) < 1 {
			return Operation{}, fmt.Errorf("missing qubit index: %w", ErrBadCircuit)
		}

		return Operation{Kind: KindReset, Target: e.QubitIndices[0]}, nil
	case "barrier":
		return Operation{Kind: KindBarrier}, nil
	default:
		// Unknown name: the engine reports it as StatusError.
		return Operation{Kind: KindInvalid}, nil
	}
}
