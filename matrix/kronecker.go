// Package matrix - Kronecker (tensor) product.

package matrix

// Kronecker computes the tensor product m ⊗ other of size
// m.Size()·other.Size(), in the canonical basis ordering
// q_{n-1} ⊗ … ⊗ q_1 ⊗ q_0:
//
//	(m ⊗ other)[r1·|B|+r2, c1·|B|+c2] = m[r1,c1] · other[r2,c2]
//
// Every one of the four index combinations is visited exactly once,
// columns before rows; the simulator's bit-insertion maps encode the
// same ordering, and the two are cross-checked by tests.
// Complexity: O((|A|·|B|)²) time and space.
func (m *Dense[T]) Kronecker(other *Dense[T]) (*Dense[T], error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}

	na, nb := m.n, other.n
	out := &Dense[T]{n: na * nb, data: make([]T, na*nb*na*nb)}

	for c1 := 0; c1 < na; c1++ {
		for c2 := 0; c2 < nb; c2++ {
			col := c1*nb + c2
			for r1 := 0; r1 < na; r1++ {
				coeff := m.at(r1, c1)
				for r2 := 0; r2 < nb; r2++ {
					out.set(r1*nb+r2, col, coeff*other.at(r2, c2))
				}
			}
		}
	}

	return out, nil
}
