package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// System is a real linear system A x = b backed by a sparse LU matrix.
// Indices are 1-based, as in the sparse package.
type System struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewSystem(size int) (*System, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid system size: %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &System{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

func (s *System) AddElement(i, j int, value float64) error {
	if i <= 0 || j <= 0 || i > s.Size || j > s.Size {
		return fmt.Errorf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, s.Size)
	}
	s.matrix.GetElement(int64(i), int64(j)).Real += value
	return nil
}

func (s *System) AddRHS(i int, value float64) error {
	if i <= 0 || i > s.Size {
		return fmt.Errorf("rhs index out of bounds (i=%d, size=%d)", i, s.Size)
	}
	s.rhs[i] += value
	return nil
}

func (s *System) Clear() {
	s.matrix.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
}

func (s *System) Solve() error {
	var err error

	err = s.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	s.solution, err = s.matrix.Solve(s.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// Solution returns the 1-based solution vector of the last Solve.
func (s *System) Solution() []float64 {
	return s.solution
}

func (s *System) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
	}
}

// SolveDense solves the square system a x = b given in 0-based dense form.
func SolveDense(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("dimension mismatch: %d rows, %d rhs entries", len(a), n)
	}

	sys, err := NewSystem(n)
	if err != nil {
		return nil, err
	}
	defer sys.Destroy()

	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err := sys.AddElement(i+1, j+1, v); err != nil {
				return nil, err
			}
		}
		if err := sys.AddRHS(i+1, b[i]); err != nil {
			return nil, err
		}
	}

	if err := sys.Solve(); err != nil {
		return nil, err
	}

	x := make([]float64, n)
	copy(x, sys.Solution()[1:n+1])
	return x, nil
}
