package diversity

import (
	"errors"
	"testing"
)

func TestNewDistanceMatrix(t *testing.T) {
	ids := []string{"a", "b", "c"}
	dm, err := NewDistanceMatrix([]float64{1, 2, 3}, ids)
	if err != nil {
		t.Fatal(err)
	}

	if dm.Len() != 3 {
		t.Errorf("Len: got %d, want 3", dm.Len())
	}
	for i := 0; i < 3; i++ {
		if got := dm.At(i, i); got != 0 {
			t.Errorf("diagonal At(%d,%d): got %v, want 0", i, i, got)
		}
		for j := 0; j < 3; j++ {
			if dm.At(i, j) != dm.At(j, i) {
				t.Errorf("asymmetry at (%d,%d)", i, j)
			}
		}
	}
	if got := dm.At(0, 2); got != 2 {
		t.Errorf("At(0,2): got %v, want 2", got)
	}

	d, err := dm.Between("b", "c")
	if err != nil {
		t.Fatal(err)
	}
	if d != 3 {
		t.Errorf("Between(b,c): got %v, want 3", d)
	}
	if _, err := dm.Between("b", "nope"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown id: got %v, want ErrInvalidInput", err)
	}
}

func TestNewDistanceMatrixBadInput(t *testing.T) {
	if _, err := NewDistanceMatrix([]float64{1, 2}, []string{"a", "b", "c"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("wrong length: got %v, want ErrInvalidInput", err)
	}
	if _, err := NewDistanceMatrix([]float64{1}, []string{"a", "a"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate ids: got %v, want ErrInvalidInput", err)
	}
}

func TestNewDistanceMatrixFromSquare(t *testing.T) {
	ids := []string{"a", "b", "c"}
	square := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	dm, err := NewDistanceMatrixFromSquare(square, ids)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3}
	for i, v := range dm.Condensed() {
		if v != want[i] {
			t.Errorf("condensed[%d]: got %v, want %v", i, v, want[i])
		}
	}

	dense := dm.Dense()
	for i := range square {
		for j := range square[i] {
			if dense[i][j] != square[i][j] {
				t.Errorf("Dense[%d][%d]: got %v, want %v", i, j, dense[i][j], square[i][j])
			}
		}
	}

	asymmetric := [][]float64{
		{0, 1},
		{2, 0},
	}
	if _, err := NewDistanceMatrixFromSquare(asymmetric, []string{"a", "b"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("asymmetric: got %v, want ErrInvalidInput", err)
	}

	hotDiagonal := [][]float64{
		{1, 2},
		{2, 0},
	}
	if _, err := NewDistanceMatrixFromSquare(hotDiagonal, []string{"a", "b"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("non-zero diagonal: got %v, want ErrInvalidInput", err)
	}
}
