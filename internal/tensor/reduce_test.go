package tensor

import (
	"math/rand"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/shapegrad/internal/shape"
)

func TestSumIdentityRows(t *testing.T) {
	eye := Eye[float32, shape.D3]()
	cols := Sum[shape.S2[shape.D3, shape.D1]](eye, 1)
	assert.Equal(t, []int{3, 1}, cols.Shape())
	assert.Equal(t, []float32{1, 1, 1}, cols.ToSlice())
}

func TestSumAxes(t *testing.T) {
	a := Arange[int, shape.S3[shape.D2, shape.D3, shape.D4]]()

	s0 := Sum[shape.S3[shape.D1, shape.D3, shape.D4]](a, 0)
	s1 := Sum[shape.S3[shape.D2, shape.D1, shape.D4]](a, 1)
	s2 := Sum[shape.S3[shape.D2, shape.D3, shape.D1]](a, 2)

	want0 := make([]int, 12)
	want1 := make([]int, 8)
	want2 := make([]int, 6)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				v := a.At(i, j, k)
				want0[j*4+k] += v
				want1[i*4+k] += v
				want2[i*3+j] += v
			}
		}
	}
	assert.Equal(t, want0, s0.ToSlice())
	assert.Equal(t, want1, s1.ToSlice())
	assert.Equal(t, want2, s2.ToSlice())
}

func TestReduceOnViews(t *testing.T) {
	a := MustFromSlice[m2x3]([]int{1, 2, 3, 4, 5, 6})
	tr := Transpose2(a) // [[1 4] [2 5] [3 6]]

	rows := Sum[shape.S2[shape.D3, shape.D1]](tr, 1)
	assert.Equal(t, []int{5, 7, 9}, rows.ToSlice())
	cols := Sum[shape.S2[shape.D1, shape.D2]](tr, 0)
	assert.Equal(t, []int{6, 15}, cols.ToSlice())

	row := MustFromSlice[shape.S2[shape.D1, shape.D3]]([]int{1, 2, 3})
	b := Broadcast[shape.S2[shape.D4, shape.D3]](row)
	assert.Equal(t, []int{4, 8, 12}, Sum[shape.S2[shape.D1, shape.D3]](b, 0).ToSlice())
}

func TestReduceOperators(t *testing.T) {
	a := MustFromSlice[m2x3]([]float64{3, -1, 2, 5, 4, -6})
	assert.Equal(t, []float64{5, 4, 2}, ReduceMax[shape.S2[shape.D1, shape.D3]](a, 0).ToSlice())
	assert.Equal(t, []float64{-1, -6}, ReduceMin[shape.S2[shape.D2, shape.D1]](a, 1).ToSlice())
	assert.Equal(t, []float64{-6, -120}, Prod[shape.S2[shape.D2, shape.D1]](a, 1).ToSlice())
	assert.Equal(t, []float64{4, 1.5, -2}, Mean[shape.S2[shape.D1, shape.D3]](a, 0).ToSlice())
	assert.Equal(t, 7.0, a.SumAll())
}

func TestReduceDynamic(t *testing.T) {
	a := MustFromSlice[shape.S2[shape.Dyn, shape.D2]]([]int{1, 2, 3, 4, 5, 6})
	s := Sum[shape.S2[shape.D1, shape.D2]](a, 0)
	assert.Equal(t, []int{9, 12}, s.ToSlice())

	d := Sum[shape.S2[shape.Dyn, shape.D1]](a, 1)
	assert.Equal(t, []int{3, 1}, d.Shape())
	assert.Equal(t, []int{3, 7, 11}, d.ToSlice())
}

func TestReduceShapeMismatch(t *testing.T) {
	a := Arange[int, m2x3]()
	err := exceptions.TryCatch[error](func() { Sum[shape.S2[shape.D2, shape.D3]](a, 0) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1 3]")

	err = exceptions.TryCatch[error](func() { Sum[shape.S2[shape.D2, shape.D1]](a, 2) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestSumMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := Rand[float64, shape.S3[shape.D4, shape.D5, shape.D6]](rng)
	tr := Transpose3(a)

	s := Sum[shape.S3[shape.D6, shape.D1, shape.D4]](tr, 1)
	for i := 0; i < 6; i++ {
		for k := 0; k < 4; k++ {
			var want float64
			for j := 0; j < 5; j++ {
				want += tr.At(i, j, k)
			}
			assert.InDelta(t, want, s.At(i, 0, k), 1e-12)
		}
	}
}

func TestSumTo(t *testing.T) {
	a := Arange[float64, shape.S3[shape.D2, shape.D2, shape.D3]]()

	cols := SumTo[shape.S2[shape.D1, shape.D3]](a, 1, 3)
	assert.Equal(t, []float64{0 + 3 + 6 + 9, 1 + 4 + 7 + 10, 2 + 5 + 8 + 11}, cols.ToSlice())

	rows := SumTo[shape.S3[shape.D2, shape.D2, shape.D1]](a, 2, 2, 1)
	assert.Equal(t, []float64{3, 12, 21, 30}, rows.ToSlice())

	same := SumTo[shape.S3[shape.D2, shape.D2, shape.D3]](a, 2, 2, 3)
	assert.True(t, same.Equal(a))

	// Adjoint of broadcast: every source element is counted once per copy.
	row := MustFromSlice[shape.S2[shape.D1, shape.D3]]([]float64{1, 2, 3})
	back := SumTo[shape.S2[shape.D1, shape.D3]](Broadcast[m3x3](row), 1, 3)
	assert.Equal(t, []float64{3, 6, 9}, back.ToSlice())

	err := exceptions.TryCatch[error](func() { SumTo[shape.S1[shape.D2]](a, 2) })
	require.Error(t, err)
}
