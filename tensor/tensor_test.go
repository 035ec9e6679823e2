package tensor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/shapegrad/layout"
	"github.com/born-ml/shapegrad/shape"
	"github.com/born-ml/shapegrad/tensor"
)

type mat2 = shape.S2[shape.D2, shape.D2]

func TestPublicAPI(t *testing.T) {
	a := tensor.MustFromSlice[mat2]([]float32{1, 2, 3, 4})
	b := tensor.Eye[float32, shape.D2]()

	c := tensor.MatMul(a, b)
	assert.True(t, c.Equal(a))

	rows := tensor.Sum[shape.S2[shape.D2, shape.D1]](a, 1)
	assert.Equal(t, []float32{3, 7}, rows.ToSlice())

	tr := tensor.Transpose2(a)
	assert.Equal(t, tensor.Transposed, tr.Order())
	assert.Equal(t, []float32{1, 3, 2, 4}, tr.ToSlice())
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.FromSlice[mat2]([]float32{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrElementCount)
}

func TestPublicPolicy(t *testing.T) {
	a := tensor.Ones[float64, mat2](tensor.WithPolicy(layout.StackFirstPolicy{}))
	sum := a.Add(a)
	assert.Equal(t, "stack-first", sum.Policy().String())
	assert.Equal(t, []float64{2, 2, 2, 2}, sum.ToSlice())
}

func ExampleBroadcast() {
	row := tensor.MustFromSlice[shape.S2[shape.D1, shape.D3]]([]int{1, 2, 3})
	m := tensor.Broadcast[shape.S2[shape.D2, shape.D3]](row)
	fmt.Println(m.ToSlice())
	// Output: [1 2 3 1 2 3]
}

func ExampleAs() {
	x, _ := tensor.FromSlice[shape.S1[shape.Dyn]]([]float32{1, 2, 3, 4})
	v := tensor.As[shape.S1[shape.D4]](x)
	fmt.Println(v.Add(tensor.Ones[float32, shape.S1[shape.D4]]()).ToSlice())
	// Output: [2 3 4 5]
}
