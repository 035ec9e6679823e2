package tensor

import (
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

type (
	m2x2 = shape.S2[shape.D2, shape.D2]
	m2x3 = shape.S2[shape.D2, shape.D3]
	m3x2 = shape.S2[shape.D3, shape.D2]
	m3x3 = shape.S2[shape.D3, shape.D3]
)

func TestFromSlice(t *testing.T) {
	a, err := FromSlice[m2x3]([]float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, 6, a.OptChunkSize())
	assert.Equal(t, Contiguous, a.Order())
	assert.Equal(t, float32(6), a.At(1, 2))
	assert.Equal(t, Float32, a.DType())
	assert.False(t, a.IsView())
}

func TestFromSliceCopies(t *testing.T) {
	data := []int{1, 2, 3, 4}
	a := MustFromSlice[m2x2](data)
	data[0] = 100
	assert.Equal(t, 1, a.At(0, 0))
}

func TestAllocRejectsInvalidDims(t *testing.T) {
	for _, dims := range [][]int{{0}, {-3}, {shape.Dynamic}} {
		err := exceptions.TryCatch[error](func() { Alloc[float32, shape.S1[shape.Dyn]](dims) })
		require.Error(t, err, "dims %v", dims)
		assert.Contains(t, err.Error(), fmt.Sprint(dims))
		assert.Contains(t, err.Error(), "[?]")
	}

	err := exceptions.TryCatch[error](func() { FullDyn[int, shape.S2[shape.Dyn, shape.D2]](1, []int{2, 0}) })
	require.Error(t, err)

	_, err = Borrow[shape.S1[shape.Dyn]]([]int{}, 0)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSliceErrors(t *testing.T) {
	_, err := FromSlice[m2x2]([]float32{1, 2, 3})
	require.ErrorIs(t, err, ErrElementCount)
	assert.Contains(t, err.Error(), "[2 2]")

	_, err = FromSlice[shape.S2[shape.Dyn, shape.Dyn]]([]float32{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrAmbiguousShape)

	_, err = FromSlice[shape.S2[shape.Dyn, shape.D3]]([]float32{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrElementCount)

	_, err = FromSliceShape[m2x2]([]float32{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.ErrorIs(t, err, ErrIncompatibleShape)

	_, err = FromSliceShape[shape.S2[shape.Dyn, shape.Dyn]]([]float32{}, []int{0, 3})
	require.ErrorIs(t, err, ErrInvalidShape)

	err = exceptions.TryCatch[error](func() { MustFromSlice[m2x2]([]int{1}) })
	require.Error(t, err)
}

func TestFromSliceDynamic(t *testing.T) {
	a, err := FromSlice[shape.S2[shape.Dyn, shape.D3]]([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, shape.Dims{shape.Dynamic, 3}, a.Dims())

	b, err := FromSliceShape[shape.S2[shape.Dyn, shape.Dyn]]([]float64{1, 2, 3, 4, 5, 6}, []int{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, b.Shape())
}

func TestConstructors(t *testing.T) {
	z := Zeros[float32, m2x3]()
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, z.ToSlice())

	f := Full[int, m2x2](7)
	assert.Equal(t, []int{7, 7, 7, 7}, f.ToSlice())

	o := Ones[float64, shape.S1[shape.D3]]()
	assert.Equal(t, []float64{1, 1, 1}, o.ToSlice())

	eye := Eye[float32, shape.D3]()
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, eye.ToSlice())

	r := Arange[int, m2x3]()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, r.ToSlice())

	d := Alloc[float32, shape.S2[shape.Dyn, shape.D2]]([]int{4, 2})
	assert.Equal(t, []int{4, 2}, d.Shape())

	fd := FullDyn[int, shape.S1[shape.Dyn]](3, []int{2})
	assert.Equal(t, []int{3, 3}, fd.ToSlice())

	err := exceptions.TryCatch[error](func() { Zeros[float32, shape.S1[shape.Dyn]]() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamic")
}

func TestPolicyPropagation(t *testing.T) {
	a := Ones[float32, m2x2](WithPolicy(layout.StackFirstPolicy{}))
	_, inline := a.Layout().(*layout.StackLayout[float32])
	assert.True(t, inline)

	b := Ones[float32, m2x2]()
	c := a.Add(b)
	assert.Equal(t, "stack-first", c.Policy().String())
	_, inline = c.Layout().(*layout.StackLayout[float32])
	assert.True(t, inline, "result follows the left operand's policy")

	d := b.Add(a)
	_, heap := d.Layout().(*layout.HeapLayout[float32])
	assert.True(t, heap)

	dyn := Alloc[float32, shape.S1[shape.Dyn]]([]int{4}, WithPolicy(layout.StackFirstPolicy{}))
	_, heap = dyn.Layout().(*layout.HeapLayout[float32])
	assert.True(t, heap, "dynamic shapes always go to the heap")

	// Re-targeting b makes its results inline; b itself stays on the heap.
	e := b.WithPolicy(layout.StackFirstPolicy{}).Add(a)
	assert.Equal(t, "stack-first", b.Policy().String())
	_, heap = b.Layout().(*layout.HeapLayout[float32])
	assert.True(t, heap)
	_, inline = e.Layout().(*layout.StackLayout[float32])
	assert.True(t, inline)
}

func TestBorrow(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	v, err := Borrow[m2x2](data)
	require.NoError(t, err)
	assert.True(t, v.IsView())
	data[3] = 40
	assert.Equal(t, float32(40), v.At(1, 1))

	_, err = Borrow[m2x2](data[:3])
	require.ErrorIs(t, err, ErrElementCount)

	_, err = Borrow[shape.S1[shape.Dyn]](data)
	require.ErrorIs(t, err, ErrAmbiguousShape)

	dv, err := Borrow[shape.S1[shape.Dyn]](data, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, dv.NumElements())

	err = exceptions.TryCatch[error](func() { v.Set(0, 0, 0) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owned tensor")
}

func TestCloneAndAsContiguous(t *testing.T) {
	a := MustFromSlice[m2x3]([]int{1, 2, 3, 4, 5, 6})
	b := a.Clone()
	b.Set(10, 0, 0)
	assert.Equal(t, 1, a.At(0, 0))

	tr := Transpose2(a)
	c := tr.Clone()
	assert.True(t, c.IsView())
	assert.Equal(t, tr.Strides(), c.Strides())

	contig := tr.AsContiguous()
	assert.False(t, contig.IsView())
	assert.Equal(t, Contiguous, contig.Order())
	assert.Equal(t, []int{2, 1}, contig.Strides())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, contig.Data())
}

func TestSetAndItem(t *testing.T) {
	a := Zeros[float64, m2x2]()
	a.Set(3, 1, 0)
	assert.Equal(t, 3.0, a.At(1, 0))

	s := MustFromSlice[shape.S0]([]float64{42})
	assert.Equal(t, 42.0, s.Item())

	err := exceptions.TryCatch[error](func() { a.Item() })
	require.Error(t, err)
	err = exceptions.TryCatch[error](func() { a.At(2, 0) })
	require.Error(t, err)
}

func TestString(t *testing.T) {
	a := MustFromSlice[m2x2]([]float32{1, 2, 3, 4})
	assert.Equal(t, "Tensor[float32][2 2](contiguous, default) [1 2 3 4]", a.String())
}

func TestConvert(t *testing.T) {
	a := MustFromSlice[m2x2]([]float64{1.5, 2.5, -3.5, 4})
	b := Convert[int](a)
	assert.Equal(t, []int{1, 2, -3, 4}, b.ToSlice())
}
