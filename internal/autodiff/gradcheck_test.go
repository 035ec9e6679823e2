package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

type scalar = *autodiff.Variable[float64, shape.S0]

// numericGrad estimates the gradient of f at x by central differences.
func numericGrad[S shape.Shape](f func(*tensor.Tensor[float64, S]) float64, x *tensor.Tensor[float64, S]) []float64 {
	const eps = 1e-6
	data := x.ToSlice()
	grad := make([]float64, len(data))
	for i := range data {
		orig := data[i]
		data[i] = orig + eps
		up := f(tensor.MustFromSlice[S](data))
		data[i] = orig - eps
		down := f(tensor.MustFromSlice[S](data))
		data[i] = orig
		grad[i] = (up - down) / (2 * eps)
	}
	return grad
}

// autodiffGrad differentiates build at x.
func autodiffGrad[S shape.Shape](build func(*autodiff.Variable[float64, S]) scalar, x *tensor.Tensor[float64, S]) []float64 {
	g := autodiff.NewGraph()
	v := autodiff.New(g, x, true)
	build(v.Clone()).Backward(tensor.Ones[float64, shape.S0]())
	return v.Grad().ToSlice()
}

func TestUnaryGradients(t *testing.T) {
	x := tensor.MustFromSlice[vec4]([]float64{0.5, 1, 1.5, 2})

	tests := []struct {
		name    string
		op      func(*autodiff.Variable[float64, vec4]) *autodiff.Variable[float64, vec4]
		forward func(*tensor.Tensor[float64, vec4]) *tensor.Tensor[float64, vec4]
	}{
		{"exp", autodiff.Exp[float64, vec4], tensor.Exp[float64, vec4]},
		{"log", autodiff.Log[float64, vec4], tensor.Log[float64, vec4]},
		{"sin", autodiff.Sin[float64, vec4], tensor.Sin[float64, vec4]},
		{"cos", autodiff.Cos[float64, vec4], tensor.Cos[float64, vec4]},
		{"tanh", autodiff.Tanh[float64, vec4], tensor.Tanh[float64, vec4]},
		{"sqrt", autodiff.Sqrt[float64, vec4], tensor.Sqrt[float64, vec4]},
		{"sigmoid", autodiff.Sigmoid[float64, vec4], tensor.Sigmoid[float64, vec4]},
		{
			"powf",
			func(v *autodiff.Variable[float64, vec4]) *autodiff.Variable[float64, vec4] { return autodiff.Powf(v, 2.5) },
			func(in *tensor.Tensor[float64, vec4]) *tensor.Tensor[float64, vec4] { return tensor.Powf(in, 2.5) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := autodiffGrad(func(v *autodiff.Variable[float64, vec4]) scalar {
				return autodiff.SumAll(tt.op(v))
			}, x)
			want := numericGrad(func(in *tensor.Tensor[float64, vec4]) float64 {
				return tt.forward(in).SumAll()
			}, x)
			assert.InDeltaSlice(t, want, got, 1e-5)
		})
	}
}

func TestExpGradientUsesOutput(t *testing.T) {
	x := tensor.MustFromSlice[vec4]([]float64{0, 1, 2, 3})
	got := autodiffGrad(func(v *autodiff.Variable[float64, vec4]) scalar {
		return autodiff.SumAll(autodiff.Exp(v))
	}, x)
	assert.InDeltaSlice(t, tensor.Exp(x).ToSlice(), got, 1e-12)
}

func TestCompositeGradient(t *testing.T) {
	x := tensor.MustFromSlice[vec4]([]float64{0.3, -0.7, 1.1, 2})

	// sigmoid(x)·tanh(x) / (1 + x²)
	build := func(v *autodiff.Variable[float64, vec4]) scalar {
		num := autodiff.Sigmoid(v.Clone()).Mul(autodiff.Tanh(v.Clone()))
		den := v.Clone().Mul(v.Clone()).ScalAdd(1)
		return autodiff.SumAll(num.Div(den))
	}
	forward := func(in *tensor.Tensor[float64, vec4]) float64 {
		num := tensor.Sigmoid(in).Mul(tensor.Tanh(in))
		den := in.Mul(in).ScalAdd(1)
		return num.Div(den).SumAll()
	}
	assert.InDeltaSlice(t, numericGrad(forward, x), autodiffGrad(build, x), 1e-5)
}

func TestMatMulGradients(t *testing.T) {
	av := tensor.MustFromSlice[m2x3]([]float64{1, 2, 3, 4, 5, 6})
	bv := tensor.MustFromSlice[m3x2]([]float64{0.5, -1, 2, 0.25, -0.5, 1})

	g := autodiff.NewGraph()
	a := autodiff.New(g, av, true)
	b := autodiff.New(g, bv, true)
	out := autodiff.SumAll(autodiff.MatMul(a.Clone(), b.Clone()))
	out.Backward(tensor.Ones[float64, shape.S0]())

	// d/dA sum(A·B) = 1·Bᵀ: row sums of B, repeated per row of A.
	assert.InDeltaSlice(t, []float64{-0.5, 2.25, 0.5, -0.5, 2.25, 0.5}, a.Grad().ToSlice(), 1e-12)
	// d/dB sum(A·B) = Aᵀ·1: column sums of A, repeated per column of B.
	assert.InDeltaSlice(t, []float64{5, 5, 7, 7, 9, 9}, b.Grad().ToSlice(), 1e-12)

	wantA := numericGrad(func(in *tensor.Tensor[float64, m2x3]) float64 {
		return tensor.MatMul(in, bv).SumAll()
	}, av)
	assert.InDeltaSlice(t, wantA, a.Grad().ToSlice(), 1e-5)
}

func TestStructuralGradients(t *testing.T) {
	x := tensor.MustFromSlice[m2x3]([]float64{1, 2, 3, 4, 5, 6})
	weights := tensor.MustFromSlice[m3x2]([]float64{1, 2, 3, 4, 5, 6})
	w23 := tensor.MustFromSlice[m2x3]([]float64{1, 2, 3, 4, 5, 6})

	t.Run("transpose", func(t *testing.T) {
		got := autodiffGrad(func(v *autodiff.Variable[float64, m2x3]) scalar {
			c := autodiff.New(v.Graph(), weights, false)
			return autodiff.SumAll(autodiff.Transpose2(v).Mul(c))
		}, x)
		// Each element of x meets its transposed weight.
		assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, got)
	})

	t.Run("reshape", func(t *testing.T) {
		got := autodiffGrad(func(v *autodiff.Variable[float64, m2x3]) scalar {
			c := autodiff.New(v.Graph(), weights, false)
			return autodiff.SumAll(autodiff.Reshape[m3x2](v).Mul(c))
		}, x)
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("reshape_transposed", func(t *testing.T) {
		got := autodiffGrad(func(v *autodiff.Variable[float64, m2x3]) scalar {
			c := autodiff.New(v.Graph(), w23, false)
			r := autodiff.Reshape[m2x3](autodiff.Transpose2(v))
			return autodiff.SumAll(r.Mul(c))
		}, x)
		want := numericGrad(func(in *tensor.Tensor[float64, m2x3]) float64 {
			r := tensor.Reshape[m2x3](tensor.Transpose2(in).AsContiguous())
			return r.Mul(w23).SumAll()
		}, x)
		assert.InDeltaSlice(t, want, got, 1e-5)
	})

	t.Run("sum", func(t *testing.T) {
		rowWeights := tensor.MustFromSlice[shape.S2[shape.D2, shape.D1]]([]float64{10, 20})
		got := autodiffGrad(func(v *autodiff.Variable[float64, m2x3]) scalar {
			c := autodiff.New(v.Graph(), rowWeights, false)
			rows := autodiff.Sum[shape.S2[shape.D2, shape.D1]](v, 1)
			return autodiff.SumAll(rows.Mul(c))
		}, x)
		assert.Equal(t, []float64{10, 10, 10, 20, 20, 20}, got)
	})

	t.Run("mean", func(t *testing.T) {
		got := autodiffGrad(func(v *autodiff.Variable[float64, m2x3]) scalar {
			return autodiff.SumAll(autodiff.Mean[shape.S2[shape.D1, shape.D3]](v, 0))
		}, x)
		assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, got, 1e-12)
	})
}

func TestDynamicVariables(t *testing.T) {
	type dynMat = shape.S2[shape.Dyn, shape.Dyn]
	value, err := tensor.FromSliceShape[dynMat]([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)

	g := autodiff.NewGraph()
	x := autodiff.New(g, value, true)
	y := autodiff.SumAll(x.Clone().Mul(x.Clone()))
	assert.Equal(t, 91.0, y.Value().Item())

	y.Backward(tensor.Ones[float64, shape.S0]())
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, x.Grad().ToSlice())

	static := autodiff.As[m2x3](x.Clone())
	assert.Equal(t, []int{2, 3}, static.Value().Shape())
}

func TestReLUGradient(t *testing.T) {
	x := tensor.MustFromSlice[vec4]([]float64{-1, 0.5, -0.25, 2})
	got := autodiffGrad(func(v *autodiff.Variable[float64, vec4]) scalar {
		return autodiff.SumAll(autodiff.ReLU(v).ScalMul(3))
	}, x)
	assert.Equal(t, []float64{0, 3, 0, 3}, got)
}

func TestBroadcastGradient(t *testing.T) {
	type row = shape.S2[shape.D1, shape.D3]
	bias := tensor.MustFromSlice[row]([]float64{1, 2, 3})
	weights := tensor.MustFromSlice[m2x3]([]float64{1, 2, 3, 4, 5, 6})

	got := autodiffGrad(func(v *autodiff.Variable[float64, row]) scalar {
		c := autodiff.New(v.Graph(), weights, false)
		return autodiff.SumAll(autodiff.Broadcast[m2x3](v).Mul(c))
	}, bias)
	assert.Equal(t, []float64{5, 7, 9}, got)

	// Dynamic leading axis from explicit dims.
	got = autodiffGrad(func(v *autodiff.Variable[float64, row]) scalar {
		b := autodiff.BroadcastTo[shape.S2[shape.Dyn, shape.D3]](v, 4, 3)
		return autodiff.SumAll(b)
	}, bias)
	assert.Equal(t, []float64{4, 4, 4}, got)
}
