package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/internal/nn"
	"github.com/born-ml/shapegrad/internal/optim"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

type vec1 = shape.S1[shape.D1]

// step binds x, backpropagates loss(x) = k·x and applies opt.
func step(p *nn.Parameter[float64, vec1], opt optim.Optimizer, k float64) {
	g := autodiff.NewGraph()
	p.Bind(g).ScalMul(k).Backward(tensor.Ones[float64, vec1]())
	opt.Step()
}

func TestSGD_SimpleUpdate(t *testing.T) {
	x := nn.NewParameter("x", tensor.MustFromSlice[vec1]([]float64{2}))
	opt := optim.NewSGD([]nn.Param{x}, optim.SGDConfig{LR: 0.1})

	step(x, opt, 1)
	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.Value().Item(), 1e-12)
	assert.Equal(t, 0.1, opt.GetLR())
}

func TestSGD_Momentum(t *testing.T) {
	x := nn.NewParameter("x", tensor.MustFromSlice[vec1]([]float64{2}))
	opt := optim.NewSGD([]nn.Param{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	step(x, opt, 1) // v = 1, x = 1.9
	step(x, opt, 1) // v = 1.9, x = 1.71
	assert.InDelta(t, 1.71, x.Value().Item(), 1e-12)
}

func TestSGD_DefaultsAndSkips(t *testing.T) {
	x := nn.NewParameter("x", tensor.MustFromSlice[vec1]([]float64{2}))
	unused := nn.NewParameter("unused", tensor.MustFromSlice[vec1]([]float64{5}))
	opt := optim.NewSGD([]nn.Param{x, unused}, optim.SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())

	step(x, opt, 1)
	assert.InDelta(t, 1.99, x.Value().Item(), 1e-12)
	assert.Equal(t, 5.0, unused.Value().Item())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestAdam_FirstStep(t *testing.T) {
	x := nn.NewParameter("x", tensor.MustFromSlice[vec1]([]float64{1}))
	opt := optim.NewAdam([]nn.Param{x}, optim.AdamConfig{LR: 0.1})

	// After bias correction the first step moves by lr·sign(grad).
	step(x, opt, 3)
	assert.InDelta(t, 0.9, x.Value().Item(), 1e-6)
	assert.Equal(t, 1, opt.GetTimestep())

	step(x, opt, -3)
	// m = 0.9·0.3 - 0.3 = -0.03, v = 0.999·0.009 + 0.009 = 0.017991
	m := -0.03 / (1 - 0.81)
	v := 0.017991 / (1 - 0.998001)
	assert.InDelta(t, 0.9-0.1*m/(math.Sqrt(v)+1e-8), x.Value().Item(), 1e-9)
}

func TestLinearRegressionConverges(t *testing.T) {
	type features = shape.S2[shape.Dyn, shape.D2]
	type targets = shape.S2[shape.Dyn, shape.D1]

	rng := rand.New(rand.NewSource(3))
	const n = 32
	xs := make([]float64, 0, 2*n)
	ys := make([]float64, 0, n)
	for range n {
		a, b := rng.Float64()*2-1, rng.Float64()*2-1
		xs = append(xs, a, b)
		ys = append(ys, 3*a-2*b+0.5)
	}
	x, err := tensor.FromSlice[features](xs)
	require.NoError(t, err)
	y, err := tensor.FromSlice[targets](ys)
	require.NoError(t, err)

	layer := nn.NewLinear[float64, shape.D2, shape.D1](rng)
	opt := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.05})

	g := autodiff.NewGraph()
	var first, last float64
	for i := range 500 {
		g.Reset()
		loss := nn.MSE(layer.Forward(autodiff.New(g, x, false)), autodiff.New(g, y, false))
		if i == 0 {
			first = loss.Value().Item()
		}
		last = loss.Value().Item()
		loss.Backward(tensor.Ones[float64, shape.S0]())
		opt.Step()
	}

	assert.Less(t, last, first)
	assert.Less(t, last, 1e-2)
	assert.InDeltaSlice(t, []float64{3, -2}, layer.Weight().Value().ToSlice(), 0.1)
	assert.InDelta(t, 0.5, layer.Bias().Value().Item(), 0.1)
}
