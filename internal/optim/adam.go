package optim

import (
	"math"

	"github.com/born-ml/shapegrad/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []nn.Param
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer. Zero fields of config take their
// defaults.
func NewAdam(params []nn.Param, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
	}
}

// Step performs a single optimization step.
func (a *Adam) Step() {
	a.t++
	update("adam", a.params, adamRule{
		lr:    a.lr,
		beta1: a.beta1,
		beta2: a.beta2,
		eps:   a.eps,
		bc1:   1 - math.Pow(a.beta1, float64(a.t)),
		bc2:   1 - math.Pow(a.beta2, float64(a.t)),
	})
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}

type adamRule struct {
	lr, beta1, beta2, eps float64
	bc1, bc2              float64
}

func (adamRule) Slots() int { return 2 }

// Apply keeps the first moment in state[0] and the second in state[1].
func (r adamRule) Apply(value, grad float64, state []float64) float64 {
	state[0] = r.beta1*state[0] + (1-r.beta1)*grad
	state[1] = r.beta2*state[1] + (1-r.beta2)*grad*grad
	mHat := state[0] / r.bc1
	vHat := state[1] / r.bc2
	return value - r.lr*mHat/(math.Sqrt(vHat)+r.eps)
}
