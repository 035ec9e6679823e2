package optim

import (
	"github.com/born-ml/shapegrad/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params   []nn.Param
	lr       float64
	momentum float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []nn.Param, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{params: params, lr: config.LR, momentum: config.Momentum}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	update("sgd", s.params, sgdRule{lr: s.lr, momentum: s.momentum})
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

type sgdRule struct {
	lr, momentum float64
}

func (r sgdRule) Slots() int {
	if r.momentum == 0 {
		return 0
	}
	return 1
}

func (r sgdRule) Apply(value, grad float64, state []float64) float64 {
	if r.momentum == 0 {
		return value - r.lr*grad
	}
	state[0] = r.momentum*state[0] + grad
	return value - r.lr*state[0]
}
