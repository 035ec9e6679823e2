// Package optim implements optimization algorithms for training models
// built from package nn.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	g := autodiff.NewGraph()
//	for range steps {
//	    g.Reset()
//	    loss := nn.MSE(layer.Forward(autodiff.New(g, x, false)), autodiff.New(g, y, false))
//	    loss.Backward(tensor.Ones[float32, shape.S0]())
//	    optimizer.Step()
//	}
package optim

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/shapegrad/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step updates every parameter from the gradient accumulated in its
	// current graph. Parameters without a gradient are skipped.
	Step()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// update applies rule to params, logging the parameters that were skipped.
func update(name string, params []nn.Param, rule nn.Rule) int {
	updated := 0
	for _, p := range params {
		if p.Update(rule) {
			updated++
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("%s: parameter %q has no gradient, skipped", name, p.Name())
		}
	}
	return updated
}
