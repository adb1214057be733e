// Package opt provides learning rate schedulers.
//
// A Scheduler is driven by the training loop: GetLR is read before a step
// runs and Step is called once the step's metric is known.
package opt

import "math"

// Scheduler defines the interface for learning rate schedulers.
type Scheduler interface {
	// Step advances the scheduler by one unit. The metric is ignored by
	// every scheduler except ReduceLROnPlateau.
	Step(metric float64)

	// GetLR returns the learning rate for the current step without
	// mutating state.
	GetLR() float64
}

// nonNegative clamps step counts coming from signed ints.
func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// atLeastOne guards integer parameters used as divisors or multipliers.
func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// blend returns eta1 + (eta0-eta1)*factor.
func blend(eta0, eta1, factor float64) float64 {
	return math.FMA(eta0-eta1, factor, eta1)
}

// cosineFactor maps t in [0, period] onto 0.5*(1+cos(t*pi/period)).
func cosineFactor(t, period int) float64 {
	phase := float64(t) * math.Pi / float64(period)
	return 0.5 * (1.0 + math.Cos(phase))
}
