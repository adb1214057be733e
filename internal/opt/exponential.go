package opt

import "math"

// ExponentialLR decays the learning rate by gamma every step.
type ExponentialLR struct {
	lr    float64
	gamma float64
	step  int
}

// NewExponentialLR creates a new ExponentialLR starting at initStep.
func NewExponentialLR(baseLR, gamma float64, initStep int) *ExponentialLR {
	initStep = nonNegative(initStep)
	return &ExponentialLR{
		lr:    baseLR * math.Pow(gamma, float64(initStep)),
		gamma: gamma,
		step:  initStep,
	}
}

// Step multiplies the current rate by gamma instead of recomputing the power.
func (s *ExponentialLR) Step(metric float64) {
	s.step++
	s.lr *= s.gamma
}

func (s *ExponentialLR) GetLR() float64 { return s.lr }

func (s *ExponentialLR) String() string { return "ExponentialLR" }
