package opt

import "math"

// StepLR decays the learning rate by gamma every stepSize steps.
type StepLR struct {
	lr       float64
	baseLR   float64
	step     int
	stepSize int
	gamma    float64
}

// NewStepLR creates a new StepLR starting at initStep.
// A stepSize below 1 is treated as 1.
func NewStepLR(baseLR float64, stepSize int, gamma float64, initStep int) *StepLR {
	s := &StepLR{
		baseLR:   baseLR,
		step:     nonNegative(initStep),
		stepSize: atLeastOne(stepSize),
		gamma:    gamma,
	}
	s.lr = s.rate()
	return s
}

func (s *StepLR) rate() float64 {
	return s.baseLR * math.Pow(s.gamma, float64(s.step/s.stepSize))
}

func (s *StepLR) Step(metric float64) {
	s.step++
	s.lr = s.rate()
}

func (s *StepLR) GetLR() float64 { return s.lr }

func (s *StepLR) String() string { return "StepLR" }
