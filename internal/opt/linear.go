package opt

import "math"

// LinearLR interpolates the multiplicative factor linearly from startFactor
// to endFactor over totalIters steps and holds endFactor afterwards.
type LinearLR struct {
	lr          float64
	baseLR      float64
	step        int
	totalIters  int
	grad        float64
	startFactor float64
	endFactor   float64
}

// NewLinearLR creates a new LinearLR starting at initStep.
// With totalIters == 0 the rate is endFactor*baseLR from the start.
func NewLinearLR(baseLR, startFactor, endFactor float64, totalIters, initStep int) *LinearLR {
	s := &LinearLR{
		baseLR:      baseLR,
		step:        nonNegative(initStep),
		totalIters:  nonNegative(totalIters),
		startFactor: startFactor,
		endFactor:   endFactor,
	}
	if s.totalIters > 0 {
		s.grad = (endFactor - startFactor) / float64(s.totalIters)
	}
	s.lr = s.rate()
	return s
}

func (s *LinearLR) rate() float64 {
	if s.step >= s.totalIters {
		return s.endFactor * s.baseLR
	}
	return s.baseLR * math.FMA(float64(s.step), s.grad, s.startFactor)
}

func (s *LinearLR) Step(metric float64) {
	s.step++
	s.lr = s.rate()
}

func (s *LinearLR) GetLR() float64 { return s.lr }

func (s *LinearLR) String() string { return "LinearLR" }
