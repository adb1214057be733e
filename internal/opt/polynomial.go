package opt

import "math"

// PolynomialLR decays the learning rate to zero over totalIters steps
// following (1 - step/totalIters)^power.
type PolynomialLR struct {
	lr         float64
	baseLR     float64
	step       int
	totalIters int
	power      float64
}

// NewPolynomialLR creates a new PolynomialLR starting at initStep.
func NewPolynomialLR(baseLR float64, totalIters int, power float64, initStep int) *PolynomialLR {
	s := &PolynomialLR{
		baseLR:     baseLR,
		step:       nonNegative(initStep),
		totalIters: nonNegative(totalIters),
		power:      power,
	}
	s.lr = s.rate()
	return s
}

func (s *PolynomialLR) rate() float64 {
	// Also covers totalIters == 0.
	if s.step >= s.totalIters {
		return 0
	}
	factor := 1.0 - float64(s.step)/float64(s.totalIters)
	return s.baseLR * math.Pow(factor, s.power)
}

func (s *PolynomialLR) Step(metric float64) {
	s.step++
	s.lr = s.rate()
}

func (s *PolynomialLR) GetLR() float64 { return s.lr }

func (s *PolynomialLR) String() string { return "PolynomialLR" }
