package opt

import (
	"math"
	"slices"
)

// MultiStepLR decays the learning rate by gamma once the step counter
// reaches each milestone.
type MultiStepLR struct {
	lr         float64
	baseLR     float64
	step       int
	milestones []int
	gamma      float64
}

// NewMultiStepLR creates a new MultiStepLR starting at initStep.
// Milestones may be given in any order. A repeated milestone decays once
// per occurrence.
func NewMultiStepLR(baseLR float64, milestones []int, gamma float64, initStep int) *MultiStepLR {
	sorted := slices.Clone(milestones)
	slices.Sort(sorted)

	s := &MultiStepLR{
		baseLR:     baseLR,
		step:       nonNegative(initStep),
		milestones: sorted,
		gamma:      gamma,
	}
	s.lr = s.rate()
	return s
}

// passed counts milestones <= step.
func (s *MultiStepLR) passed() int {
	n := 0
	for _, m := range s.milestones {
		if m > s.step {
			break
		}
		n++
	}
	return n
}

func (s *MultiStepLR) rate() float64 {
	return s.baseLR * math.Pow(s.gamma, float64(s.passed()))
}

func (s *MultiStepLR) Step(metric float64) {
	s.step++
	s.lr = s.rate()
}

func (s *MultiStepLR) GetLR() float64 { return s.lr }

func (s *MultiStepLR) String() string { return "MultiStepLR" }
