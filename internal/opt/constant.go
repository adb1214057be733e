package opt

// ConstantLR scales the learning rate by a constant factor until the step
// counter reaches totalIters.
type ConstantLR struct {
	lr         float64
	baseLR     float64
	step       int
	totalIters int
}

// NewConstantLR creates a new ConstantLR starting at initStep.
func NewConstantLR(baseLR, factor float64, totalIters, initStep int) *ConstantLR {
	totalIters = nonNegative(totalIters)
	initStep = nonNegative(initStep)

	lr := baseLR
	if initStep < totalIters {
		lr = factor * baseLR
	}
	return &ConstantLR{
		lr:         lr,
		baseLR:     baseLR,
		step:       initStep,
		totalIters: totalIters,
	}
}

func (s *ConstantLR) Step(metric float64) {
	s.step++
	if s.step == s.totalIters {
		s.lr = s.baseLR
	}
}

func (s *ConstantLR) GetLR() float64 { return s.lr }

func (s *ConstantLR) String() string { return "ConstantLR" }
