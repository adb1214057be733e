package opt

// LambdaFunc maps a step index to the factor applied when leaving that step.
type LambdaFunc func(step int) float64

// MultiplicativeLR multiplies the learning rate by lambda(step) every step.
type MultiplicativeLR struct {
	lr     float64
	step   int
	lambda LambdaFunc
}

// NewMultiplicativeLR creates a new MultiplicativeLR starting at initStep.
// The factors lambda(0) .. lambda(initStep-1) are applied up front.
// A nil lambda keeps the rate constant.
func NewMultiplicativeLR(baseLR float64, lambda LambdaFunc, initStep int) *MultiplicativeLR {
	if lambda == nil {
		lambda = func(int) float64 { return 1 }
	}
	initStep = nonNegative(initStep)

	lr := baseLR
	for i := 0; i < initStep; i++ {
		lr *= lambda(i)
	}
	return &MultiplicativeLR{
		lr:     lr,
		step:   initStep,
		lambda: lambda,
	}
}

func (s *MultiplicativeLR) Step(metric float64) {
	s.lr *= s.lambda(s.step)
	s.step++
}

func (s *MultiplicativeLR) GetLR() float64 { return s.lr }

func (s *MultiplicativeLR) String() string { return "MultiplicativeLR" }
