package opt

// CosineAnnealingWarmRestarts anneals the learning rate from eta0 to eta1
// and then restarts at eta0. Each restart multiplies the cycle length by tMult.
type CosineAnnealingWarmRestarts struct {
	lr      float64
	eta0    float64
	eta1    float64
	stepCur int
	tMax    int
	tMult   int
}

// NewCosineAnnealingWarmRestarts creates a new CosineAnnealingWarmRestarts
// starting at initStep. t0 and tMult below 1 are treated as 1, otherwise the
// restart loop would never terminate.
func NewCosineAnnealingWarmRestarts(eta0, eta1 float64, t0, tMult, initStep int) *CosineAnnealingWarmRestarts {
	s := &CosineAnnealingWarmRestarts{
		eta0:    eta0,
		eta1:    eta1,
		stepCur: nonNegative(initStep),
		tMax:    atLeastOne(t0),
		tMult:   atLeastOne(tMult),
	}
	s.restart()
	s.lr = s.rate()
	return s
}

// restart folds stepCur back into [0, tMax]. The trough sits at
// stepCur == tMax, so the next cycle begins tMax+1 steps later.
func (s *CosineAnnealingWarmRestarts) restart() {
	for s.stepCur > s.tMax {
		s.stepCur -= s.tMax + 1
		s.tMax *= s.tMult
	}
}

func (s *CosineAnnealingWarmRestarts) rate() float64 {
	return blend(s.eta0, s.eta1, cosineFactor(s.stepCur, s.tMax))
}

func (s *CosineAnnealingWarmRestarts) Step(metric float64) {
	s.stepCur++
	s.restart()
	s.lr = s.rate()
}

func (s *CosineAnnealingWarmRestarts) GetLR() float64 { return s.lr }

func (s *CosineAnnealingWarmRestarts) String() string { return "CosineAnnealingWarmRestarts" }
