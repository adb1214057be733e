package opt

// CosineAnnealingLR oscillates the learning rate between eta0 and eta1 along
// a cosine curve with period 2*tMax.
type CosineAnnealingLR struct {
	lr   float64
	eta0 float64
	eta1 float64
	step int
	tMax int
}

// NewCosineAnnealingLR creates a new CosineAnnealingLR starting at initStep.
// A tMax below 1 is treated as 1.
func NewCosineAnnealingLR(eta0, eta1 float64, tMax, initStep int) *CosineAnnealingLR {
	s := &CosineAnnealingLR{
		eta0: eta0,
		eta1: eta1,
		step: nonNegative(initStep),
		tMax: atLeastOne(tMax),
	}
	s.lr = s.rate()
	return s
}

func (s *CosineAnnealingLR) rate() float64 {
	r := s.step % (2 * s.tMax)
	return blend(s.eta0, s.eta1, cosineFactor(r, s.tMax))
}

func (s *CosineAnnealingLR) Step(metric float64) {
	s.step++
	s.lr = s.rate()
}

func (s *CosineAnnealingLR) GetLR() float64 { return s.lr }

func (s *CosineAnnealingLR) String() string { return "CosineAnnealingLR" }
