package opt

import "math"

// CyclicMode selects the amplitude policy of CyclicLR.
type CyclicMode int

const (
	// Triangular keeps the amplitude constant.
	Triangular CyclicMode = iota
	// Triangular2 halves the amplitude every cycle.
	Triangular2
	// ExpRange scales the amplitude by gamma^step.
	ExpRange
)

func (m CyclicMode) String() string {
	switch m {
	case Triangular:
		return "triangular"
	case Triangular2:
		return "triangular2"
	case ExpRange:
		return "exp_range"
	}
	return "unknown"
}

// ScaleMode selects the argument passed to a custom scale function.
type ScaleMode int

const (
	// ScaleCycle passes the 1-based cycle number.
	ScaleCycle ScaleMode = iota
	// ScaleIterations passes the iteration within the current cycle.
	ScaleIterations
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleCycle:
		return "cycle"
	case ScaleIterations:
		return "iterations"
	}
	return "unknown"
}

// CyclicConfig configures a CyclicLR.
type CyclicConfig struct {
	BaseLR       float64
	MaxLR        float64
	StepSizeUp   int // below 1 → 1
	StepSizeDown int // zero → StepSizeUp
	Mode         CyclicMode
	Gamma        float64 // ExpRange only

	// ScaleFn overrides Mode when set.
	ScaleFn   func(x float64) float64
	ScaleMode ScaleMode

	InitStep int
}

// DefaultCyclicConfig returns the usual cyclical policy between baseLR and maxLR.
func DefaultCyclicConfig(baseLR, maxLR float64) CyclicConfig {
	return CyclicConfig{
		BaseLR:     baseLR,
		MaxLR:      maxLR,
		StepSizeUp: 2000,
		Mode:       Triangular,
		Gamma:      1.0,
	}
}

// CyclicLR cycles the learning rate between BaseLR and MaxLR along a
// triangular wave.
type CyclicLR struct {
	baseLR       float64
	maxLR        float64
	stepSizeUp   int
	stepSizeDown int
	mode         CyclicMode
	gamma        float64
	scaleFn      func(float64) float64
	scaleMode    ScaleMode
	stepCount    int
}

// NewCyclicLR creates a new CyclicLR.
func NewCyclicLR(cfg CyclicConfig) *CyclicLR {
	up := atLeastOne(cfg.StepSizeUp)
	down := nonNegative(cfg.StepSizeDown)
	if down == 0 {
		down = up
	}
	return &CyclicLR{
		baseLR:       cfg.BaseLR,
		maxLR:        cfg.MaxLR,
		stepSizeUp:   up,
		stepSizeDown: down,
		mode:         cfg.Mode,
		gamma:        cfg.Gamma,
		scaleFn:      cfg.ScaleFn,
		scaleMode:    cfg.ScaleMode,
		stepCount:    nonNegative(cfg.InitStep),
	}
}

func (s *CyclicLR) cycleLength() int {
	return s.stepSizeUp + s.stepSizeDown
}

// position returns the 1-based cycle number and the wave position x in [0, 1].
func (s *CyclicLR) position() (int, float64) {
	cycle := 1 + s.stepCount/s.cycleLength()
	pos := s.stepCount % s.cycleLength()
	if pos <= s.stepSizeUp {
		return cycle, float64(pos) / float64(s.stepSizeUp)
	}
	down := pos - s.stepSizeUp
	return cycle, 1.0 - float64(down)/float64(s.stepSizeDown)
}

func (s *CyclicLR) scale(cycle int) float64 {
	if s.scaleFn != nil {
		if s.scaleMode == ScaleIterations {
			return s.scaleFn(float64(s.stepCount % s.cycleLength()))
		}
		return s.scaleFn(float64(cycle))
	}
	switch s.mode {
	case Triangular2:
		return 1.0 / math.Pow(2, float64(cycle-1))
	case ExpRange:
		return math.Pow(s.gamma, float64(s.stepCount))
	default:
		return 1.0
	}
}

func (s *CyclicLR) Step(metric float64) {
	s.stepCount++
}

func (s *CyclicLR) GetLR() float64 {
	cycle, x := s.position()
	amplitude := (s.maxLR - s.baseLR) * s.scale(cycle)
	return s.baseLR + amplitude*x
}

func (s *CyclicLR) String() string { return "CyclicLR" }
