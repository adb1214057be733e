package opt

import "math"

// AnnealStrategy selects how OneCycleLR interpolates inside a phase.
type AnnealStrategy int

const (
	// AnnealCos eases between the phase bounds along half a cosine.
	AnnealCos AnnealStrategy = iota
	// AnnealLinear interpolates in a straight line.
	AnnealLinear
)

func (a AnnealStrategy) String() string {
	switch a {
	case AnnealCos:
		return "cos"
	case AnnealLinear:
		return "linear"
	}
	return "unknown"
}

// OneCycleConfig configures a OneCycleLR.
type OneCycleConfig struct {
	MaxLR          float64
	TotalSteps     int
	PctStart       float64 // fraction of TotalSteps spent warming up
	AnnealStrategy AnnealStrategy
	DivFactor      float64 // initial LR = MaxLR / DivFactor
	FinalDivFactor float64 // min LR = initial LR / FinalDivFactor
	ThreePhase     bool
	InitStep       int
}

// DefaultOneCycleConfig returns the 1cycle policy defaults for maxLR over totalSteps.
func DefaultOneCycleConfig(maxLR float64, totalSteps int) OneCycleConfig {
	return OneCycleConfig{
		MaxLR:          maxLR,
		TotalSteps:     totalSteps,
		PctStart:       0.3,
		AnnealStrategy: AnnealCos,
		DivFactor:      25.0,
		FinalDivFactor: 1e4,
	}
}

// OneCycleLR implements the 1cycle policy: warm up from an initial rate to
// MaxLR, then anneal to a minimum far below the initial rate. In three-phase
// mode the anneal first returns to the initial rate before the final descent.
type OneCycleLR struct {
	maxLR      float64
	initialLR  float64
	minLR      float64
	totalSteps int
	strategy   AnnealStrategy
	threePhase bool
	stepCount  int

	warmupSteps int
	annealSteps int
	finalSteps  int
}

// NewOneCycleLR creates a new OneCycleLR.
// Division factors of zero are treated as 1.
func NewOneCycleLR(cfg OneCycleConfig) *OneCycleLR {
	div := cfg.DivFactor
	if div == 0 {
		div = 1
	}
	finalDiv := cfg.FinalDivFactor
	if finalDiv == 0 {
		finalDiv = 1
	}
	total := nonNegative(cfg.TotalSteps)

	s := &OneCycleLR{
		maxLR:      cfg.MaxLR,
		initialLR:  cfg.MaxLR / div,
		totalSteps: total,
		strategy:   cfg.AnnealStrategy,
		threePhase: cfg.ThreePhase,
		stepCount:  nonNegative(cfg.InitStep),
	}
	s.minLR = s.initialLR / finalDiv

	s.warmupSteps = clampSteps(math.Floor(float64(total)*cfg.PctStart), total)
	rest := total - s.warmupSteps
	if cfg.ThreePhase {
		s.annealSteps = clampSteps(math.Floor(float64(total)*(1.0-cfg.PctStart)/2.0), rest)
		s.finalSteps = rest - s.annealSteps
	} else {
		s.annealSteps = rest
	}
	return s
}

// clampSteps converts v to an int in [0, hi].
func clampSteps(v float64, hi int) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= float64(hi) {
		return hi
	}
	return int(v)
}

// progress returns done/length capped at 1; an empty phase is complete.
func progress(done, length int) float64 {
	if length == 0 {
		return 1.0
	}
	return math.Min(float64(done)/float64(length), 1.0)
}

func (s *OneCycleLR) interpolate(start, end, p float64) float64 {
	if s.strategy == AnnealLinear {
		return start + (end-start)*p
	}
	return end + (start-end)*0.5*(1.0+math.Cos(math.Pi*p))
}

func (s *OneCycleLR) Step(metric float64) {
	s.stepCount++
}

func (s *OneCycleLR) GetLR() float64 {
	if s.stepCount >= s.totalSteps {
		return s.minLR
	}

	n := s.stepCount
	switch {
	case n <= s.warmupSteps:
		return s.interpolate(s.initialLR, s.maxLR, progress(n, s.warmupSteps))
	case n <= s.warmupSteps+s.annealSteps:
		target := s.minLR
		if s.threePhase {
			target = s.initialLR
		}
		return s.interpolate(s.maxLR, target, progress(n-s.warmupSteps, s.annealSteps))
	default:
		done := n - s.warmupSteps - s.annealSteps
		return s.interpolate(s.initialLR, s.minLR, progress(done, s.finalSteps))
	}
}

func (s *OneCycleLR) String() string { return "OneCycleLR" }
