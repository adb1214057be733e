package opt

import (
	"math"

	"go.uber.org/zap"
)

// PlateauMode tells ReduceLROnPlateau which direction is an improvement.
type PlateauMode int

const (
	// ModeMin treats lower metrics as better (losses).
	ModeMin PlateauMode = iota
	// ModeMax treats higher metrics as better (accuracies).
	ModeMax
)

func (m PlateauMode) String() string {
	if m == ModeMax {
		return "max"
	}
	return "min"
}

// ThresholdMode selects how the improvement threshold is applied.
type ThresholdMode int

const (
	// ThresholdRel scales the threshold by the best metric.
	ThresholdRel ThresholdMode = iota
	// ThresholdAbs uses the threshold as a flat offset.
	ThresholdAbs
)

func (m ThresholdMode) String() string {
	if m == ThresholdAbs {
		return "abs"
	}
	return "rel"
}

// PlateauConfig configures a ReduceLROnPlateau.
type PlateauConfig struct {
	Mode          PlateauMode
	Factor        float64 // new LR = LR * Factor
	Patience      int     // bad epochs tolerated before reducing
	Threshold     float64
	ThresholdMode ThresholdMode
	Cooldown      int     // epochs to wait after a reduction
	MinLR         float64 // lower bound on the LR
	Eps           float64 // reductions smaller than Eps are ignored

	// Logger receives an Info entry on every effective reduction.
	Logger *zap.Logger
}

// DefaultPlateauConfig returns the conventional plateau defaults.
func DefaultPlateauConfig() PlateauConfig {
	return PlateauConfig{
		Mode:          ModeMin,
		Factor:        0.1,
		Patience:      10,
		Threshold:     1e-4,
		ThresholdMode: ThresholdRel,
		Cooldown:      0,
		MinLR:         0,
		Eps:           1e-8,
	}
}

// ReduceLROnPlateau reduces the learning rate when a metric has stopped improving.
type ReduceLROnPlateau struct {
	lr            float64
	mode          PlateauMode
	factor        float64
	patience      int
	threshold     float64
	thresholdMode ThresholdMode
	cooldown      int
	minLR         float64
	eps           float64
	logger        *zap.Logger

	best            float64
	numBadEpochs    int
	cooldownCounter int
	epoch           int
}

// NewReduceLROnPlateau creates a new ReduceLROnPlateau starting at lr.
func NewReduceLROnPlateau(lr float64, cfg PlateauConfig) *ReduceLROnPlateau {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	best := math.Inf(1)
	if cfg.Mode == ModeMax {
		best = math.Inf(-1)
	}
	return &ReduceLROnPlateau{
		lr:            lr,
		mode:          cfg.Mode,
		factor:        cfg.Factor,
		patience:      nonNegative(cfg.Patience),
		threshold:     cfg.Threshold,
		thresholdMode: cfg.ThresholdMode,
		cooldown:      nonNegative(cfg.Cooldown),
		minLR:         cfg.MinLR,
		eps:           cfg.Eps,
		logger:        logger,
		best:          best,
	}
}

// isBetter reports whether current beats best by more than the threshold.
func (s *ReduceLROnPlateau) isBetter(current, best float64) bool {
	var margin float64
	switch {
	case s.thresholdMode == ThresholdRel && s.mode == ModeMin:
		margin = best * (1.0 - s.threshold)
	case s.thresholdMode == ThresholdRel:
		margin = best * (1.0 + s.threshold)
	case s.mode == ModeMin:
		margin = best - s.threshold
	default:
		margin = best + s.threshold
	}

	if s.mode == ModeMin {
		return current < margin
	}
	return current > margin
}

// reduce enters cooldown and resets the bad epoch count even when Eps
// suppresses the change itself.
func (s *ReduceLROnPlateau) reduce() {
	old := s.lr
	next := math.Max(old*s.factor, s.minLR)
	if math.Abs(old-next) > s.eps {
		s.lr = next
		s.logger.Info("reducing learning rate",
			zap.Int("epoch", s.epoch),
			zap.Float64("old_lr", old),
			zap.Float64("new_lr", next),
			zap.Float64("best", s.best))
	}
	s.cooldownCounter = s.cooldown
	s.numBadEpochs = 0
}

// Step feeds the latest metric to the plateau monitor.
func (s *ReduceLROnPlateau) Step(metric float64) {
	s.epoch++

	if s.InCooldown() {
		s.cooldownCounter--
		if s.isBetter(metric, s.best) {
			s.best = metric
		}
		return
	}

	if s.isBetter(metric, s.best) {
		s.best = metric
		s.numBadEpochs = 0
	} else {
		s.numBadEpochs++
	}

	if s.patience == 0 {
		if s.numBadEpochs > 0 {
			s.reduce()
		}
	} else if s.numBadEpochs >= s.patience {
		s.reduce()
	}
}

func (s *ReduceLROnPlateau) GetLR() float64 { return s.lr }

// Best returns the best metric observed so far.
func (s *ReduceLROnPlateau) Best() float64 { return s.best }

// BadEpochs returns the current run of non-improving epochs.
func (s *ReduceLROnPlateau) BadEpochs() int { return s.numBadEpochs }

// InCooldown reports whether the monitor is waiting out a cooldown.
func (s *ReduceLROnPlateau) InCooldown() bool { return s.cooldownCounter > 0 }

func (s *ReduceLROnPlateau) String() string { return "ReduceLROnPlateau" }
