package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FlavioCFOliveira/lrsched/internal/opt"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func parseCyclicMode(s string) (opt.CyclicMode, error) {
	switch s {
	case "triangular", "":
		return opt.Triangular, nil
	case "triangular2":
		return opt.Triangular2, nil
	case "exp_range":
		return opt.ExpRange, nil
	}
	return 0, invalid("cyclic mode %q", s)
}

func parsePlateauMode(s string) (opt.PlateauMode, error) {
	switch s {
	case "min", "":
		return opt.ModeMin, nil
	case "max":
		return opt.ModeMax, nil
	}
	return 0, invalid("plateau mode %q", s)
}

func parseThresholdMode(s string) (opt.ThresholdMode, error) {
	switch s {
	case "rel", "":
		return opt.ThresholdRel, nil
	case "abs":
		return opt.ThresholdAbs, nil
	}
	return 0, invalid("threshold mode %q", s)
}

func parseAnnealStrategy(s string) (opt.AnnealStrategy, error) {
	switch s {
	case "cos", "":
		return opt.AnnealCos, nil
	case "linear":
		return opt.AnnealLinear, nil
	}
	return 0, invalid("anneal strategy %q", s)
}

// Validate checks the fields used by the configured kind.
// Rates and factors are not range checked; schedulers apply them as given.
func (c Config) Validate() error {
	kind := c.Kind.normalized()
	if !kind.known() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(c.Kind))
	}

	counts := map[string]int{
		"init_step":      c.InitStep,
		"total_iters":    c.TotalIters,
		"step_size_down": c.StepSizeDown,
		"patience":       c.Patience,
		"cooldown":       c.Cooldown,
	}
	for name, v := range counts {
		if v < 0 {
			return invalid("%s must not be negative, got %d", name, v)
		}
	}

	switch kind {
	case KindExponential:
		if c.Gamma == 0 {
			return invalid("exponential: gamma is required")
		}
	case KindStep:
		if c.StepSize < 1 {
			return invalid("step: step_size must be at least 1, got %d", c.StepSize)
		}
	case KindMultiStep:
		if len(c.Milestones) == 0 {
			return invalid("multistep: milestones are required")
		}
	case KindMultiplicative:
		if c.Factor == 0 {
			return invalid("multiplicative: factor is required")
		}
	case KindCosine:
		if c.TMax < 1 {
			return invalid("cosine: t_max must be at least 1, got %d", c.TMax)
		}
	case KindCosineWarmRestarts:
		if c.T0 < 1 {
			return invalid("cosine_warm_restarts: t_0 must be at least 1, got %d", c.T0)
		}
		if c.TMult < 1 {
			return invalid("cosine_warm_restarts: t_mult must be at least 1, got %d", c.TMult)
		}
	case KindCyclic:
		if c.StepSizeUp < 1 {
			return invalid("cyclic: step_size_up must be at least 1, got %d", c.StepSizeUp)
		}
		if _, err := parseCyclicMode(c.Mode); err != nil {
			return err
		}
	case KindOneCycle:
		if c.MaxLR == 0 {
			return invalid("one_cycle: max_lr is required")
		}
		if c.TotalSteps < 1 {
			return invalid("one_cycle: total_steps must be at least 1, got %d", c.TotalSteps)
		}
		if c.PctStart < 0 || c.PctStart > 1 {
			return invalid("one_cycle: pct_start %v out of range [0, 1]", c.PctStart)
		}
		if _, err := parseAnnealStrategy(c.AnnealStrategy); err != nil {
			return err
		}
	case KindPlateau:
		if _, err := parsePlateauMode(c.Mode); err != nil {
			return err
		}
		if _, err := parseThresholdMode(c.ThresholdMode); err != nil {
			return err
		}
	}
	return nil
}

// Build validates the configuration and constructs its scheduler.
// A nil logger disables logging.
func (c Config) Build(logger *zap.Logger) (opt.Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var s opt.Scheduler
	switch c.Kind.normalized() {
	case KindConstant:
		s = opt.NewConstantLR(c.BaseLR, c.Factor, c.TotalIters, c.InitStep)
	case KindExponential:
		s = opt.NewExponentialLR(c.BaseLR, c.Gamma, c.InitStep)
	case KindStep:
		s = opt.NewStepLR(c.BaseLR, c.StepSize, c.Gamma, c.InitStep)
	case KindMultiStep:
		s = opt.NewMultiStepLR(c.BaseLR, c.Milestones, c.Gamma, c.InitStep)
	case KindLinear:
		s = opt.NewLinearLR(c.BaseLR, c.StartFactor, c.EndFactor, c.TotalIters, c.InitStep)
	case KindPolynomial:
		s = opt.NewPolynomialLR(c.BaseLR, c.TotalIters, c.Power, c.InitStep)
	case KindMultiplicative:
		factor := c.Factor
		s = opt.NewMultiplicativeLR(c.BaseLR, func(int) float64 { return factor }, c.InitStep)
	case KindCosine:
		s = opt.NewCosineAnnealingLR(c.BaseLR, c.EtaMin, c.TMax, c.InitStep)
	case KindCosineWarmRestarts:
		s = opt.NewCosineAnnealingWarmRestarts(c.BaseLR, c.EtaMin, c.T0, c.TMult, c.InitStep)
	case KindCyclic:
		mode, _ := parseCyclicMode(c.Mode)
		s = opt.NewCyclicLR(opt.CyclicConfig{
			BaseLR:       c.BaseLR,
			MaxLR:        c.MaxLR,
			StepSizeUp:   c.StepSizeUp,
			StepSizeDown: c.StepSizeDown,
			Mode:         mode,
			Gamma:        c.Gamma,
			InitStep:     c.InitStep,
		})
	case KindOneCycle:
		strategy, _ := parseAnnealStrategy(c.AnnealStrategy)
		s = opt.NewOneCycleLR(opt.OneCycleConfig{
			MaxLR:          c.MaxLR,
			TotalSteps:     c.TotalSteps,
			PctStart:       c.PctStart,
			AnnealStrategy: strategy,
			DivFactor:      c.DivFactor,
			FinalDivFactor: c.FinalDivFactor,
			ThreePhase:     c.ThreePhase,
			InitStep:       c.InitStep,
		})
	case KindPlateau:
		mode, _ := parsePlateauMode(c.Mode)
		thresholdMode, _ := parseThresholdMode(c.ThresholdMode)
		s = opt.NewReduceLROnPlateau(c.BaseLR, opt.PlateauConfig{
			Mode:          mode,
			Factor:        c.Factor,
			Patience:      c.Patience,
			Threshold:     c.Threshold,
			ThresholdMode: thresholdMode,
			Cooldown:      c.Cooldown,
			MinLR:         c.MinLR,
			Eps:           c.Eps,
			Logger:        logger,
		})
	}

	logger.Debug("built scheduler",
		zap.String("kind", string(c.Kind.normalized())),
		zap.Stringer("scheduler", s.(fmt.Stringer)),
		zap.Float64("lr", s.GetLR()),
		zap.Int("init_step", c.InitStep))
	return s, nil
}
