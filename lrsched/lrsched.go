package lrsched

import (
	"go.uber.org/zap"

	"github.com/FlavioCFOliveira/lrsched/internal/config"
	"github.com/FlavioCFOliveira/lrsched/internal/opt"
	"github.com/FlavioCFOliveira/lrsched/internal/trace"
)

// Re-export common types for easier access
type (
	Scheduler  = opt.Scheduler
	LambdaFunc = opt.LambdaFunc

	CyclicConfig   = opt.CyclicConfig
	CyclicMode     = opt.CyclicMode
	ScaleMode      = opt.ScaleMode
	OneCycleConfig = opt.OneCycleConfig
	AnnealStrategy = opt.AnnealStrategy
	PlateauConfig  = opt.PlateauConfig
	PlateauMode    = opt.PlateauMode
	ThresholdMode  = opt.ThresholdMode

	Config   = config.Config
	Kind     = config.Kind
	Recorder = trace.Recorder
	Point    = trace.Point
	Summary  = trace.Summary
)

// Modes
const (
	Triangular  = opt.Triangular
	Triangular2 = opt.Triangular2
	ExpRange    = opt.ExpRange

	ScaleCycle      = opt.ScaleCycle
	ScaleIterations = opt.ScaleIterations

	AnnealCos    = opt.AnnealCos
	AnnealLinear = opt.AnnealLinear

	ModeMin      = opt.ModeMin
	ModeMax      = opt.ModeMax
	ThresholdRel = opt.ThresholdRel
	ThresholdAbs = opt.ThresholdAbs
)

// Errors
var (
	ErrEmptyConfig   = config.ErrEmptyConfig
	ErrUnknownKind   = config.ErrUnknownKind
	ErrInvalidConfig = config.ErrInvalidConfig
)

// Schedulers
func ConstantLR(baseLR, factor float64, totalIters, initStep int) *opt.ConstantLR {
	return opt.NewConstantLR(baseLR, factor, totalIters, initStep)
}

func ExponentialLR(baseLR, gamma float64, initStep int) *opt.ExponentialLR {
	return opt.NewExponentialLR(baseLR, gamma, initStep)
}

func StepLR(baseLR float64, stepSize int, gamma float64, initStep int) *opt.StepLR {
	return opt.NewStepLR(baseLR, stepSize, gamma, initStep)
}

func MultiStepLR(baseLR float64, milestones []int, gamma float64, initStep int) *opt.MultiStepLR {
	return opt.NewMultiStepLR(baseLR, milestones, gamma, initStep)
}

func LinearLR(baseLR, startFactor, endFactor float64, totalIters, initStep int) *opt.LinearLR {
	return opt.NewLinearLR(baseLR, startFactor, endFactor, totalIters, initStep)
}

func PolynomialLR(baseLR float64, totalIters int, power float64, initStep int) *opt.PolynomialLR {
	return opt.NewPolynomialLR(baseLR, totalIters, power, initStep)
}

func MultiplicativeLR(baseLR float64, lambda LambdaFunc, initStep int) *opt.MultiplicativeLR {
	return opt.NewMultiplicativeLR(baseLR, lambda, initStep)
}

func CosineAnnealingLR(eta0, eta1 float64, tMax, initStep int) *opt.CosineAnnealingLR {
	return opt.NewCosineAnnealingLR(eta0, eta1, tMax, initStep)
}

func CosineAnnealingWarmRestarts(eta0, eta1 float64, t0, tMult, initStep int) *opt.CosineAnnealingWarmRestarts {
	return opt.NewCosineAnnealingWarmRestarts(eta0, eta1, t0, tMult, initStep)
}

func CyclicLR(cfg CyclicConfig) *opt.CyclicLR {
	return opt.NewCyclicLR(cfg)
}

func OneCycleLR(cfg OneCycleConfig) *opt.OneCycleLR {
	return opt.NewOneCycleLR(cfg)
}

func ReduceLROnPlateau(lr float64, cfg PlateauConfig) *opt.ReduceLROnPlateau {
	return opt.NewReduceLROnPlateau(lr, cfg)
}

// Default configurations
func DefaultCyclicConfig(baseLR, maxLR float64) CyclicConfig {
	return opt.DefaultCyclicConfig(baseLR, maxLR)
}

func DefaultOneCycleConfig(maxLR float64, totalSteps int) OneCycleConfig {
	return opt.DefaultOneCycleConfig(maxLR, totalSteps)
}

func DefaultPlateauConfig() PlateauConfig {
	return opt.DefaultPlateauConfig()
}

// Configuration files
func ParseConfig(data []byte) (Config, error) {
	return config.Parse(data)
}

func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// Load reads a scheduler description from path and builds it.
func Load(path string, logger *zap.Logger) (Scheduler, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Build(logger)
}

// Tracing
func NewRecorder(s Scheduler, logger *zap.Logger) *Recorder {
	return trace.NewRecorder(s, logger)
}

func Sample(s Scheduler, n int) []float64 {
	return trace.Sample(s, n)
}

func Summarize(lrs []float64) Summary {
	return trace.Summarize(lrs)
}
