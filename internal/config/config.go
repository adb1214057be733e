// Package config describes learning rate schedulers declaratively and builds
// them from YAML or JSON documents.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names a scheduler policy.
type Kind string

const (
	KindConstant           Kind = "constant"
	KindExponential        Kind = "exponential"
	KindStep               Kind = "step"
	KindMultiStep          Kind = "multistep"
	KindLinear             Kind = "linear"
	KindPolynomial         Kind = "polynomial"
	KindMultiplicative     Kind = "multiplicative"
	KindCosine             Kind = "cosine"
	KindCosineWarmRestarts Kind = "cosine_warm_restarts"
	KindCyclic             Kind = "cyclic"
	KindOneCycle           Kind = "one_cycle"
	KindPlateau            Kind = "plateau"
)

// Kinds lists every supported kind in declaration order.
var Kinds = []Kind{
	KindConstant, KindExponential, KindStep, KindMultiStep, KindLinear,
	KindPolynomial, KindMultiplicative, KindCosine, KindCosineWarmRestarts,
	KindCyclic, KindOneCycle, KindPlateau,
}

func (k Kind) normalized() Kind {
	return Kind(strings.ToLower(strings.TrimSpace(string(k))))
}

func (k Kind) known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Config describes one scheduler. Only the keys used by Kind matter; the
// rest keep their defaults.
type Config struct {
	Kind Kind `yaml:"kind"`

	BaseLR float64 `yaml:"base_lr"` // eta_0 for cosine kinds, initial LR for plateau
	MaxLR  float64 `yaml:"max_lr"`
	MinLR  float64 `yaml:"min_lr"`
	EtaMin float64 `yaml:"eta_min"`

	Factor      float64 `yaml:"factor"`
	Gamma       float64 `yaml:"gamma"`
	StartFactor float64 `yaml:"start_factor"`
	EndFactor   float64 `yaml:"end_factor"`
	Power       float64 `yaml:"power"`

	TotalIters int   `yaml:"total_iters"`
	StepSize   int   `yaml:"step_size"`
	Milestones []int `yaml:"milestones"`

	TMax  int `yaml:"t_max"`
	T0    int `yaml:"t_0"`
	TMult int `yaml:"t_mult"`

	StepSizeUp   int    `yaml:"step_size_up"`
	StepSizeDown int    `yaml:"step_size_down"`
	Mode         string `yaml:"mode"` // cyclic: triangular|triangular2|exp_range, plateau: min|max

	TotalSteps     int     `yaml:"total_steps"`
	PctStart       float64 `yaml:"pct_start"`
	AnnealStrategy string  `yaml:"anneal_strategy"` // cos|linear
	DivFactor      float64 `yaml:"div_factor"`
	FinalDivFactor float64 `yaml:"final_div_factor"`
	ThreePhase     bool    `yaml:"three_phase"`

	Patience      int     `yaml:"patience"`
	Threshold     float64 `yaml:"threshold"`
	ThresholdMode string  `yaml:"threshold_mode"` // rel|abs
	Cooldown      int     `yaml:"cooldown"`
	Eps           float64 `yaml:"eps"`

	InitStep int `yaml:"init_step"`
}

// Default returns the defaults for kind. Keys absent from a parsed document
// keep these values.
func Default(kind Kind) (Config, error) {
	kind = kind.normalized()
	cfg := Config{Kind: kind}

	switch kind {
	case KindConstant:
		cfg.Factor = 1.0 / 3.0
		cfg.TotalIters = 5
	case KindExponential, KindMultiplicative, KindCosine:
		// every key is required or defaults to zero
	case KindStep, KindMultiStep:
		cfg.Gamma = 0.1
	case KindLinear:
		cfg.StartFactor = 1.0 / 3.0
		cfg.EndFactor = 1.0
		cfg.TotalIters = 5
	case KindPolynomial:
		cfg.TotalIters = 5
		cfg.Power = 1.0
	case KindCosineWarmRestarts:
		cfg.TMult = 1
	case KindCyclic:
		cfg.StepSizeUp = 2000
		cfg.Mode = "triangular"
		cfg.Gamma = 1.0
	case KindOneCycle:
		cfg.PctStart = 0.3
		cfg.AnnealStrategy = "cos"
		cfg.DivFactor = 25.0
		cfg.FinalDivFactor = 1e4
	case KindPlateau:
		cfg.Mode = "min"
		cfg.Factor = 0.1
		cfg.Patience = 10
		cfg.Threshold = 1e-4
		cfg.ThresholdMode = "rel"
		cfg.Eps = 1e-8
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return cfg, nil
}

// Parse decodes a YAML or JSON scheduler description onto the defaults of
// its kind and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, ErrEmptyConfig
	}

	var probe struct {
		Kind Kind `yaml:"kind"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if probe.Kind == "" {
		return Config{}, fmt.Errorf("%w: kind is required", ErrInvalidConfig)
	}

	cfg, err := Default(probe.Kind)
	if err != nil {
		return Config{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Kind = cfg.Kind.normalized()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a scheduler description from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
