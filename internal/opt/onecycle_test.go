package opt

import (
	"testing"
)

// TestOneCycleLRTwoPhaseLinear tests exact rates through both phases.
func TestOneCycleLRTwoPhaseLinear(t *testing.T) {
	s := NewOneCycleLR(OneCycleConfig{
		MaxLR: 1.0, TotalSteps: 10, PctStart: 0.4, AnnealStrategy: AnnealLinear,
		DivFactor: 10.0, FinalDivFactor: 100.0,
	})
	if s.warmupSteps != 4 || s.annealSteps != 6 || s.finalSteps != 0 {
		t.Fatalf("phases = %d/%d/%d, want 4/6/0", s.warmupSteps, s.annealSteps, s.finalSteps)
	}

	got := collect(s, 12)
	want := map[int]float64{0: 0.1, 2: 0.55, 4: 1.0, 7: 0.5005, 10: 0.001, 11: 0.001}
	for step, lr := range want {
		if !approxEqual(got[step], lr) {
			t.Errorf("step %d: lr = %v, want %v", step, got[step], lr)
		}
	}
}

// TestOneCycleLRTwoPhaseCos tests the cosine policy endpoints.
func TestOneCycleLRTwoPhaseCos(t *testing.T) {
	s := NewOneCycleLR(OneCycleConfig{
		MaxLR: 0.1, TotalSteps: 10, PctStart: 0.3, AnnealStrategy: AnnealCos,
		DivFactor: 10.0, FinalDivFactor: 100.0,
	})
	got := collect(s, 11)
	if !approxEqual(got[0], 0.01) {
		t.Errorf("start lr = %v, want 0.01", got[0])
	}
	if !approxEqual(got[3], 0.1) {
		t.Errorf("peak lr = %v, want 0.1", got[3])
	}
	if !approxEqual(got[10], 0.0001) {
		t.Errorf("final lr = %v, want 0.0001", got[10])
	}
	for i := 4; i < 10; i++ {
		if got[i] >= got[i-1] {
			t.Errorf("step %d: lr %v does not decrease from %v", i, got[i], got[i-1])
		}
	}
}

// TestOneCycleLRThreePhaseLinear tests the split of the remainder.
func TestOneCycleLRThreePhaseLinear(t *testing.T) {
	s := NewOneCycleLR(OneCycleConfig{
		MaxLR: 0.2, TotalSteps: 12, PctStart: 0.25, AnnealStrategy: AnnealLinear,
		DivFactor: 20.0, FinalDivFactor: 1000.0, ThreePhase: true,
	})
	if s.warmupSteps != 3 || s.annealSteps != 4 || s.finalSteps != 5 {
		t.Fatalf("phases = %d/%d/%d, want 3/4/5", s.warmupSteps, s.annealSteps, s.finalSteps)
	}

	got := collect(s, 13)
	want := map[int]float64{0: 0.01, 3: 0.2, 5: 0.105, 7: 0.01, 8: 0.008002, 12: 0.00001}
	for step, lr := range want {
		if !approxEqual(got[step], lr) {
			t.Errorf("step %d: lr = %v, want %v", step, got[step], lr)
		}
	}
}

// TestOneCycleLRCosVsLinear tests that the strategies agree on endpoints only.
func TestOneCycleLRCosVsLinear(t *testing.T) {
	cfg := OneCycleConfig{MaxLR: 1.0, TotalSteps: 8, PctStart: 0.5, DivFactor: 10.0, FinalDivFactor: 100.0}
	cfg.AnnealStrategy = AnnealCos
	cos := collect(NewOneCycleLR(cfg), 8)
	cfg.AnnealStrategy = AnnealLinear
	lin := collect(NewOneCycleLR(cfg), 8)

	if !approxEqual(cos[0], lin[0]) || !approxEqual(cos[4], lin[4]) {
		t.Errorf("endpoints differ: cos %v/%v, linear %v/%v", cos[0], cos[4], lin[0], lin[4])
	}
	if !approxEqual(cos[3], 0.8681980515339464) || !approxEqual(lin[3], 0.775) {
		t.Errorf("step 3: cos %v, linear %v", cos[3], lin[3])
	}
}

// TestOneCycleLRShortCycle tests a two step schedule.
func TestOneCycleLRShortCycle(t *testing.T) {
	s := NewOneCycleLR(OneCycleConfig{
		MaxLR: 1.0, TotalSteps: 2, PctStart: 0.5, AnnealStrategy: AnnealLinear,
		DivFactor: 10.0, FinalDivFactor: 100.0,
	})
	assertSequence(t, collect(s, 3), []float64{0.1, 1.0, 0.001})
}

// TestOneCycleLRZeroWarmup tests that pctStart=0 starts at the peak.
func TestOneCycleLRZeroWarmup(t *testing.T) {
	s := NewOneCycleLR(OneCycleConfig{
		MaxLR: 1.0, TotalSteps: 10, AnnealStrategy: AnnealLinear,
		DivFactor: 10.0, FinalDivFactor: 100.0,
	})
	got := collect(s, 2)
	if !approxEqual(got[0], 1.0) {
		t.Errorf("start lr = %v, want 1.0", got[0])
	}
	if got[1] >= got[0] {
		t.Errorf("lr did not decrease: %v -> %v", got[0], got[1])
	}
}

// TestOneCycleLRBeyondTotalSteps tests permanent clamping to the minimum.
func TestOneCycleLRBeyondTotalSteps(t *testing.T) {
	cfg := OneCycleConfig{MaxLR: 1.0, TotalSteps: 5, PctStart: 0.4, AnnealStrategy: AnnealLinear, DivFactor: 10.0, FinalDivFactor: 100.0}
	s := NewOneCycleLR(cfg)
	for i := 0; i < 10; i++ {
		s.Step(0)
	}
	if !approxEqual(s.GetLR(), 0.001) {
		t.Errorf("lr = %v, want 0.001", s.GetLR())
	}

	cfg.InitStep = 50
	if lr := NewOneCycleLR(cfg).GetLR(); !approxEqual(lr, 0.001) {
		t.Errorf("resumed lr = %v, want 0.001", lr)
	}
}

// TestOneCycleLRDivFactors tests how the factors set the bounds.
func TestOneCycleLRDivFactors(t *testing.T) {
	tests := []struct {
		div, finalDiv    float64
		initial, minimum float64
	}{
		{5.0, 50.0, 0.2, 0.004},
		{20.0, 2000.0, 0.05, 0.000025},
		{0, 0, 1.0, 1.0},
	}
	for _, tt := range tests {
		s := NewOneCycleLR(OneCycleConfig{
			MaxLR: 1.0, TotalSteps: 10, PctStart: 0.3, AnnealStrategy: AnnealLinear,
			DivFactor: tt.div, FinalDivFactor: tt.finalDiv,
		})
		if !approxEqual(s.initialLR, tt.initial) || !approxEqual(s.minLR, tt.minimum) {
			t.Errorf("div %v/%v: initial %v min %v, want %v %v", tt.div, tt.finalDiv, s.initialLR, s.minLR, tt.initial, tt.minimum)
		}
	}
}

// TestOneCycleLRPctStartAboveOne tests the warmup clamp.
func TestOneCycleLRPctStartAboveOne(t *testing.T) {
	cfg := DefaultOneCycleConfig(1.0, 10)
	cfg.PctStart = 1.5
	cfg.ThreePhase = true
	s := NewOneCycleLR(cfg)
	if s.warmupSteps != 10 || s.annealSteps != 0 || s.finalSteps != 0 {
		t.Errorf("phases = %d/%d/%d, want 10/0/0", s.warmupSteps, s.annealSteps, s.finalSteps)
	}
}

// TestDefaultOneCycleConfig tests the default policy parameters.
func TestDefaultOneCycleConfig(t *testing.T) {
	cfg := DefaultOneCycleConfig(0.1, 100)
	if cfg.PctStart != 0.3 || cfg.DivFactor != 25 || cfg.FinalDivFactor != 1e4 || cfg.AnnealStrategy != AnnealCos || cfg.ThreePhase {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	s := NewOneCycleLR(cfg)
	if !approxEqual(s.GetLR(), 0.004) {
		t.Errorf("start lr = %v, want 0.004", s.GetLR())
	}
}
