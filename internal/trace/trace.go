// Package trace records learning rate schedules as they are consumed and
// exports them for inspection.
package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/lrsched/internal/opt"
)

// Point is one consumed step: the rate the step trained with and the metric
// it produced.
type Point struct {
	Step   int
	LR     float64
	Metric float64
}

// Recorder wraps a scheduler and keeps every step it advances through.
type Recorder struct {
	scheduler opt.Scheduler
	logger    *zap.Logger
	points    []Point
}

// NewRecorder creates a Recorder around s. A nil logger disables logging.
func NewRecorder(s opt.Scheduler, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{scheduler: s, logger: logger}
}

// LR returns the rate for the upcoming step.
func (r *Recorder) LR() float64 {
	return r.scheduler.GetLR()
}

// Step records the upcoming rate with metric and advances the scheduler.
func (r *Recorder) Step(metric float64) {
	p := Point{
		Step:   len(r.points),
		LR:     r.scheduler.GetLR(),
		Metric: metric,
	}
	r.points = append(r.points, p)
	r.scheduler.Step(metric)

	r.logger.Debug("step",
		zap.Int("step", p.Step),
		zap.Float64("lr", p.LR),
		zap.Float64("metric", p.Metric),
		zap.Float64("next_lr", r.scheduler.GetLR()))
}

// Points returns a copy of the recorded steps.
func (r *Recorder) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// LRs returns the recorded rates in step order.
func (r *Recorder) LRs() []float64 {
	lrs := make([]float64, len(r.points))
	for i, p := range r.points {
		lrs[i] = p.LR
	}
	return lrs
}

// WriteCSV writes the recorded steps with a step,lr,metric header.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "lr", "metric"}); err != nil {
		return fmt.Errorf("trace: write header: %w", err)
	}
	for _, p := range r.points {
		record := []string{
			strconv.Itoa(p.Step),
			strconv.FormatFloat(p.LR, 'g', -1, 64),
			strconv.FormatFloat(p.Metric, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("trace: write step %d: %w", p.Step, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("trace: flush: %w", err)
	}
	return nil
}

// Sample reads n successive rates from s, stepping with a zero metric after
// each read. s is advanced n times.
func Sample(s opt.Scheduler, n int) []float64 {
	if n <= 0 {
		return nil
	}
	lrs := make([]float64, n)
	for i := range lrs {
		lrs[i] = s.GetLR()
		s.Step(0)
	}
	return lrs
}

// Summary describes a sequence of rates.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Final float64
}

// Summarize computes the summary of lrs. An empty input yields the zero Summary.
func Summarize(lrs []float64) Summary {
	if len(lrs) == 0 {
		return Summary{}
	}
	return Summary{
		Min:   floats.Min(lrs),
		Max:   floats.Max(lrs),
		Mean:  stat.Mean(lrs, nil),
		Final: lrs[len(lrs)-1],
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%.6g max=%.6g mean=%.6g final=%.6g", s.Min, s.Max, s.Mean, s.Final)
}
