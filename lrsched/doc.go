// Package lrsched exposes learning rate schedulers for training loops.
//
// A scheduler is read before each training step and advanced after it:
//
//	s := lrsched.CosineAnnealingLR(0.1, 0.001, 50, 0)
//	for epoch := 0; epoch < 100; epoch++ {
//		lr := s.GetLR()
//		loss := train(lr)
//		s.Step(loss)
//	}
//
// Schedulers can also be described in YAML or JSON and built with Load:
//
//	kind: one_cycle
//	max_lr: 0.1
//	total_steps: 1000
//
// Only ReduceLROnPlateau looks at the metric passed to Step. Every other
// scheduler accepts an init step so training can resume mid-schedule.
package lrsched
