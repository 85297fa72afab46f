package sim

import (
	"fmt"
	"math"
)

// KernelShape holds the fixed shape constants of the response kernel.
// It is passed explicitly so runs with different shapes can coexist;
// there is no process-wide mutable shape state.
type KernelShape struct {
	Gamma float64 // rise exponent of the unimodal curve
	Alpha float64 // decay coefficient (per tau-normalized minute)
}

// DefaultKernelShape is the calibrated shape used by the T2D generator.
func DefaultKernelShape() KernelShape {
	return KernelShape{Gamma: 2.0, Alpha: 0.72}
}

// KernelParams fully determines one rendered event contribution.
type KernelParams struct {
	Delay int     // onset delay in minutes; the kernel is 0 before it
	Tau   float64 // decay time constant in minutes, must be > 0
	Peak  float64 // magnitude scale (mg/dL-ish units)
	Gain  float64 // extra multiplicative factor, 1.0 when unused
}

// Validate reports ErrInvalidArgument for parameters the kernel cannot
// evaluate.
func (p KernelParams) Validate() error {
	if p.Tau <= 0 {
		return fmt.Errorf("%w: kernel tau must be > 0, got %v", ErrInvalidArgument, p.Tau)
	}
	if p.Delay < 0 {
		return fmt.Errorf("%w: kernel delay must be >= 0, got %d", ErrInvalidArgument, p.Delay)
	}
	return nil
}

// At evaluates the response kernel t minutes after the event trigger.
// Returns 0 for t < Delay; afterwards a unimodal rise-then-decay curve
//
//	Gain * Peak * x^Gamma * exp(-Alpha*x),  x = (t-Delay)/Tau
//
// whose peak location and width are controlled by Tau and whose total
// magnitude scales with Peak*Gain. Parameters are assumed valid; callers
// outside the scheduler should go through Render.
func (s KernelShape) At(t int, p KernelParams) float64 {
	if t < p.Delay {
		return 0
	}
	x := float64(t-p.Delay) / p.Tau
	return p.Gain * p.Peak * math.Pow(x, s.Gamma) * math.Exp(-s.Alpha*x)
}

// Render evaluates the kernel over [0, window) minutes and returns the
// curve. This is the validated entry point for external callers.
func (s KernelShape) Render(p KernelParams, window int) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: kernel window must be > 0, got %d", ErrInvalidArgument, window)
	}
	curve := make([]float64, window)
	for t := range curve {
		curve[t] = s.At(t, p)
	}
	return curve, nil
}

// accumulate adds sign*kernel into buf starting at absolute minute base.
// Indices past the end of the buffer are dropped, not clamped or wrapped:
// events triggered near the end of the run are partially rendered.
func accumulate(buf GlucoseBuffer, shape KernelShape, p KernelParams, base, window int, sign float64) {
	for t := 0; t < window; t++ {
		idx := base + t
		if idx >= len(buf) {
			break
		}
		buf[idx] += sign * shape.At(t, p)
	}
}
