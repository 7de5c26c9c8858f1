package scale

import "math"

// NiceStep rounds a raw step to 1, 2, 2.5 or 5 times a power of ten.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 2.5:
		return 2.5 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// NiceTicks returns roughly n evenly spaced round values inside [lo, hi].
// Falls back to {lo, hi} for degenerate input.
func NiceTicks(lo, hi float64, n int) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if n < 2 || hi == lo {
		return []float64{lo, hi}
	}
	step := NiceStep((hi - lo) / float64(n-1))
	if step == 0 {
		return []float64{lo, hi}
	}
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for v := start; v <= hi+step*1e-9; v += step {
		// snap away float drift like 0.30000000000000004
		ticks = append(ticks, math.Round(v/step)*step)
	}
	if len(ticks) == 0 {
		return []float64{lo, hi}
	}
	return ticks
}
