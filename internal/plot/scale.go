package plot

import (
	"math"
	"strconv"
)

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects v into the range. A degenerate domain maps everything to the
// middle of the range.
func (s Linear) Map(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	span := s.D1 - s.D0
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/span*(s.R1-s.R0)
}

// Ticks returns roughly count human-friendly values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	i1, i2, inc := tickSpec(lo, hi, float64(count))
	if i2 < i1 {
		return nil
	}
	out := make([]float64, 0, i2-i1+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			out = append(out, float64(i)/-inc)
		} else {
			out = append(out, float64(i)*inc)
		}
	}
	return out
}

// TickFormat formats ticks with just enough decimals for the tick step.
func (s Linear) TickFormat(count int) func(float64) string {
	ticks := s.Ticks(count)
	decimals := 0
	if len(ticks) > 1 {
		step := math.Abs(ticks[1] - ticks[0])
		if step > 0 && step < 1 {
			decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
		}
	}
	return func(v float64) string {
		if v == 0 {
			v = 0 // drop negative zero
		}
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec picks a step of 1, 2 or 5 times a power of ten. A negative inc is
// the reciprocal step, which keeps fractional ticks exact.
func tickSpec(start, stop, count float64) (i1, i2 int, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = int(math.Round(start * inc))
		i2 = int(math.Round(stop * inc))
		if float64(i1)/inc < start {
			i1++
		}
		if float64(i2)/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = int(math.Round(start / inc))
		i2 = int(math.Round(stop / inc))
		if float64(i1)*inc < start {
			i1++
		}
		if float64(i2)*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}
