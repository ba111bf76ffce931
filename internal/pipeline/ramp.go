package pipeline

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/theirongolddev/carerev/internal/model"
)

// RampMonths is the length of the projected ramp series.
const RampMonths = 12

// rampRates are the enrollment steps; each lasts two months and the last
// one holds through month 12.
var rampRates = []float64{0.1, 0.25, 0.5, 0.75, 1}

// RampFactor returns the enrollment fraction for zero-based month i.
func RampFactor(i int) float64 {
	return rampRates[min(max(i, 0)/2, len(rampRates)-1)]
}

// RampStep is one row of the enrollment schedule legend.
type RampStep struct {
	FirstMonth int
	LastMonth  int
	Factor     float64
}

// Label renders the step as "Months 1-2".
func (s RampStep) Label() string {
	if s.FirstMonth == s.LastMonth {
		return fmt.Sprintf("Month %d", s.FirstMonth)
	}
	return fmt.Sprintf("Months %d-%d", s.FirstMonth, s.LastMonth)
}

// RampSchedule groups the 12 months by enrollment factor.
func RampSchedule() []RampStep {
	var steps []RampStep
	for i := range RampMonths {
		f := RampFactor(i)
		if n := len(steps); n > 0 && steps[n-1].Factor == f {
			steps[n-1].LastMonth = i + 1
			continue
		}
		steps = append(steps, RampStep{FirstMonth: i + 1, LastMonth: i + 1, Factor: f})
	}
	return steps
}

// rampPatients scales enrollment before rounding so that the full-enrollment
// months reproduce the steady-state counts exactly.
func rampPatients(patientCount int, participation, factor float64) int {
	return int(math.Round(float64(patientCount) * (participation / 100) * factor))
}

// Ramp yields the 12-month revenue series. The sequence is finite and can be
// ranged over any number of times.
func (e *Engine) Ramp(p model.Params) iter.Seq[model.RampPoint] {
	return func(yield func(model.RampPoint) bool) {
		for i := range RampMonths {
			f := RampFactor(i)
			ccm := rampPatients(p.PatientCount, p.CCMParticipation, f)
			rpm := rampPatients(p.PatientCount, p.RPMParticipation, f)
			m := e.CalculateMonthlyRevenue(ccm, rpm, p)
			pt := model.RampPoint{
				Month:   fmt.Sprintf("Month %d", i+1),
				Factor:  f,
				Revenue: m.TotalRevenue,
			}
			if !yield(pt) {
				return
			}
		}
	}
}

// ProjectRamp collects the ramp series into a slice.
func (e *Engine) ProjectRamp(p model.Params) []model.RampPoint {
	return slices.Collect(e.Ramp(p))
}

// Ramp yields the ramp series at catalog rates.
func Ramp(p model.Params) iter.Seq[model.RampPoint] {
	return defaultEngine.Ramp(p)
}

// ProjectRamp returns the ramp series at catalog rates.
func ProjectRamp(p model.Params) []model.RampPoint {
	return defaultEngine.ProjectRamp(p)
}
