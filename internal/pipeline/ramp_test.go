package pipeline

import (
	"fmt"
	"testing"

	"github.com/theirongolddev/carerev/internal/model"
)

func TestRampFactor(t *testing.T) {
	want := []float64{0.10, 0.10, 0.25, 0.25, 0.50, 0.50, 0.75, 0.75, 1.00, 1.00, 1.00, 1.00}
	for i, w := range want {
		if got := RampFactor(i); got != w {
			t.Errorf("RampFactor(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestProjectRamp_ShapeAndLabels(t *testing.T) {
	pts := ProjectRamp(model.DefaultParams())
	if len(pts) != RampMonths {
		t.Fatalf("len = %d, want %d", len(pts), RampMonths)
	}
	for i, pt := range pts {
		if want := fmt.Sprintf("Month %d", i+1); pt.Month != want {
			t.Errorf("label[%d] = %q, want %q", i, pt.Month, want)
		}
		if pt.Factor != RampFactor(i) {
			t.Errorf("factor[%d] = %v, want %v", i, pt.Factor, RampFactor(i))
		}
	}
}

func TestProjectRamp_FullEnrollmentMatchesMonthly(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 333, 5000} {
		p := model.DefaultParams()
		p.PatientCount = n
		pts := ProjectRamp(p)
		monthly := ProjectAnnual(p).MonthlyRevenue
		for i := 8; i < RampMonths; i++ {
			if pts[i].Revenue != monthly {
				t.Errorf("patients=%d month %d revenue %v != monthly %v", n, i+1, pts[i].Revenue, monthly)
			}
		}
	}
}

func TestProjectRamp_NonDecreasing(t *testing.T) {
	for _, n := range []int{1, 13, 100, 999} {
		p := model.DefaultParams()
		p.PatientCount = n
		pts := ProjectRamp(p)
		for i := 1; i < len(pts); i++ {
			if pts[i].Revenue < pts[i-1].Revenue {
				t.Errorf("patients=%d: month %d (%v) < month %d (%v)",
					n, i+1, pts[i].Revenue, i, pts[i-1].Revenue)
			}
		}
	}
}

func TestProjectRamp_DefaultFirstMonth(t *testing.T) {
	// Month 1: ccm = round(100*0.5*0.1) = 5, rpm = round(100*0.35*0.1) = round(3.5) = 4.
	pts := ProjectRamp(model.DefaultParams())
	want := CalculateMonthlyRevenue(5, 4, model.DefaultParams()).TotalRevenue
	if pts[0].Revenue != want {
		t.Fatalf("month 1 revenue = %v, want %v", pts[0].Revenue, want)
	}
}

func TestRamp_IsRestartableAndStoppable(t *testing.T) {
	seq := Ramp(model.DefaultParams())

	var first, second []model.RampPoint
	for pt := range seq {
		first = append(first, pt)
	}
	for pt := range seq {
		second = append(second, pt)
	}
	if len(first) != RampMonths || len(second) != RampMonths {
		t.Fatalf("lens = %d, %d, want %d", len(first), len(second), RampMonths)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d differs between passes", i)
		}
	}

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("early break consumed %d points, want 3", n)
	}
}

func TestRampSchedule(t *testing.T) {
	steps := RampSchedule()
	want := []struct {
		label  string
		factor float64
	}{
		{"Months 1-2", 0.1},
		{"Months 3-4", 0.25},
		{"Months 5-6", 0.5},
		{"Months 7-8", 0.75},
		{"Months 9-12", 1},
	}
	if len(steps) != len(want) {
		t.Fatalf("len = %d, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].Label() != w.label || steps[i].Factor != w.factor {
			t.Errorf("step %d = %s %.2f, want %s %.2f", i, steps[i].Label(), steps[i].Factor, w.label, w.factor)
		}
	}
}
