// Package pipeline computes CCM and RPM revenue projections.
package pipeline

import (
	"math"

	"github.com/theirongolddev/carerev/internal/config"
	"github.com/theirongolddev/carerev/internal/model"
)

// Engine evaluates projections against a rate table.
type Engine struct {
	rates config.RateTable
	ccm   []config.BillingCode
	rpm   []config.BillingCode
}

// NewEngine returns an engine that bills at the given rates.
// A nil table means catalog rates.
func NewEngine(rates config.RateTable) *Engine {
	if rates == nil {
		rates = config.DefaultRates()
	}
	e := &Engine{
		rates: rates,
		ccm:   config.CCMCodes(),
		rpm:   config.RPMCodes(),
	}
	for i := range e.ccm {
		e.ccm[i].Rate = rates.Rate(e.ccm[i].Code)
	}
	for i := range e.rpm {
		e.rpm[i].Rate = rates.Rate(e.rpm[i].Code)
	}
	return e
}

var defaultEngine = NewEngine(nil)

// Rates returns the engine's rate table.
func (e *Engine) Rates() config.RateTable { return e.rates }

// Codes returns the catalogs as billed by this engine (effective rates).
func (e *Engine) Codes() []config.BillingCode {
	out := make([]config.BillingCode, 0, len(e.ccm)+len(e.rpm))
	out = append(out, e.ccm...)
	return append(out, e.rpm...)
}

// share returns round(base * pct/100), rounding half away from zero.
func share(base int, pct float64) int {
	return int(math.Round(float64(base) * (pct / 100)))
}

func (e *Engine) item(c config.BillingCode, patients, units int) model.LineItem {
	return model.LineItem{
		Code:        c.Code,
		Description: c.Description,
		Program:     c.Program,
		Patients:    patients,
		Units:       units,
		Rate:        c.Rate,
		Amount:      float64(patients) * c.Rate * float64(units),
	}
}

// Breakdown returns the billed line items for one month, CCM first, in
// accumulation order. Add-on slices are independent shares of the completed
// population, not a partition of it.
func (e *Engine) Breakdown(ccmPatients, rpmPatients int, p model.Params) []model.LineItem {
	completedCCM := share(ccmPatients, p.CompletedCareRate)
	completedRPM := share(rpmPatients, p.CompletedCareRate)

	c99490, c99439, c99487, c99489 := e.ccm[0], e.ccm[1], e.ccm[2], e.ccm[3]
	r99453, r99454, r99457, r99458 := e.rpm[0], e.rpm[1], e.rpm[2], e.rpm[3]

	return []model.LineItem{
		e.item(c99490, completedCCM, 1),
		e.item(c99439, share(completedCCM, p.Add20MinPercentage), 1),
		e.item(c99439, share(completedCCM, p.Add20MinTwicePercentage), 2),
		e.item(c99487, share(completedCCM, p.ComplexCCMPercentage), 1),
		e.item(c99489, share(completedCCM, p.ComplexCCMAddPercentage), 1),

		e.item(r99453, completedRPM, 1),
		e.item(r99454, share(completedRPM, p.RPMDeviceReadingsPercentage), 1),
		e.item(r99457, completedRPM, 1),
		// 99458 reuses the CCM add-on share as a shared assumption.
		e.item(r99458, share(completedRPM, p.Add20MinPercentage), 1),
	}
}

// SumLineItems totals line items per program in slice order.
func SumLineItems(items []model.LineItem) model.MonthlyRevenue {
	var m model.MonthlyRevenue
	for _, it := range items {
		switch it.Program {
		case model.ProgramCCM:
			m.CCMRevenue += it.Amount
		case model.ProgramRPM:
			m.RPMRevenue += it.Amount
		}
	}
	m.TotalRevenue = m.CCMRevenue + m.RPMRevenue
	return m
}

// CalculateMonthlyRevenue computes one month of revenue for the given
// enrolled patient counts.
func (e *Engine) CalculateMonthlyRevenue(ccmPatients, rpmPatients int, p model.Params) model.MonthlyRevenue {
	return SumLineItems(e.Breakdown(ccmPatients, rpmPatients, p))
}

// Enrollment returns the steady-state enrolled patient counts.
func Enrollment(p model.Params) (ccmPatients, rpmPatients int) {
	return share(p.PatientCount, p.CCMParticipation), share(p.PatientCount, p.RPMParticipation)
}

// ProjectAnnual computes the steady-state monthly and annual projection.
func (e *Engine) ProjectAnnual(p model.Params) model.RevenueResult {
	ccmPatients, rpmPatients := Enrollment(p)
	m := e.CalculateMonthlyRevenue(ccmPatients, rpmPatients, p)

	return model.RevenueResult{
		CCMPatients:    ccmPatients,
		RPMPatients:    rpmPatients,
		CCMRevenue:     m.CCMRevenue,
		RPMRevenue:     m.RPMRevenue,
		MonthlyRevenue: m.TotalRevenue,
		AnnualRevenue:  m.TotalRevenue * 12,
	}
}

// Breakdown returns line items at catalog rates.
func Breakdown(ccmPatients, rpmPatients int, p model.Params) []model.LineItem {
	return defaultEngine.Breakdown(ccmPatients, rpmPatients, p)
}

// CalculateMonthlyRevenue computes one month of revenue at catalog rates.
func CalculateMonthlyRevenue(ccmPatients, rpmPatients int, p model.Params) model.MonthlyRevenue {
	return defaultEngine.CalculateMonthlyRevenue(ccmPatients, rpmPatients, p)
}

// ProjectAnnual computes the steady-state projection at catalog rates.
func ProjectAnnual(p model.Params) model.RevenueResult {
	return defaultEngine.ProjectAnnual(p)
}
