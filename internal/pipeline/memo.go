package pipeline

import "github.com/theirongolddev/carerev/internal/model"

// Projection bundles everything derived from one Params value.
type Projection struct {
	Params    model.Params
	Result    model.RevenueResult
	Ramp      []model.RampPoint
	LineItems []model.LineItem
}

// Project computes the full projection for p.
func (e *Engine) Project(p model.Params) Projection {
	ccm, rpm := Enrollment(p)
	return Projection{
		Params:    p,
		Result:    e.ProjectAnnual(p),
		Ramp:      e.ProjectRamp(p),
		LineItems: e.Breakdown(ccm, rpm, p),
	}
}

// Memo caches the last projection keyed by the full parameter set, so
// repeated renders with unchanged inputs do not recompute.
// A Memo is not safe for concurrent use.
type Memo struct {
	engine *Engine
	valid  bool
	last   Projection
	misses int
}

// NewMemo returns a memo over e. A nil engine uses catalog rates.
func NewMemo(e *Engine) *Memo {
	if e == nil {
		e = defaultEngine
	}
	return &Memo{engine: e}
}

// Get returns the projection for p, recomputing only when p changed.
func (m *Memo) Get(p model.Params) Projection {
	if m.valid && m.last.Params == p {
		return m.last
	}
	m.last = m.engine.Project(p)
	m.valid = true
	m.misses++
	return m.last
}

// Computations reports how many times Get had to recompute.
func (m *Memo) Computations() int { return m.misses }
