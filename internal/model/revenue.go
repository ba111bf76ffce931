package model

// Program identifies a Medicare billing program.
type Program string

// Supported billing programs.
const (
	ProgramCCM Program = "CCM"
	ProgramRPM Program = "RPM"
)

// MonthlyRevenue is the revenue for one month at a given enrollment.
type MonthlyRevenue struct {
	CCMRevenue   float64 `json:"ccm_revenue" yaml:"ccm_revenue"`
	RPMRevenue   float64 `json:"rpm_revenue" yaml:"rpm_revenue"`
	TotalRevenue float64 `json:"total_revenue" yaml:"total_revenue"`
}

// RevenueResult is the steady-state projection derived from a Params value.
type RevenueResult struct {
	CCMPatients    int     `json:"ccm_patients" yaml:"ccm_patients"`
	RPMPatients    int     `json:"rpm_patients" yaml:"rpm_patients"`
	CCMRevenue     float64 `json:"ccm_revenue" yaml:"ccm_revenue"`
	RPMRevenue     float64 `json:"rpm_revenue" yaml:"rpm_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue" yaml:"monthly_revenue"`
	AnnualRevenue  float64 `json:"annual_revenue" yaml:"annual_revenue"`
}

// RampPoint is one month of the enrollment ramp series.
type RampPoint struct {
	Month   string  `json:"month" yaml:"month"`
	Factor  float64 `json:"factor" yaml:"factor"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}

// LineItem is one billed code within a month.
// Amount is Patients * Rate * Units.
type LineItem struct {
	Code        string  `json:"code" yaml:"code"`
	Description string  `json:"description" yaml:"description"`
	Program     Program `json:"program" yaml:"program"`
	Patients    int     `json:"patients" yaml:"patients"`
	Units       int     `json:"units" yaml:"units"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Amount      float64 `json:"amount" yaml:"amount"`
}
