package model

import "strconv"

// Form sections, in display order.
const (
	SectionEnrollment = "Program Enrollment"
	SectionFactors    = "Detailed Calculation Factors"
)

// Field describes one calculator input. The CLI flags, the dashboard form
// and the interactive prompt are all generated from Fields.
type Field struct {
	Key     string // flag name, e.g. "ccm-participation"
	Label   string
	Section string
	Count   bool // whole number rather than percentage
	Get     func(Params) float64
	Set     func(*Params, float64)
}

// Format renders the field's current value the way a user would type it.
func (f Field) Format(p Params) string {
	return strconv.FormatFloat(f.Get(p), 'f', -1, 64)
}

// Apply coerces raw input and stores it on p.
func (f Field) Apply(p *Params, raw string) {
	if f.Count {
		f.Set(p, float64(CoerceCount(raw)))
		return
	}
	f.Set(p, CoerceNumber(raw))
}

// Fields lists every input in form order.
var Fields = []Field{
	{
		Key: "patient-count", Label: "Total Medicare Patients", Section: SectionEnrollment, Count: true,
		Get: func(p Params) float64 { return float64(p.PatientCount) },
		Set: func(p *Params, v float64) { p.PatientCount = int(v) },
	},
	{
		Key: "ccm-participation", Label: "CCM Participation Rate (%)", Section: SectionEnrollment,
		Get: func(p Params) float64 { return p.CCMParticipation },
		Set: func(p *Params, v float64) { p.CCMParticipation = v },
	},
	{
		Key: "rpm-participation", Label: "RPM Participation Rate (%)", Section: SectionEnrollment,
		Get: func(p Params) float64 { return p.RPMParticipation },
		Set: func(p *Params, v float64) { p.RPMParticipation = v },
	},
	{
		Key: "add-20min", Label: "Additional 20 min (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.Add20MinPercentage },
		Set: func(p *Params, v float64) { p.Add20MinPercentage = v },
	},
	{
		Key: "add-20min-twice", Label: "Additional 20 min twice (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.Add20MinTwicePercentage },
		Set: func(p *Params, v float64) { p.Add20MinTwicePercentage = v },
	},
	{
		Key: "complex-ccm", Label: "Complex CCM (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.ComplexCCMPercentage },
		Set: func(p *Params, v float64) { p.ComplexCCMPercentage = v },
	},
	{
		Key: "complex-ccm-add", Label: "Complex CCM additional (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.ComplexCCMAddPercentage },
		Set: func(p *Params, v float64) { p.ComplexCCMAddPercentage = v },
	},
	{
		Key: "completed-care-rate", Label: "Completed Care Rate (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.CompletedCareRate },
		Set: func(p *Params, v float64) { p.CompletedCareRate = v },
	},
	{
		Key: "rpm-device-readings", Label: "RPM Device Readings (%)", Section: SectionFactors,
		Get: func(p Params) float64 { return p.RPMDeviceReadingsPercentage },
		Set: func(p *Params, v float64) { p.RPMDeviceReadingsPercentage = v },
	},
}

// FieldByKey returns the field with the given key, or ok=false.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
