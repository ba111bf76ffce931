// Package model defines the calculator inputs, results and billing line items.
package model

// Params is the full set of calculator inputs. Percentages are expressed 0-100.
// Params is comparable and is used directly as a cache key.
type Params struct {
	PatientCount                int     `json:"patient_count" yaml:"patient_count" toml:"patient_count"`
	CCMParticipation            float64 `json:"ccm_participation" yaml:"ccm_participation" toml:"ccm_participation"`
	RPMParticipation            float64 `json:"rpm_participation" yaml:"rpm_participation" toml:"rpm_participation"`
	Add20MinPercentage          float64 `json:"add_20min_percentage" yaml:"add_20min_percentage" toml:"add_20min_percentage"`
	Add20MinTwicePercentage     float64 `json:"add_20min_twice_percentage" yaml:"add_20min_twice_percentage" toml:"add_20min_twice_percentage"`
	ComplexCCMPercentage        float64 `json:"complex_ccm_percentage" yaml:"complex_ccm_percentage" toml:"complex_ccm_percentage"`
	ComplexCCMAddPercentage     float64 `json:"complex_ccm_add_percentage" yaml:"complex_ccm_add_percentage" toml:"complex_ccm_add_percentage"`
	CompletedCareRate           float64 `json:"completed_care_rate" yaml:"completed_care_rate" toml:"completed_care_rate"`
	RPMDeviceReadingsPercentage float64 `json:"rpm_device_readings_percentage" yaml:"rpm_device_readings_percentage" toml:"rpm_device_readings_percentage"`
}

// DefaultParams returns the starting values of a fresh calculator.
func DefaultParams() Params {
	return Params{
		PatientCount:                100,
		CCMParticipation:            50,
		RPMParticipation:            35,
		Add20MinPercentage:          20,
		Add20MinTwicePercentage:     10,
		ComplexCCMPercentage:        3,
		ComplexCCMAddPercentage:     1,
		CompletedCareRate:           97,
		RPMDeviceReadingsPercentage: 75,
	}
}
