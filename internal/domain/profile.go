package domain

// WearPoint is one point on an OEM wear curve: after Cycles load cycles the
// equipment is expected to be at Health percent.
type WearPoint struct {
	Cycles float64 `json:"cycles" yaml:"cycles"`
	Health float64 `json:"health" yaml:"health"`
}

// FailureMode is an OEM-catalogued way the equipment type fails.
type FailureMode struct {
	Name            string   `json:"name" yaml:"name"`
	BaseProbability float64  `json:"base_probability" yaml:"base_probability"`
	WarningSignals  []string `json:"warning_signals" yaml:"warning_signals"`
	MTBFHours       float64  `json:"mtbf_hours" yaml:"mtbf_hours"`
}

// MaintenanceTask is a scheduled OEM maintenance item for the type.
type MaintenanceTask struct {
	Name          string   `json:"name" yaml:"name"`
	IntervalHours float64  `json:"interval_hours" yaml:"interval_hours"`
	DurationHours float64  `json:"duration_hours" yaml:"duration_hours"`
	RequiredParts []string `json:"required_parts" yaml:"required_parts"`
}

// EquipmentSpecs holds the OEM rating sheet for an equipment type.
// Zero values mean the OEM does not publish that figure.
type EquipmentSpecs struct {
	RatedCapacity       float64 `json:"rated_capacity" yaml:"rated_capacity"`
	MaxOperatingHours   float64 `json:"max_operating_hours" yaml:"max_operating_hours"`
	MaintenanceInterval float64 `json:"maintenance_interval_hours" yaml:"maintenance_interval_hours"`
	ExpectedLifeCycles  float64 `json:"expected_life_cycles" yaml:"expected_life_cycles"`
	MaxTemperature      float64 `json:"max_temperature_c" yaml:"max_temperature_c"`
	MaxVibration        float64 `json:"max_vibration_mms" yaml:"max_vibration_mms"`
	MTBFHours           float64 `json:"mtbf_hours" yaml:"mtbf_hours"`
}

// EquipmentProfile is the immutable per-type reference data loaded at start.
// WearCurve points are sorted ascending by cycles with non-increasing health.
type EquipmentProfile struct {
	Type             string            `json:"type" yaml:"type"`
	Manufacturer     string            `json:"manufacturer" yaml:"manufacturer"`
	Model            string            `json:"model" yaml:"model"`
	Specs            EquipmentSpecs    `json:"specs" yaml:"specs"`
	WearCurve        []WearPoint       `json:"wear_curve" yaml:"wear_curve"`
	FailureModes     []FailureMode     `json:"failure_modes" yaml:"failure_modes"`
	MaintenanceTasks []MaintenanceTask `json:"maintenance_tasks" yaml:"maintenance_tasks"`
}
