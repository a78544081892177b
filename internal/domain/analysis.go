package domain

import "time"

// Priority is the maintenance urgency tier of a prediction.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the fixed sort order for priorities, most urgent first.
// Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// SourceKind identifies one of the eight data sources the engine fuses.
type SourceKind string

const (
	SourceTelemetry   SourceKind = "live_telemetry"
	SourceOEM         SourceKind = "oem_specs"
	SourceHistory     SourceKind = "work_order_history"
	SourceFleet       SourceKind = "fleet_patterns"
	SourceEnvironment SourceKind = "environment"
	SourceInspection  SourceKind = "inspection_records"
	SourceOilAnalysis SourceKind = "oil_analysis"
	SourceStandards   SourceKind = "industry_standards"
)

// ReasoningStep is one source-attributed statement in the evidence chain.
// Confidence is 0-100. IsKey marks the decisive evidence for the prediction.
type ReasoningStep struct {
	EquipmentID string     `json:"equipment_id"`
	Source      SourceKind `json:"source"`
	Statement   string     `json:"statement"`
	Confidence  float64    `json:"confidence"`
	IsKey       bool       `json:"is_key,omitempty"`
}

// DataPoint is a labeled value inside a source contribution.
type DataPoint struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SourceContribution summarizes what one source contributed to the analysis.
// Relevance is 0-100 and fixed per source kind.
type SourceContribution struct {
	Source     SourceKind  `json:"source"`
	Summary    string      `json:"summary"`
	Relevance  float64     `json:"relevance"`
	DataPoints []DataPoint `json:"data_points"`
}

// DegradationPoint is one sample of the historical-plus-projected health
// series used for charting.
type DegradationPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Health    float64   `json:"health"`
	Projected bool      `json:"is_projected"`
}

// RemainingLife is the engine's remaining-useful-life estimate.
type RemainingLife struct {
	Value            float64 `json:"value"`
	Unit             string  `json:"unit"` // hours | days | cycles
	PercentRemaining float64 `json:"percent_remaining"`
}

// CostRange is a money band in the operator's currency.
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// HoursRange is a duration band in hours.
type HoursRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Prediction is the per-equipment-item output of one analysis.
type Prediction struct {
	EquipmentID        string        `json:"equipment_id"`
	EquipmentName      string        `json:"equipment_name"`
	EquipmentType      string        `json:"equipment_type"`
	Priority           Priority      `json:"priority"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	PredictedIssue     string        `json:"predicted_issue"`
	HealthScore        float64       `json:"health_score"`
	RemainingLife      RemainingLife `json:"remaining_life"`
	Confidence         float64       `json:"confidence"`
	RecommendedAction  string        `json:"recommended_action"`
	AlternativeActions []string      `json:"alternative_actions,omitempty"`
	CostOfInaction     string        `json:"cost_of_inaction"`
	RepairCost         CostRange     `json:"repair_cost"`
	Downtime           HoursRange    `json:"downtime"`
	PartsRequired      []string      `json:"parts_required,omitempty"`
	MaintenanceWindow  string        `json:"maintenance_window"`
}

// Analysis is the root result for one asset.
type Analysis struct {
	AssetID             string               `json:"asset_id"`
	AssetName           string               `json:"asset_name"`
	AssetType           string               `json:"asset_type"`
	GeneratedAt         time.Time            `json:"generated_at"`
	Predictions         []Prediction         `json:"predictions"`
	ReasoningChain      []ReasoningStep      `json:"reasoning_chain"`
	SourceContributions []SourceContribution `json:"source_contributions"`
	DegradationCurve    []DegradationPoint   `json:"degradation_curve"`
	OverallHealthScore  float64              `json:"overall_health_score"`
	NextAnalysisAt      time.Time            `json:"next_analysis_at"`
}
