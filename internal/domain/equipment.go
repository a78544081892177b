package domain

// EquipmentInstance is one equipment item on an asset as submitted by the
// caller for analysis. Pointer fields are sensor channels the asset may not
// report; nil means "not measured", never zero.
type EquipmentInstance struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	CurrentHealth  *float64 `json:"current_health,omitempty"`
	OperatingHours float64  `json:"operating_hours"`
	CycleCount     *float64 `json:"cycle_count,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	Vibration      *float64 `json:"vibration,omitempty"`
}

// EnvironmentData describes the conditions the asset is operating in.
type EnvironmentData struct {
	SeaState     string  `json:"sea_state,omitempty"`
	WaveHeightM  float64 `json:"wave_height_m,omitempty"`
	WindSpeedKts float64 `json:"wind_speed_kts,omitempty"`
	AirTempC     float64 `json:"air_temp_c,omitempty"`
	Humidity     float64 `json:"humidity,omitempty"`
}

// AnalysisRequest is the input to the engine's single entry point.
type AnalysisRequest struct {
	AssetType   string              `json:"asset_type"`
	AssetID     string              `json:"asset_id"`
	AssetName   string              `json:"asset_name"`
	Equipment   []EquipmentInstance `json:"equipment"`
	Environment *EnvironmentData    `json:"environment,omitempty"`
}

// IssuePrediction is the maintenance guidance attached to a known issue.
type IssuePrediction struct {
	PredictedIssue    string   `json:"predicted_issue"`
	Priority          Priority `json:"priority"`
	WarningSignals    []string `json:"warning_signals,omitempty"`
	RecommendedAction string   `json:"recommended_action"`
}

// KnownIssue is an authoritative, externally supplied status for a specific
// equipment item. It takes precedence over computed heuristics.
type KnownIssue struct {
	Issue       string           `json:"issue"`
	Status      string           `json:"status"`
	HealthScore *float64         `json:"health_score,omitempty"`
	Prediction  *IssuePrediction `json:"pm_prediction,omitempty"`
}
