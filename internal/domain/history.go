package domain

import "time"

// WorkOrderKind classifies a work order.
type WorkOrderKind string

const (
	WorkOrderPreventive WorkOrderKind = "preventive"
	WorkOrderCorrective WorkOrderKind = "corrective"
	WorkOrderInspection WorkOrderKind = "inspection"
)

// WorkOrder is one historical maintenance event for an equipment item.
type WorkOrder struct {
	ID            string        `db:"id" json:"id"`
	AssetID       string        `db:"asset_id" json:"asset_id"`
	EquipmentID   string        `db:"equipment_id" json:"equipment_id"`
	Kind          WorkOrderKind `db:"kind" json:"kind"`
	Issue         string        `db:"issue" json:"issue"`
	OpenedAt      time.Time     `db:"opened_at" json:"opened_at"`
	ClosedAt      time.Time     `db:"closed_at" json:"closed_at"`
	LaborHours    float64       `db:"labor_hours" json:"labor_hours"`
	PartsCost     float64       `db:"parts_cost" json:"parts_cost"`
	DowntimeHours float64       `db:"downtime_hours" json:"downtime_hours"`
	Unplanned     bool          `db:"unplanned" json:"unplanned"`
}

// InspectionRecord is one survey/inspection finding for an equipment item.
type InspectionRecord struct {
	ID          string    `db:"id" json:"id"`
	AssetID     string    `db:"asset_id" json:"asset_id"`
	EquipmentID string    `db:"equipment_id" json:"equipment_id"`
	Date        time.Time `db:"inspected_at" json:"date"`
	Inspector   string    `db:"inspector" json:"inspector"`
	Finding     string    `db:"finding" json:"finding"`
	Severity    string    `db:"severity" json:"severity"`
}

// OilAnalysisRecord is one lab result for a lubricated equipment item.
type OilAnalysisRecord struct {
	ID          string    `db:"id" json:"id"`
	AssetID     string    `db:"asset_id" json:"asset_id"`
	EquipmentID string    `db:"equipment_id" json:"equipment_id"`
	Date        time.Time `db:"sampled_at" json:"date"`
	IronPPM     float64   `db:"iron_ppm" json:"iron_ppm"`
	Viscosity   float64   `db:"viscosity_cst" json:"viscosity_cst"`
	WaterPct    float64   `db:"water_pct" json:"water_pct"`
	Verdict     string    `db:"verdict" json:"verdict"`
}

// EquipmentHistory bundles everything the records provider knows about one
// (asset, equipment) pair. All slices may be empty; that is the normal case
// for young equipment, not an error.
type EquipmentHistory struct {
	WorkOrders  []WorkOrder         `json:"work_orders"`
	Inspections []InspectionRecord  `json:"inspections"`
	OilAnalyses []OilAnalysisRecord `json:"oil_analyses"`
}

// FailurePoint is the average usage at which a fleet pattern manifests.
type FailurePoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"` // hours | cycles
}

// FleetPattern is a cross-fleet statistical observation about how an
// equipment type tends to fail.
type FleetPattern struct {
	EquipmentType     string       `json:"equipment_type"`
	Pattern           string       `json:"pattern"`
	Occurrences       int          `json:"occurrences"`
	AvgFailurePoint   FailurePoint `json:"avg_failure_point"`
	AffectedAssets    []string     `json:"affected_assets"`
	RecommendedAction string       `json:"recommended_action"`
}
