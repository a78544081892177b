package history

import (
	"github.com/jmoiron/sqlx"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// PostgresProvider serves equipment history from the maintenance database.
// Schema: see scripts/schema.sql.
type PostgresProvider struct {
	db *sqlx.DB
}

func NewPostgresProvider(db *sqlx.DB) *PostgresProvider {
	return &PostgresProvider{db: db}
}

func (p *PostgresProvider) History(assetID, equipmentID string) (domain.EquipmentHistory, error) {
	var h domain.EquipmentHistory
	err := p.db.Select(&h.WorkOrders,
		`SELECT id, asset_id, equipment_id, kind, issue, opened_at, closed_at,
		        labor_hours, parts_cost, downtime_hours, unplanned
		   FROM work_orders
		  WHERE asset_id = $1 AND equipment_id = $2
		  ORDER BY opened_at DESC`, assetID, equipmentID)
	if err != nil {
		return h, err
	}
	err = p.db.Select(&h.Inspections,
		`SELECT id, asset_id, equipment_id, inspected_at, inspector, finding, severity
		   FROM inspections
		  WHERE asset_id = $1 AND equipment_id = $2
		  ORDER BY inspected_at DESC`, assetID, equipmentID)
	if err != nil {
		return h, err
	}
	err = p.db.Select(&h.OilAnalyses,
		`SELECT id, asset_id, equipment_id, sampled_at, iron_ppm, viscosity_cst, water_pct, verdict
		   FROM oil_analyses
		  WHERE asset_id = $1 AND equipment_id = $2
		  ORDER BY sampled_at DESC`, assetID, equipmentID)
	return h, err
}
