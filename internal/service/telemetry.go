package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReadingService persists live equipment telemetry arriving over MQTT.
type ReadingService struct {
	db *sqlx.DB
}

// FromMQTT ingests one telemetry payload published on fleet/telemetry.
func (s *ReadingService) FromMQTT(topic string, payload []byte) error {
	var r struct {
		AssetID        string    `json:"asset_id"`
		EquipmentID    string    `json:"equipment_id"`
		Timestamp      time.Time `json:"timestamp"`
		OperatingHours float64   `json:"operating_hours"`
		CycleCount     *float64  `json:"cycle_count"`
		Temperature    *float64  `json:"temperature"`
		Vibration      *float64  `json:"vibration"`
	}
	if err := json.Unmarshal(payload, &r); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO equipment_readings(id, asset_id, equipment_id, recorded_at, operating_hours, cycle_count, temperature, vibration)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		uuid.NewString(), r.AssetID, r.EquipmentID, r.Timestamp,
		r.OperatingHours, r.CycleCount, r.Temperature, r.Vibration)
	return err
}
