package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

func TestEstimateHealth(t *testing.T) {
	profile := &domain.EquipmentProfile{
		Type: "test_rope",
		WearCurve: []domain.WearPoint{
			{Cycles: 3000, Health: 95},
			{Cycles: 6000, Health: 85},
		},
	}

	tests := []struct {
		name   string
		cycles float64
		want   float64
	}{
		{"exact curve point", 6000, 85},
		{"segment midpoint", 4500, 90},
		{"clamped below range", 0, 95},
		{"clamped above range", 50000, 85},
		{"first point exact", 3000, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateHealth(profile, tt.cycles), 1e-9)
		})
	}
}

func TestEstimateHealth_NoCurve(t *testing.T) {
	profile := &domain.EquipmentProfile{Type: "no_model"}
	assert.Equal(t, 100.0, EstimateHealth(profile, 12345))
}

func TestEstimateHealth_MultiSegment(t *testing.T) {
	profile := &domain.EquipmentProfile{
		WearCurve: []domain.WearPoint{
			{Cycles: 0, Health: 100},
			{Cycles: 9000, Health: 70},
			{Cycles: 12000, Health: 50},
		},
	}
	assert.InDelta(t, 60.0, EstimateHealth(profile, 10500), 1e-9)
	assert.InDelta(t, 50.0, EstimateHealth(profile, 12000), 1e-9)
}
