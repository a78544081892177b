package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

func TestBuildPrediction_Fields(t *testing.T) {
	in := fullReasoningInput()
	life := CalculateRemainingLife(in.profile, in.health, in.item.OperatingHours, in.item.CycleCount)
	p := buildPrediction(in, life, domain.PriorityCritical)

	assert.Equal(t, "w1", p.EquipmentID)
	assert.Equal(t, domain.PriorityCritical, p.Priority)
	assert.Contains(t, p.Title, "Hoist winch")
	assert.Equal(t, "bearing wear", p.PredictedIssue)
	assert.Contains(t, p.RecommendedAction, "gearbox oil change")
	assert.Equal(t, "within 48 hours", p.MaintenanceWindow)
	assert.NotEmpty(t, p.AlternativeActions)
	assert.NotEmpty(t, p.CostOfInaction)

	// Cost and downtime band around the historical record.
	assert.Greater(t, p.RepairCost.Max, p.RepairCost.Min)
	assert.GreaterOrEqual(t, p.Downtime.Max, p.Downtime.Min)
}

func TestBuildPrediction_ConfidenceTracksSignals(t *testing.T) {
	profile := &domain.EquipmentProfile{Type: "pump", Manufacturer: "Acme", Model: "P-1"}
	bare := reasoningInput{
		item:    domain.EquipmentInstance{ID: "p1", Name: "Pump", Type: "pump", OperatingHours: 100},
		profile: profile,
		health:  92,
	}
	life := CalculateRemainingLife(profile, 92, 100, nil)

	assert.InDelta(t, 70, predictionConfidence(bare), 1e-9)

	rich := fullReasoningInput()
	// cycle data +10, vibration +5, temperature +5, history +5.
	assert.InDelta(t, 95, predictionConfidence(rich), 1e-9)

	withOverride := bare
	withOverride.override = &domain.KnownIssue{Issue: "x", Status: "open"}
	assert.InDelta(t, 95, predictionConfidence(withOverride), 1e-9)

	p := buildPrediction(bare, life, domain.PriorityLow)
	assert.Equal(t, "at next scheduled service", p.MaintenanceWindow)
	assert.Equal(t, "general wear and tear", p.PredictedIssue)
}

func TestEstimateRepairCost_DefaultsScaleWithPriority(t *testing.T) {
	profile := &domain.EquipmentProfile{Type: "pump"}
	in := reasoningInput{
		item:    domain.EquipmentInstance{ID: "p1", Name: "Pump", Type: "pump"},
		profile: profile,
	}

	critical := estimateRepairCost(in, domain.PriorityCritical)
	low := estimateRepairCost(in, domain.PriorityLow)
	assert.Greater(t, critical.Min, low.Min)
	assert.Greater(t, critical.Max, low.Max)
}
