package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

func fp(v float64) *float64 { return &v }

func TestCalculateRemainingLife_CycleBudget(t *testing.T) {
	profile := &domain.EquipmentProfile{
		Specs: domain.EquipmentSpecs{ExpectedLifeCycles: 15000, MaxOperatingHours: 20000},
	}

	life := CalculateRemainingLife(profile, 50, 14000, fp(12000))
	assert.Equal(t, "cycles", life.Unit)
	assert.InDelta(t, 3000, life.Value, 1e-9)
	assert.InDelta(t, 20, life.PercentRemaining, 1e-9)

	// Past the rated cycles the budget floors at zero.
	life = CalculateRemainingLife(profile, 20, 14000, fp(16000))
	assert.InDelta(t, 0, life.Value, 1e-9)
	assert.InDelta(t, 0, life.PercentRemaining, 1e-9)
}

func TestCalculateRemainingLife_HourBudgetDeratedByHealth(t *testing.T) {
	profile := &domain.EquipmentProfile{
		Specs: domain.EquipmentSpecs{MaxOperatingHours: 10000},
	}

	// 5000 nominal hours remaining at 50% health derate to 2500 h,
	// which exceeds a week and is reported in days.
	life := CalculateRemainingLife(profile, 50, 5000, nil)
	assert.Equal(t, "days", life.Unit)
	assert.InDelta(t, 2500.0/24, life.Value, 1e-9)
	assert.InDelta(t, 25, life.PercentRemaining, 1e-9)

	// A short derated remainder stays in hours.
	life = CalculateRemainingLife(profile, 10, 9000, nil)
	assert.Equal(t, "hours", life.Unit)
	assert.InDelta(t, 100, life.Value, 1e-9)
}

func TestCalculateRemainingLife_HealthProportionalFallback(t *testing.T) {
	profile := &domain.EquipmentProfile{}

	life := CalculateRemainingLife(profile, 60, 4000, nil)
	assert.Equal(t, "days", life.Unit)
	assert.InDelta(t, 60.0/100*1000/24, life.Value, 1e-9)
	assert.InDelta(t, 60, life.PercentRemaining, 1e-9)
}

func TestCalculateRemainingLife_CyclePolicyWinsOverHours(t *testing.T) {
	profile := &domain.EquipmentProfile{
		Specs: domain.EquipmentSpecs{ExpectedLifeCycles: 1000, MaxOperatingHours: 50000},
	}
	life := CalculateRemainingLife(profile, 80, 100, fp(400))
	assert.Equal(t, "cycles", life.Unit)
	assert.InDelta(t, 600, life.Value, 1e-9)
}
