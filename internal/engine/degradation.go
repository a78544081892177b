package engine

import (
	"time"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

const (
	historicalPoints = 11
	projectedPoints  = 5

	// projectionPessimism inflates the observed degradation rate for the
	// forward points so the chart errs toward earlier intervention.
	projectionPessimism = 1.2
)

// buildDegradationCurve produces the "where we've been / where we're headed"
// series: 11 historical points from fully healthy down to the current
// health, then 5 projected points extrapolating the observed rate. This is a
// deterministic chart series, not a statistical forecast.
func buildDegradationCurve(currentHealth, operatingHours float64, profile *domain.EquipmentProfile, now time.Time) []domain.DegradationPoint {
	points := make([]domain.DegradationPoint, 0, historicalPoints+projectedPoints)

	for i := 0; i < historicalPoints; i++ {
		frac := float64(i) / float64(historicalPoints-1)
		points = append(points, domain.DegradationPoint{
			Timestamp: now.AddDate(0, 0, -(historicalPoints - 1 - i)),
			Health:    100 - (100-currentHealth)*frac,
			Projected: false,
		})
	}

	// Degradation rate per operating hour; flat projection when the item
	// has no recorded hours yet.
	var rate float64
	if operatingHours > 0 {
		rate = (100 - currentHealth) / operatingHours * projectionPessimism
	}
	stepHours := (profile.Specs.MaxOperatingHours - operatingHours) / 10
	if stepHours < 0 {
		stepHours = 0
	}

	for i := 1; i <= projectedPoints; i++ {
		health := currentHealth - rate*stepHours*float64(i)
		if health < 0 {
			health = 0
		}
		points = append(points, domain.DegradationPoint{
			Timestamp: now.AddDate(0, i, 0),
			Health:    health,
			Projected: true,
		})
	}

	return points
}
