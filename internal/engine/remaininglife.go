package engine

import "github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"

// hoursPerWeek is the threshold above which remaining hours are reported in
// days instead of hours.
const hoursPerWeek = 168

// CalculateRemainingLife estimates remaining useful life. Policies are tried
// in order, first match wins:
//
//  1. cycle budget, when cycle data and an OEM cycle life exist;
//  2. hour budget derated by health, when the OEM rates operating hours —
//     nominally young equipment that is already degraded is flagged early;
//  3. a health-proportional fallback when the OEM publishes neither.
func CalculateRemainingLife(profile *domain.EquipmentProfile, health, operatingHours float64, cycleCount *float64) domain.RemainingLife {
	specs := profile.Specs

	if cycleCount != nil && specs.ExpectedLifeCycles > 0 {
		remaining := specs.ExpectedLifeCycles - *cycleCount
		if remaining < 0 {
			remaining = 0
		}
		return domain.RemainingLife{
			Value:            remaining,
			Unit:             "cycles",
			PercentRemaining: remaining / specs.ExpectedLifeCycles * 100,
		}
	}

	if specs.MaxOperatingHours > 0 {
		nominal := specs.MaxOperatingHours - operatingHours
		if nominal < 0 {
			nominal = 0
		}
		derated := nominal * (health / 100)
		if derated > hoursPerWeek {
			return domain.RemainingLife{
				Value:            derated / 24,
				Unit:             "days",
				PercentRemaining: derated / specs.MaxOperatingHours * 100,
			}
		}
		return domain.RemainingLife{
			Value:            derated,
			Unit:             "hours",
			PercentRemaining: derated / specs.MaxOperatingHours * 100,
		}
	}

	return domain.RemainingLife{
		Value:            health / 100 * 1000 / 24,
		Unit:             "days",
		PercentRemaining: health,
	}
}
