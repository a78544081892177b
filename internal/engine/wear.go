package engine

import "github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"

// EstimateHealth interpolates the type's wear curve piecewise-linearly to a
// health percentage for the given cycle count. Outside the curve's range the
// endpoint health is returned, never extrapolated. A type without a wear
// curve has no wear model and reads as fully healthy.
func EstimateHealth(profile *domain.EquipmentProfile, cycleCount float64) float64 {
	curve := profile.WearCurve
	if len(curve) == 0 {
		return 100
	}
	if cycleCount <= curve[0].Cycles {
		return curve[0].Health
	}
	last := curve[len(curve)-1]
	if cycleCount >= last.Cycles {
		return last.Health
	}
	for i := 0; i < len(curve)-1; i++ {
		lo, hi := curve[i], curve[i+1]
		if cycleCount <= hi.Cycles {
			frac := (cycleCount - lo.Cycles) / (hi.Cycles - lo.Cycles)
			return lo.Health - frac*(lo.Health-hi.Health)
		}
	}
	return last.Health
}
