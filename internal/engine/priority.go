package engine

import "github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"

// highProbabilityThreshold is the failure-mode probability above which an
// item is promoted straight to critical.
const highProbabilityThreshold = 0.5

// ClassifyPriority applies the deterministic threshold ladder, top-down,
// first match wins. All comparisons are strict so boundary values fall to
// the less severe tier.
func ClassifyPriority(health, remainingLifePercent float64, highProbabilityFailureMode bool) domain.Priority {
	switch {
	case health < 30 || remainingLifePercent < 10 || highProbabilityFailureMode:
		return domain.PriorityCritical
	case health < 50 || remainingLifePercent < 25:
		return domain.PriorityHigh
	case health < 70 || remainingLifePercent < 50:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
