package engine

import (
	"strings"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// FailureModeScore is a ranked failure-mode candidate. The probability is a
// heuristic ranking signal, not a calibrated statistic.
type FailureModeScore struct {
	Mode           string
	Probability    float64
	WarningSignals []string
}

const maxModeProbability = 0.95

// PredictFailureMode ranks the type's catalogued failure modes against the
// live vibration and temperature readings (either may be nil) and returns
// the most likely one, or nil if the type has no catalog entries.
//
// A reading above 80% of the OEM limit boosts modes whose warning signals
// mention the matching symptom: ×1.5 for vibration, ×1.4 for heat.
func PredictFailureMode(profile *domain.EquipmentProfile, vibration, temperature *float64) *FailureModeScore {
	if len(profile.FailureModes) == 0 {
		return nil
	}

	vibHigh := vibration != nil && profile.Specs.MaxVibration > 0 &&
		*vibration > 0.8*profile.Specs.MaxVibration
	tempHigh := temperature != nil && profile.Specs.MaxTemperature > 0 &&
		*temperature > 0.8*profile.Specs.MaxTemperature

	var best *FailureModeScore
	for _, fm := range profile.FailureModes {
		p := fm.BaseProbability
		if vibHigh && signalsMention(fm.WarningSignals, "vibration") {
			p *= 1.5
		}
		if tempHigh && signalsMention(fm.WarningSignals, "heat", "temperature", "overheat") {
			p *= 1.4
		}
		if p > maxModeProbability {
			p = maxModeProbability
		}
		if best == nil || p > best.Probability {
			best = &FailureModeScore{Mode: fm.Name, Probability: p, WarningSignals: fm.WarningSignals}
		}
	}
	return best
}

func signalsMention(signals []string, terms ...string) bool {
	for _, s := range signals {
		ls := strings.ToLower(s)
		for _, t := range terms {
			if strings.Contains(ls, t) {
				return true
			}
		}
	}
	return false
}
