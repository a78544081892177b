package engine

import (
	"fmt"
	"math"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// Fixed per-step confidence scores. Heuristic evidence-strength values, not
// probabilities.
const (
	confOverride      = 95
	confTelemetry     = 95
	confCycleRatio    = 100
	confScheduledTask = 100
	confWorkHistory   = 88
	confFleetPattern  = 82
	confVibration     = 90
	confTemperature   = 92
	confEnvironment   = 75
)

// reasoningInput collects everything the chain builder narrates for one
// equipment item.
type reasoningInput struct {
	item     domain.EquipmentInstance
	profile  *domain.EquipmentProfile
	history  domain.EquipmentHistory
	patterns []domain.FleetPattern
	env      *domain.EnvironmentData
	mode     *FailureModeScore
	health   float64
	override *domain.KnownIssue
}

// buildReasoning produces the ordered, source-attributed evidence chain for
// one equipment item. Step order is fixed; steps whose data is absent are
// skipped, which degrades richness, never correctness. An external known
// issue contributes the leading step ahead of all computed evidence.
func buildReasoning(in reasoningInput) []domain.ReasoningStep {
	var steps []domain.ReasoningStep
	add := func(source domain.SourceKind, conf float64, key bool, format string, args ...any) {
		steps = append(steps, domain.ReasoningStep{
			EquipmentID: in.item.ID,
			Source:      source,
			Statement:   fmt.Sprintf(format, args...),
			Confidence:  conf,
			IsKey:       key,
		})
	}

	if in.override != nil {
		add(domain.SourceInspection, confOverride, true,
			"known issue on record for %s: %s (status: %s); reported condition overrides computed estimates",
			in.item.Name, in.override.Issue, in.override.Status)
	}

	add(domain.SourceTelemetry, confTelemetry, false,
		"%s has logged %.0f operating hours and currently reads %.1f%% health",
		in.item.Name, in.item.OperatingHours, in.health)

	if in.item.CycleCount != nil && in.profile.Specs.ExpectedLifeCycles > 0 {
		ratio := *in.item.CycleCount / in.profile.Specs.ExpectedLifeCycles * 100
		add(domain.SourceOEM, confCycleRatio, false,
			"cycle count %.0f is %.0f%% of the OEM-rated %.0f cycles for %s %s",
			*in.item.CycleCount, ratio, in.profile.Specs.ExpectedLifeCycles,
			in.profile.Manufacturer, in.profile.Model)
	}

	if task, due := nextScheduledTask(in.profile, in.item.OperatingHours); task != nil {
		add(domain.SourceOEM, confScheduledTask, false,
			"next scheduled OEM task %q falls due in %.0f operating hours", task.Name, due)
	}

	if recent := correctiveOrders(in.history.WorkOrders); len(recent) > 0 {
		latest := recent[0]
		add(domain.SourceHistory, confWorkHistory, len(recent) >= 2,
			"%d corrective work order(s) on file; most recent: %s", len(recent), latest.Issue)
	}

	if len(in.patterns) > 0 {
		p := in.patterns[0]
		add(domain.SourceFleet, confFleetPattern, true,
			"fleet-wide pattern for %s (%d occurrences, avg failure at %.0f %s): %s",
			p.EquipmentType, p.Occurrences, p.AvgFailurePoint.Value, p.AvgFailurePoint.Unit, p.Pattern)
	}

	if in.item.Vibration != nil && in.profile.Specs.MaxVibration > 0 {
		ratio := *in.item.Vibration / in.profile.Specs.MaxVibration
		add(domain.SourceTelemetry, confVibration, ratio > 0.8,
			"vibration %.1f mm/s is %.0f%% of the %.1f mm/s OEM limit",
			*in.item.Vibration, ratio*100, in.profile.Specs.MaxVibration)
	}

	if in.item.Temperature != nil && in.profile.Specs.MaxTemperature > 0 {
		ratio := *in.item.Temperature / in.profile.Specs.MaxTemperature
		add(domain.SourceTelemetry, confTemperature, false,
			"temperature %.1f°C is %.0f%% of the %.1f°C OEM limit",
			*in.item.Temperature, ratio*100, in.profile.Specs.MaxTemperature)
	}

	if in.env != nil && in.env.SeaState != "" {
		add(domain.SourceEnvironment, confEnvironment, false,
			"operating in sea state %s (wave height %.1f m, wind %.0f kts), which accelerates structural loading",
			in.env.SeaState, in.env.WaveHeightM, in.env.WindSpeedKts)
	}

	if in.mode != nil {
		add(domain.SourceOEM, in.mode.Probability*100, true,
			"most likely failure mode is %q at %.0f%% probability", in.mode.Mode, in.mode.Probability*100)
	}

	return steps
}

// nextScheduledTask finds the OEM task due soonest given the current
// operating hours, or nil if the type has no scheduled tasks.
func nextScheduledTask(profile *domain.EquipmentProfile, operatingHours float64) (*domain.MaintenanceTask, float64) {
	var best *domain.MaintenanceTask
	var bestDue float64
	for i := range profile.MaintenanceTasks {
		t := &profile.MaintenanceTasks[i]
		if t.IntervalHours <= 0 {
			continue
		}
		due := t.IntervalHours - math.Mod(operatingHours, t.IntervalHours)
		if best == nil || due < bestDue {
			best, bestDue = t, due
		}
	}
	return best, bestDue
}

// correctiveOrders filters work orders to corrective events, preserving the
// provider's most-recent-first ordering.
func correctiveOrders(orders []domain.WorkOrder) []domain.WorkOrder {
	var out []domain.WorkOrder
	for _, wo := range orders {
		if wo.Kind == domain.WorkOrderCorrective {
			out = append(out, wo)
		}
	}
	return out
}
