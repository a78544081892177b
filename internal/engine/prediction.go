package engine

import (
	"fmt"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// buildPrediction assembles the per-item output record from the fused
// signals. All derived figures are deterministic functions of the inputs.
func buildPrediction(in reasoningInput, life domain.RemainingLife, priority domain.Priority) domain.Prediction {
	issue := predictedIssue(in)

	p := domain.Prediction{
		EquipmentID:    in.item.ID,
		EquipmentName:  in.item.Name,
		EquipmentType:  in.item.Type,
		Priority:       priority,
		Title:          fmt.Sprintf("%s: %s", in.item.Name, priorityHeadline(priority)),
		PredictedIssue: issue,
		HealthScore:    in.health,
		RemainingLife:  life,
		Confidence:     predictionConfidence(in),
	}

	p.Description = fmt.Sprintf(
		"%s is at %.1f%% health with an estimated %.0f %s of remaining life (%.0f%% of rated). Predicted issue: %s.",
		in.item.Name, in.health, life.Value, life.Unit, life.PercentRemaining, issue)

	task, _ := nextScheduledTask(in.profile, in.item.OperatingHours)

	if in.override != nil && in.override.Prediction != nil && in.override.Prediction.RecommendedAction != "" {
		p.RecommendedAction = in.override.Prediction.RecommendedAction
	} else if task != nil {
		p.RecommendedAction = fmt.Sprintf("Schedule %q and inspect for %s", task.Name, issue)
	} else {
		p.RecommendedAction = fmt.Sprintf("Inspect for %s", issue)
	}

	switch priority {
	case domain.PriorityCritical:
		p.AlternativeActions = []string{
			"take equipment out of service until inspected",
			"operate at reduced load with continuous condition monitoring",
		}
		p.MaintenanceWindow = "within 48 hours"
	case domain.PriorityHigh:
		p.AlternativeActions = []string{
			"bring forward the next scheduled service",
			"increase condition-monitoring frequency to daily",
		}
		p.MaintenanceWindow = "within 2 weeks"
	case domain.PriorityMedium:
		p.AlternativeActions = []string{"combine with the next planned port call"}
		p.MaintenanceWindow = "within 30 days"
	default:
		p.AlternativeActions = []string{"continue routine monitoring"}
		p.MaintenanceWindow = "at next scheduled service"
	}

	p.RepairCost = estimateRepairCost(in, priority)
	p.Downtime = estimateDowntime(in, task)
	if task != nil {
		p.PartsRequired = task.RequiredParts
	}

	p.CostOfInaction = costOfInaction(in, priority)

	return p
}

func predictedIssue(in reasoningInput) string {
	if in.override != nil && in.override.Prediction != nil && in.override.Prediction.PredictedIssue != "" {
		return in.override.Prediction.PredictedIssue
	}
	if in.mode != nil {
		return in.mode.Mode
	}
	return "general wear and tear"
}

func priorityHeadline(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "immediate intervention required"
	case domain.PriorityHigh:
		return "maintenance needed soon"
	case domain.PriorityMedium:
		return "plan upcoming maintenance"
	default:
		return "routine monitoring"
	}
}

// predictionConfidence reflects how many independent signals back the
// prediction. An authoritative override pins it at the override confidence.
func predictionConfidence(in reasoningInput) float64 {
	if in.override != nil {
		return confOverride
	}
	conf := 70.0
	if in.item.CycleCount != nil {
		conf += 10
	}
	if in.item.Vibration != nil {
		conf += 5
	}
	if in.item.Temperature != nil {
		conf += 5
	}
	if len(in.history.WorkOrders) > 0 {
		conf += 5
	}
	if conf > 95 {
		conf = 95
	}
	return conf
}

// estimateRepairCost bands around the historical average spend when history
// exists, otherwise falls back to priority-scaled defaults.
func estimateRepairCost(in reasoningInput, priority domain.Priority) domain.CostRange {
	if n := len(in.history.WorkOrders); n > 0 {
		var total float64
		for _, wo := range in.history.WorkOrders {
			total += wo.PartsCost + wo.LaborHours*95 // standard yard labor rate
		}
		avg := total / float64(n)
		return domain.CostRange{Min: avg * 0.8, Max: avg * 1.6}
	}
	base := map[domain.Priority]float64{
		domain.PriorityCritical: 12000,
		domain.PriorityHigh:     7000,
		domain.PriorityMedium:   3500,
		domain.PriorityLow:      1200,
	}[priority]
	return domain.CostRange{Min: base * 0.7, Max: base * 1.5}
}

func estimateDowntime(in reasoningInput, task *domain.MaintenanceTask) domain.HoursRange {
	if n := len(in.history.WorkOrders); n > 0 {
		var total float64
		for _, wo := range in.history.WorkOrders {
			total += wo.DowntimeHours
		}
		avg := total / float64(n)
		return domain.HoursRange{Min: avg * 0.5, Max: avg*1.5 + 4}
	}
	if task != nil {
		return domain.HoursRange{Min: task.DurationHours, Max: task.DurationHours * 2}
	}
	return domain.HoursRange{Min: 4, Max: 24}
}

func costOfInaction(in reasoningInput, priority domain.Priority) string {
	switch priority {
	case domain.PriorityCritical:
		return fmt.Sprintf("unplanned failure of %s is likely within the current operating window; "+
			"emergency repair and off-hire typically cost 3-5x a planned intervention", in.item.Name)
	case domain.PriorityHigh:
		return "continued operation accelerates wear; deferral risks converting a planned repair into an unplanned outage"
	case domain.PriorityMedium:
		return "degradation is progressing within limits; deferral beyond the window increases repair scope"
	default:
		return "negligible at current condition; keep to the OEM schedule"
	}
}
