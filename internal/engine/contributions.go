package engine

import (
	"fmt"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// Fixed relevance score per source kind. Relevance describes how much weight
// the source carries in this engine's fusion, not data quality for one item.
const (
	relevanceTelemetry   = 95
	relevanceOEM         = 100
	relevanceHistory     = 88
	relevanceFleet       = 82
	relevanceEnvironment = 75
	relevanceInspection  = 85
	relevanceOilAnalysis = 80
	relevanceStandards   = 70
)

// buildContributions emits one SourceContribution per source actually
// available for the item. Contributions describe source quality, which is
// asset-wide; the orchestrator surfaces only the first item's set.
func buildContributions(in reasoningInput) []domain.SourceContribution {
	dp := func(label, format string, args ...any) domain.DataPoint {
		return domain.DataPoint{Label: label, Value: fmt.Sprintf(format, args...)}
	}

	contributions := []domain.SourceContribution{
		{
			Source:    domain.SourceTelemetry,
			Summary:   fmt.Sprintf("live readings for %s anchor the health estimate", in.item.Name),
			Relevance: relevanceTelemetry,
			DataPoints: func() []domain.DataPoint {
				pts := []domain.DataPoint{
					dp("health score", "%.1f%%", in.health),
					dp("operating hours", "%.0f h", in.item.OperatingHours),
				}
				if in.item.Vibration != nil {
					pts = append(pts, dp("vibration", "%.1f mm/s", *in.item.Vibration))
				}
				if in.item.Temperature != nil {
					pts = append(pts, dp("temperature", "%.1f °C", *in.item.Temperature))
				}
				return pts
			}(),
		},
		{
			Source: domain.SourceOEM,
			Summary: fmt.Sprintf("%s %s datasheet supplies wear curve, limits and service schedule",
				in.profile.Manufacturer, in.profile.Model),
			Relevance: relevanceOEM,
			DataPoints: []domain.DataPoint{
				dp("max operating hours", "%.0f h", in.profile.Specs.MaxOperatingHours),
				dp("PM interval", "%.0f h", in.profile.Specs.MaintenanceInterval),
				dp("MTBF", "%.0f h", in.profile.Specs.MTBFHours),
			},
		},
	}

	if len(in.history.WorkOrders) > 0 {
		var preventive, corrective, inspection int
		for _, wo := range in.history.WorkOrders {
			switch wo.Kind {
			case domain.WorkOrderPreventive:
				preventive++
			case domain.WorkOrderCorrective:
				corrective++
			case domain.WorkOrderInspection:
				inspection++
			}
		}
		contributions = append(contributions, domain.SourceContribution{
			Source:    domain.SourceHistory,
			Summary:   "work-order history reveals the item's failure and servicing record",
			Relevance: relevanceHistory,
			DataPoints: []domain.DataPoint{
				dp("preventive orders", "%d", preventive),
				dp("corrective orders", "%d", corrective),
				dp("inspection orders", "%d", inspection),
			},
		})
	}

	if len(in.patterns) > 0 {
		p := in.patterns[0]
		contributions = append(contributions, domain.SourceContribution{
			Source:    domain.SourceFleet,
			Summary:   "cross-fleet statistics flag systematic weaknesses of the type",
			Relevance: relevanceFleet,
			DataPoints: []domain.DataPoint{
				dp("matched patterns", "%d", len(in.patterns)),
				dp("fleet occurrences", "%d", p.Occurrences),
				dp("avg failure point", "%.0f %s", p.AvgFailurePoint.Value, p.AvgFailurePoint.Unit),
			},
		})
	}

	if in.env != nil {
		contributions = append(contributions, domain.SourceContribution{
			Source:    domain.SourceEnvironment,
			Summary:   "current operating conditions modulate degradation rates",
			Relevance: relevanceEnvironment,
			DataPoints: []domain.DataPoint{
				dp("sea state", "%s", in.env.SeaState),
				dp("wave height", "%.1f m", in.env.WaveHeightM),
				dp("wind speed", "%.0f kts", in.env.WindSpeedKts),
			},
		})
	}

	if n := len(in.history.Inspections); n > 0 {
		last := in.history.Inspections[0]
		contributions = append(contributions, domain.SourceContribution{
			Source:    domain.SourceInspection,
			Summary:   "surveyor findings ground-truth the computed condition",
			Relevance: relevanceInspection,
			DataPoints: []domain.DataPoint{
				dp("records", "%d", n),
				dp("latest finding", "%s", last.Finding),
			},
		})
	}

	if n := len(in.history.OilAnalyses); n > 0 {
		last := in.history.OilAnalyses[0]
		contributions = append(contributions, domain.SourceContribution{
			Source:    domain.SourceOilAnalysis,
			Summary:   "lab results track internal wear-metal trends",
			Relevance: relevanceOilAnalysis,
			DataPoints: []domain.DataPoint{
				dp("samples", "%d", n),
				dp("latest iron", "%.0f ppm", last.IronPPM),
				dp("latest verdict", "%s", last.Verdict),
			},
		})
	}

	contributions = append(contributions, domain.SourceContribution{
		Source:    domain.SourceStandards,
		Summary:   "class-society and ISO condition-monitoring thresholds frame the scoring",
		Relevance: relevanceStandards,
		DataPoints: []domain.DataPoint{
			dp("wear assessment", "ISO 4309 / ISO 13374"),
			dp("vibration limits", "ISO 10816"),
		},
	})

	return contributions
}
