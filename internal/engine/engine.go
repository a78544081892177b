// Package engine fuses live telemetry, OEM reference data, maintenance
// history, fleet statistics and environmental conditions into prioritized,
// explainable maintenance predictions. Analyze is a pure function of its
// inputs plus the injected read-only collaborators: the same request against
// deterministic collaborators always yields the same analysis.
package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// ProfileStore resolves the immutable OEM profile for an equipment type.
type ProfileStore interface {
	Profile(equipmentType string) (*domain.EquipmentProfile, error)
}

// RecordsProvider supplies maintenance history for an (asset, equipment)
// pair. Implementations may be in-memory or I/O-backed; the orchestration
// shape is the same either way.
type RecordsProvider interface {
	History(assetID, equipmentID string) (domain.EquipmentHistory, error)
}

// FleetCatalog supplies cross-fleet failure patterns per equipment type.
type FleetCatalog interface {
	Patterns(equipmentType string) []domain.FleetPattern
}

// IssueLookup is the external known-issue override feed. A nil result means
// no authoritative status exists for the item.
type IssueLookup interface {
	Lookup(assetID, equipmentName string) (*domain.KnownIssue, error)
}

// Engine is the analysis orchestrator.
type Engine struct {
	profiles ProfileStore
	records  RecordsProvider
	fleet    FleetCatalog
	issues   IssueLookup
	now      func() time.Time
}

// New wires an engine from its collaborators.
func New(profiles ProfileStore, records RecordsProvider, fleet FleetCatalog) *Engine {
	return &Engine{
		profiles: profiles,
		records:  records,
		fleet:    fleet,
		now:      time.Now,
	}
}

// WithIssueLookup attaches the optional known-issue override feed.
func (e *Engine) WithIssueLookup(l IssueLookup) *Engine {
	e.issues = l
	return e
}

// WithClock overrides the engine clock; analyses become fully reproducible
// when combined with deterministic collaborators.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

type itemResult struct {
	prediction    domain.Prediction
	steps         []domain.ReasoningStep
	contributions []domain.SourceContribution
	health        float64
	item          domain.EquipmentInstance
	profile       *domain.EquipmentProfile
	err           error
}

// Analyze runs the full pipeline for every equipment item on the asset and
// merges the results. Each item's pipeline is independent, so items fan out
// to one goroutine each and fan in over an indexed result slice, keeping
// output order a function of input order alone.
func (e *Engine) Analyze(req domain.AnalysisRequest) (*domain.Analysis, error) {
	now := e.now()

	results := make([]itemResult, len(req.Equipment))
	var wg sync.WaitGroup
	for i := range req.Equipment {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.analyzeItem(req, req.Equipment[i], now)
		}(i)
	}
	wg.Wait()

	analysis := &domain.Analysis{
		AssetID:     req.AssetID,
		AssetName:   req.AssetName,
		AssetType:   req.AssetType,
		GeneratedAt: now,
		Predictions: make([]domain.Prediction, 0, len(results)),
	}

	var healthSum float64
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		healthSum += r.health
		analysis.Predictions = append(analysis.Predictions, r.prediction)
		analysis.ReasoningChain = append(analysis.ReasoningChain, r.steps...)
	}

	if len(results) > 0 {
		first := results[0]
		analysis.SourceContributions = first.contributions
		analysis.DegradationCurve = buildDegradationCurve(first.health, first.item.OperatingHours, first.profile, now)
		analysis.OverallHealthScore = healthSum / float64(len(results))
	} else {
		// Neutral default for an empty equipment list.
		analysis.OverallHealthScore = 100
	}

	sort.SliceStable(analysis.Predictions, func(i, j int) bool {
		return analysis.Predictions[i].Priority.Rank() < analysis.Predictions[j].Priority.Rank()
	})

	analysis.NextAnalysisAt = now.AddDate(0, 0, 7)
	for _, p := range analysis.Predictions {
		if p.Priority == domain.PriorityCritical {
			analysis.NextAnalysisAt = now.Add(24 * time.Hour)
			break
		}
	}

	return analysis, nil
}

func (e *Engine) analyzeItem(req domain.AnalysisRequest, item domain.EquipmentInstance, now time.Time) itemResult {
	profile, err := e.profiles.Profile(item.Type)
	if err != nil {
		return itemResult{err: fmt.Errorf("equipment %s: %w", item.ID, err)}
	}

	hist, err := e.records.History(req.AssetID, item.ID)
	if err != nil {
		// History absence degrades the reasoning chain, not correctness.
		log.Warn().Err(err).Str("equipment", item.ID).Msg("history provider unavailable, continuing without records")
		hist = domain.EquipmentHistory{}
	}

	override := e.lookupOverride(req.AssetID, item.Name)
	mode := PredictFailureMode(profile, item.Vibration, item.Temperature)

	health := resolveHealth(item, profile, override)
	life := CalculateRemainingLife(profile, health, item.OperatingHours, item.CycleCount)

	priority := ClassifyPriority(health, life.PercentRemaining, mode != nil && mode.Probability > highProbabilityThreshold)
	if override != nil && override.Prediction != nil && override.Prediction.Priority != "" {
		priority = override.Prediction.Priority
	}

	in := reasoningInput{
		item:     item,
		profile:  profile,
		history:  hist,
		patterns: e.fleet.Patterns(item.Type),
		env:      req.Environment,
		mode:     mode,
		health:   health,
		override: override,
	}

	return itemResult{
		prediction:    buildPrediction(in, life, priority),
		steps:         buildReasoning(in),
		contributions: buildContributions(in),
		health:        health,
		item:          item,
		profile:       profile,
	}
}

// lookupOverride consults the known-issue feed. Feed unavailability is
// non-fatal: the engine falls back to its own heuristics.
func (e *Engine) lookupOverride(assetID, equipmentName string) *domain.KnownIssue {
	if e.issues == nil {
		return nil
	}
	issue, err := e.issues.Lookup(assetID, equipmentName)
	if err != nil {
		log.Warn().Err(err).Str("asset", assetID).Str("equipment", equipmentName).
			Msg("known-issue feed unavailable, using computed heuristics")
		return nil
	}
	return issue
}

// resolveHealth applies the health precedence: authoritative override, then
// wear-curve estimate when cycle data exists, then the caller's raw reading.
func resolveHealth(item domain.EquipmentInstance, profile *domain.EquipmentProfile, override *domain.KnownIssue) float64 {
	var health float64
	switch {
	case override != nil && override.HealthScore != nil:
		health = *override.HealthScore
	case item.CycleCount != nil:
		health = EstimateHealth(profile, *item.CycleCount)
	case item.CurrentHealth != nil:
		health = *item.CurrentHealth
	default:
		health = 100
	}
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}
