package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/history"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/issues"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/oem"
)

type stubStore map[string]*domain.EquipmentProfile

func (s stubStore) Profile(equipmentType string) (*domain.EquipmentProfile, error) {
	p, ok := s[equipmentType]
	if !ok {
		return nil, errors.New("no OEM profile for equipment type " + equipmentType)
	}
	return p, nil
}

type stubRecords struct {
	hist domain.EquipmentHistory
	err  error
}

func (s stubRecords) History(assetID, equipmentID string) (domain.EquipmentHistory, error) {
	return s.hist, s.err
}

type stubFleet map[string][]domain.FleetPattern

func (s stubFleet) Patterns(equipmentType string) []domain.FleetPattern {
	return s[equipmentType]
}

type failingLookup struct{}

func (failingLookup) Lookup(assetID, equipmentName string) (*domain.KnownIssue, error) {
	return nil, errors.New("feed down")
}

var testClock = func() time.Time {
	return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
}

// plainProfile has no specs, curve or modes: health falls through to the
// caller's reading and remaining life to the health-proportional fallback,
// so priority is a function of health alone.
func plainProfile(typ string) *domain.EquipmentProfile {
	return &domain.EquipmentProfile{Type: typ, Manufacturer: "Acme", Model: "X"}
}

func TestAnalyze_EmptyEquipmentList(t *testing.T) {
	eng := New(stubStore{}, stubRecords{}, stubFleet{}).WithClock(testClock)

	analysis, err := eng.Analyze(domain.AnalysisRequest{AssetID: "mv-test", AssetName: "MV Test"})
	require.NoError(t, err)

	assert.Equal(t, 100.0, analysis.OverallHealthScore)
	assert.Empty(t, analysis.Predictions)
	assert.Empty(t, analysis.DegradationCurve)
}

func TestAnalyze_PredictionPerEquipmentItem(t *testing.T) {
	store := stubStore{"pump": plainProfile("pump")}
	eng := New(store, stubRecords{}, stubFleet{}).WithClock(testClock)

	req := domain.AnalysisRequest{
		AssetID: "mv-test",
		Equipment: []domain.EquipmentInstance{
			{ID: "a", Name: "Pump A", Type: "pump", CurrentHealth: fp(80), OperatingHours: 100},
			{ID: "b", Name: "Pump B", Type: "pump", CurrentHealth: fp(60), OperatingHours: 200},
		},
	}
	analysis, err := eng.Analyze(req)
	require.NoError(t, err)

	assert.Len(t, analysis.Predictions, 2)
	assert.InDelta(t, 70, analysis.OverallHealthScore, 1e-9)
}

func TestAnalyze_SortIsStableByPriority(t *testing.T) {
	store := stubStore{"pump": plainProfile("pump")}
	eng := New(store, stubRecords{}, stubFleet{}).WithClock(testClock)

	// Health drives priority via the fallback life policy:
	// 90 -> low, 20 -> critical, 65 -> medium, 25 -> critical.
	req := domain.AnalysisRequest{
		AssetID: "mv-test",
		Equipment: []domain.EquipmentInstance{
			{ID: "a", Name: "Pump A", Type: "pump", CurrentHealth: fp(90), OperatingHours: 10},
			{ID: "b", Name: "Pump B", Type: "pump", CurrentHealth: fp(20), OperatingHours: 10},
			{ID: "c", Name: "Pump C", Type: "pump", CurrentHealth: fp(65), OperatingHours: 10},
			{ID: "d", Name: "Pump D", Type: "pump", CurrentHealth: fp(25), OperatingHours: 10},
		},
	}
	analysis, err := eng.Analyze(req)
	require.NoError(t, err)
	require.Len(t, analysis.Predictions, 4)

	var ids []string
	var priorities []domain.Priority
	for _, p := range analysis.Predictions {
		ids = append(ids, p.EquipmentID)
		priorities = append(priorities, p.Priority)
	}
	// Fixed priority order; the two criticals keep their input order.
	assert.Equal(t, []domain.Priority{
		domain.PriorityCritical, domain.PriorityCritical, domain.PriorityMedium, domain.PriorityLow,
	}, priorities)
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
}

func TestAnalyze_OverridePrecedence(t *testing.T) {
	store := stubStore{"winch": {
		Type: "winch",
		WearCurve: []domain.WearPoint{
			{Cycles: 0, Health: 100},
			{Cycles: 10000, Health: 50},
		},
	}}
	known := domain.KnownIssue{
		Issue:       "gearbox bearing spalling confirmed by vibration survey",
		Status:      "monitoring",
		HealthScore: fp(20),
		Prediction: &domain.IssuePrediction{
			PredictedIssue:    "gearbox bearing failure",
			Priority:          domain.PriorityCritical,
			RecommendedAction: "replace bearing set at next port call",
		},
	}
	feed := issues.NewStaticLookup(issues.Entry{AssetID: "mv-test", Equipment: "hoist", Issue: known})

	eng := New(store, stubRecords{}, stubFleet{}).WithIssueLookup(feed).WithClock(testClock)

	req := domain.AnalysisRequest{
		AssetID: "mv-test",
		Equipment: []domain.EquipmentInstance{
			// The wear curve alone would put this item at 75% health.
			{ID: "w1", Name: "Hoist winch", Type: "winch", CycleCount: fp(5000), OperatingHours: 3000},
		},
	}
	analysis, err := eng.Analyze(req)
	require.NoError(t, err)
	require.Len(t, analysis.Predictions, 1)

	p := analysis.Predictions[0]
	assert.Equal(t, 20.0, p.HealthScore)
	assert.Equal(t, domain.PriorityCritical, p.Priority)
	assert.Equal(t, "gearbox bearing failure", p.PredictedIssue)
	assert.Equal(t, "replace bearing set at next port call", p.RecommendedAction)

	require.NotEmpty(t, analysis.ReasoningChain)
	first := analysis.ReasoningChain[0]
	assert.True(t, first.IsKey)
	assert.Equal(t, 95.0, first.Confidence)
	assert.Contains(t, first.Statement, "known issue on record")
}

func TestAnalyze_OverrideFeedUnavailableIsNonFatal(t *testing.T) {
	store := stubStore{"pump": plainProfile("pump")}
	eng := New(store, stubRecords{}, stubFleet{}).WithIssueLookup(failingLookup{}).WithClock(testClock)

	analysis, err := eng.Analyze(domain.AnalysisRequest{
		AssetID: "mv-test",
		Equipment: []domain.EquipmentInstance{
			{ID: "a", Name: "Pump A", Type: "pump", CurrentHealth: fp(80), OperatingHours: 100},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 80, analysis.Predictions[0].HealthScore, 1e-9)
}

func TestAnalyze_MissingProfileFailsLoudly(t *testing.T) {
	eng := New(stubStore{}, stubRecords{}, stubFleet{}).WithClock(testClock)

	_, err := eng.Analyze(domain.AnalysisRequest{
		AssetID: "mv-test",
		Equipment: []domain.EquipmentInstance{
			{ID: "x", Name: "Mystery box", Type: "unknown_type", OperatingHours: 10},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_type")
}

func TestAnalyze_WireRopeEndToEnd(t *testing.T) {
	// Against the shipped OEM catalog: 12000 cycles on the wire rope curve
	// reads exactly 50% health, which is NOT < 50, so health alone does not
	// make the item high priority; the 20% cycle budget remaining does.
	eng := New(oem.NewStore(), stubRecords{}, history.NewFleetCatalog()).WithClock(testClock)

	analysis, err := eng.Analyze(domain.AnalysisRequest{
		AssetID:   "mv-nordkapp",
		AssetName: "MV Nordkapp",
		AssetType: "vessel",
		Equipment: []domain.EquipmentInstance{
			{ID: "r1", Name: "Hoist wire rope", Type: "wire_rope", CycleCount: fp(12000), OperatingHours: 14000},
		},
	})
	require.NoError(t, err)
	require.Len(t, analysis.Predictions, 1)

	p := analysis.Predictions[0]
	assert.InDelta(t, 50, p.HealthScore, 1e-9)
	assert.Equal(t, domain.PriorityHigh, p.Priority)
	assert.Equal(t, "cycles", p.RemainingLife.Unit)
	assert.InDelta(t, 3000, p.RemainingLife.Value, 1e-9)
	assert.InDelta(t, 20, p.RemainingLife.PercentRemaining, 1e-9)
}

func TestAnalyze_DeterministicWithSeededHistory(t *testing.T) {
	eng := New(oem.NewStore(), history.NewSeededProvider(testClock), history.NewFleetCatalog()).
		WithClock(testClock)

	req := domain.AnalysisRequest{
		AssetID:   "mv-aurelia",
		AssetName: "MV Aurelia",
		Equipment: []domain.EquipmentInstance{
			{ID: "g1", Name: "Generator 1", Type: "diesel_generator", OperatingHours: 21000, Temperature: fp(82), Vibration: fp(6)},
			{ID: "t1", Name: "Bow thruster", Type: "bow_thruster", CycleCount: fp(30000), OperatingHours: 15000},
		},
	}

	first, err := eng.Analyze(req)
	require.NoError(t, err)
	second, err := eng.Analyze(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_NextAnalysisSchedule(t *testing.T) {
	store := stubStore{"pump": plainProfile("pump")}
	eng := New(store, stubRecords{}, stubFleet{}).WithClock(testClock)
	now := testClock()

	healthy, err := eng.Analyze(domain.AnalysisRequest{
		AssetID: "a",
		Equipment: []domain.EquipmentInstance{
			{ID: "p1", Name: "Pump", Type: "pump", CurrentHealth: fp(95), OperatingHours: 10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 7), healthy.NextAnalysisAt)

	degraded, err := eng.Analyze(domain.AnalysisRequest{
		AssetID: "a",
		Equipment: []domain.EquipmentInstance{
			{ID: "p1", Name: "Pump", Type: "pump", CurrentHealth: fp(15), OperatingHours: 10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), degraded.NextAnalysisAt)
}
