package history

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// SeededProvider generates reproducible pseudo-history from a hash of the
// (asset, equipment) identity. It exists for demos and tests where no
// maintenance database is wired up; production deployments use the
// Postgres-backed provider instead.
type SeededProvider struct {
	now func() time.Time
}

// NewSeededProvider returns a provider whose record dates are anchored to
// the given clock. Pass nil for time.Now.
func NewSeededProvider(now func() time.Time) *SeededProvider {
	if now == nil {
		now = time.Now
	}
	return &SeededProvider{now: now}
}

var correctiveIssues = []string{
	"abnormal vibration reported during operation",
	"hydraulic leak at fitting",
	"overheating alarm during sustained load",
	"unexpected stoppage, manual reset required",
	"abnormal noise under load",
}

var preventiveIssues = []string{
	"scheduled service per OEM interval",
	"lubrication and visual check",
	"filter and fluid renewal",
}

// History returns the deterministic record bundle for one equipment item.
// The same (assetID, equipmentID) always yields the same records.
func (p *SeededProvider) History(assetID, equipmentID string) (domain.EquipmentHistory, error) {
	r := rand.New(rand.NewSource(seed(assetID, equipmentID)))
	now := p.now()

	var h domain.EquipmentHistory

	nOrders := 2 + r.Intn(4)
	for i := 0; i < nOrders; i++ {
		kind := domain.WorkOrderPreventive
		issue := preventiveIssues[r.Intn(len(preventiveIssues))]
		unplanned := false
		switch r.Intn(3) {
		case 1:
			kind = domain.WorkOrderCorrective
			issue = correctiveIssues[r.Intn(len(correctiveIssues))]
			unplanned = r.Intn(2) == 0
		case 2:
			kind = domain.WorkOrderInspection
			issue = "routine condition inspection"
		}
		opened := now.AddDate(0, 0, -(30 + r.Intn(700)))
		h.WorkOrders = append(h.WorkOrders, domain.WorkOrder{
			ID:            recordID("wo", assetID, equipmentID, i),
			AssetID:       assetID,
			EquipmentID:   equipmentID,
			Kind:          kind,
			Issue:         issue,
			OpenedAt:      opened,
			ClosedAt:      opened.Add(time.Duration(4+r.Intn(44)) * time.Hour),
			LaborHours:    float64(2 + r.Intn(22)),
			PartsCost:     float64(150 + r.Intn(4850)),
			DowntimeHours: float64(r.Intn(36)),
			Unplanned:     unplanned,
		})
	}

	nInspections := 1 + r.Intn(2)
	findings := []string{
		"no defects found, condition satisfactory",
		"minor surface corrosion noted, monitor",
		"wear within limits, re-inspect at next interval",
	}
	for i := 0; i < nInspections; i++ {
		h.Inspections = append(h.Inspections, domain.InspectionRecord{
			ID:          recordID("insp", assetID, equipmentID, i),
			AssetID:     assetID,
			EquipmentID: equipmentID,
			Date:        now.AddDate(0, 0, -(60 + r.Intn(300))),
			Inspector:   fmt.Sprintf("surveyor-%02d", 1+r.Intn(9)),
			Finding:     findings[r.Intn(len(findings))],
			Severity:    []string{"none", "minor", "moderate"}[r.Intn(3)],
		})
	}

	nOil := r.Intn(3)
	for i := 0; i < nOil; i++ {
		iron := float64(10 + r.Intn(90))
		verdict := "normal"
		if iron > 70 {
			verdict = "caution: elevated iron"
		}
		h.OilAnalyses = append(h.OilAnalyses, domain.OilAnalysisRecord{
			ID:          recordID("oil", assetID, equipmentID, i),
			AssetID:     assetID,
			EquipmentID: equipmentID,
			Date:        now.AddDate(0, 0, -(30 + r.Intn(180))),
			IronPPM:     iron,
			Viscosity:   90 + r.Float64()*30,
			WaterPct:    r.Float64() * 0.4,
			Verdict:     verdict,
		})
	}

	return h, nil
}

func seed(assetID, equipmentID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(assetID))
	h.Write([]byte{'|'})
	h.Write([]byte(equipmentID))
	return int64(h.Sum64())
}

// recordID derives a stable UUID so repeated generations agree.
func recordID(prefix, assetID, equipmentID string, n int) string {
	name := fmt.Sprintf("%s:%s:%s:%d", prefix, assetID, equipmentID, n)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
