package service

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/cloud"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/engine"
)

// lowHealthAlertThreshold is the overall health below which an asset-level
// alert goes out even without a critical prediction.
const lowHealthAlertThreshold = 60

// AnalysisService runs the engine and handles the operational side effects:
// alerting on critical findings and archiving the result.
type AnalysisService struct {
	engine *engine.Engine
	sns    *cloud.SNSClient
	s3     *cloud.S3Client
}

// Run executes one analysis. Alerting and archiving failures are logged,
// never propagated; the analysis itself is the contract.
func (s *AnalysisService) Run(req domain.AnalysisRequest) (*domain.Analysis, error) {
	analysis, err := s.engine.Analyze(req)
	if err != nil {
		return nil, err
	}

	s.alertOnFindings(analysis)
	s.archive(analysis)

	return analysis, nil
}

func (s *AnalysisService) alertOnFindings(a *domain.Analysis) {
	if s.sns == nil {
		return
	}
	for _, p := range a.Predictions {
		if p.Priority != domain.PriorityCritical {
			break // predictions are sorted, criticals come first
		}
		if err := s.sns.SendMaintenanceAlert(a.AssetName, p); err != nil {
			log.Error().Err(err).Str("equipment", p.EquipmentID).Msg("maintenance alert failed")
		}
	}
	if a.OverallHealthScore < lowHealthAlertThreshold {
		subject := fmt.Sprintf("Asset Health Alert: %s", a.AssetName)
		msg := fmt.Sprintf("Overall health of %s is %.1f%%, below the %d%% alert threshold.",
			a.AssetName, a.OverallHealthScore, lowHealthAlertThreshold)
		if err := s.sns.SendAlert(subject, msg); err != nil {
			log.Error().Err(err).Str("asset", a.AssetID).Msg("asset health alert failed")
		}
	}
}

func (s *AnalysisService) archive(a *domain.Analysis) {
	if s.s3 == nil {
		return
	}
	data, err := json.Marshal(a)
	if err != nil {
		log.Error().Err(err).Msg("marshal analysis for archive failed")
		return
	}
	key := fmt.Sprintf("analyses/%s/%s.json", a.AssetID, a.GeneratedAt.UTC().Format("2006-01-02T15-04-05"))
	url, err := s.s3.UploadAnalysis(key, data)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("analysis archive failed")
		return
	}
	log.Info().Str("asset", a.AssetID).Str("url", url).Msg("analysis archived")
}
