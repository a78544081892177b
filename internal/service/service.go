package service

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/cloud"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/config"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/engine"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/history"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/oem"
)

type Services struct {
	OEM      *oem.Store
	Fleet    *history.FleetCatalog
	Analysis *AnalysisService
	Readings *ReadingService
}

// New assembles the engine and its collaborators from configuration. db may
// be nil; the seeded demo history provider is used unless USE_DB_HISTORY is
// set, in which case the maintenance database is required.
func New(db *sqlx.DB) (*Services, error) {
	store := oem.NewStore()
	if path := config.OEMCatalogPath(); path != "" {
		if err := store.LoadCatalog(path); err != nil {
			return nil, fmt.Errorf("load oem catalog: %w", err)
		}
	}

	var records engine.RecordsProvider
	if config.UseDBHistory() {
		if db == nil {
			return nil, fmt.Errorf("USE_DB_HISTORY set but no database connection")
		}
		records = history.NewPostgresProvider(db)
	} else {
		records = history.NewSeededProvider(nil)
	}

	fleet := history.NewFleetCatalog()
	eng := engine.New(store, records, fleet)

	analysis := &AnalysisService{engine: eng}

	if config.UseCloudServices() {
		if feed, err := cloud.NewIssueFeedClient(config.AWSRegion(), config.IssuesTable()); err != nil {
			log.Warn().Err(err).Msg("issue feed unavailable, engine will use computed heuristics")
		} else {
			eng.WithIssueLookup(feed)
		}
		if sns, err := cloud.NewSNSClient(config.AWSRegion(), config.SNSTopicArn()); err != nil {
			log.Warn().Err(err).Msg("sns unavailable, alerts disabled")
		} else {
			analysis.sns = sns
		}
		if s3c, err := cloud.NewS3Client(config.AWSRegion(), config.S3Bucket()); err != nil {
			log.Warn().Err(err).Msg("s3 unavailable, report archive disabled")
		} else {
			analysis.s3 = s3c
		}
	}

	svcs := &Services{
		OEM:      store,
		Fleet:    fleet,
		Analysis: analysis,
	}
	if db != nil {
		svcs.Readings = &ReadingService{db: db}
	}
	return svcs, nil
}
