package insightService

import (
	"botforge/internal/api/insight"
	"botforge/internal/store"
	"context"

	"github.com/sirupsen/logrus"
)

// IInsightService generates read-only reports over the full trigger and
// dataset collections. Nothing here mutates the store.
type IInsightService interface {
	Validate(ctx context.Context) (insight.ValidationReport, error)
	Optimize(ctx context.Context) (insight.OptimizationReport, error)
	Stats(ctx context.Context) (insight.StatsReport, error)
}

type insightService struct {
	log   *logrus.Logger
	store *store.Store
}

func New(log *logrus.Logger, st *store.Store) IInsightService {
	return &insightService{
		log:   log,
		store: st,
	}
}
