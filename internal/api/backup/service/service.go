package backupService

import (
	"botforge/internal/api/backup"
	"botforge/internal/store"
	"context"

	"github.com/sirupsen/logrus"
)

type IBackupService interface {
	Export(ctx context.Context) (backup.ExportBundle, error)
	Import(ctx context.Context, req backup.ImportRequest) (backup.ImportResponse, error)
	ClearAll(ctx context.Context) error
}

type backupService struct {
	log     *logrus.Logger
	store   *store.Store
	flusher store.Flusher
}

func New(
	log *logrus.Logger,
	st *store.Store,
	flusher store.Flusher,
) IBackupService {
	return &backupService{
		log:     log,
		store:   st,
		flusher: flusher,
	}
}
