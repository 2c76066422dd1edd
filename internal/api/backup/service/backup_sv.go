package backupService

import (
	"botforge/internal/api/backup"
	contextPkg "botforge/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Export snapshots every trigger and dataset into a single portable bundle.
func (s *backupService) Export(ctx context.Context) (backup.ExportBundle, error) {
	return backup.ExportBundle{
		Triggers:   s.store.Triggers(),
		CSVData:    s.store.Datasets(),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    backup.BundleVersion,
	}, nil
}

// Import replaces the whole store with the bundle contents. Both collections
// must be present in the payload, empty collections included, so a truncated
// or hand-edited bundle never silently wipes one side of the store.
func (s *backupService) Import(ctx context.Context, req backup.ImportRequest) (backup.ImportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Triggers == nil || req.CSVData == nil {
		return backup.ImportResponse{}, backup.ErrInvalidBackup
	}

	s.store.Replace(*req.Triggers, *req.CSVData)

	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store after import")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"triggers":   len(*req.Triggers),
		"datasets":   len(*req.CSVData),
	}).Info("Backup imported")

	return backup.ImportResponse{
		Triggers: len(*req.Triggers),
		Datasets: len(*req.CSVData),
	}, nil
}

// ClearAll empties the store and flushes the empty state immediately.
func (s *backupService) ClearAll(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	s.store.Clear()

	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store after clear")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("All triggers and datasets cleared")

	return nil
}
