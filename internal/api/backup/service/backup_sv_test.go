package backupService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"botforge/internal/api/backup"
	"botforge/internal/entity"
	"botforge/internal/store"
)

func newTestService(st *store.Store) IBackupService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, st, store.NopFlusher{})
}

func TestExport(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{
		ID: "1", Text: "hello",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hi!"},
	})
	st.PutDataset("products.csv", entity.Dataset{Headers: []string{"name"}})

	bundle, err := newTestService(st).Export(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, backup.BundleVersion, bundle.Version)
	assert.NotEmpty(t, bundle.ExportDate)
	assert.Len(t, bundle.Triggers, 1)
	assert.Contains(t, bundle.CSVData, "products.csv")
}

func TestImportReplacesWholesale(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{ID: "stale", Text: "old"})
	st.PutDataset("stale.csv", entity.Dataset{})
	svc := newTestService(st)

	triggers := []entity.Trigger{{
		ID: "fresh", Text: "hello",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hi!"},
	}}
	datasets := map[string]entity.Dataset{"fresh.csv": {Headers: []string{"a"}}}

	result, err := svc.Import(context.Background(), backup.ImportRequest{
		Triggers: &triggers,
		CSVData:  &datasets,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Triggers)
	assert.Equal(t, 1, result.Datasets)

	_, ok := st.TriggerByID("stale")
	assert.False(t, ok)
	_, ok = st.TriggerByID("fresh")
	assert.True(t, ok)
	_, ok = st.Dataset("stale.csv")
	assert.False(t, ok)
}

func TestImportRequiresBothCollections(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{ID: "keep", Text: "hello"})
	svc := newTestService(st)

	triggers := []entity.Trigger{}
	datasets := map[string]entity.Dataset{}

	t.Run("missing csvData", func(t *testing.T) {
		_, err := svc.Import(context.Background(), backup.ImportRequest{Triggers: &triggers})
		assert.ErrorIs(t, err, backup.ErrInvalidBackup)
	})

	t.Run("missing triggers", func(t *testing.T) {
		_, err := svc.Import(context.Background(), backup.ImportRequest{CSVData: &datasets})
		assert.ErrorIs(t, err, backup.ErrInvalidBackup)
	})

	t.Run("rejected import leaves the store untouched", func(t *testing.T) {
		_, ok := st.TriggerByID("keep")
		assert.True(t, ok)
	})

	t.Run("both present but empty is accepted", func(t *testing.T) {
		result, err := svc.Import(context.Background(), backup.ImportRequest{
			Triggers: &triggers,
			CSVData:  &datasets,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Triggers)
		assert.Equal(t, 0, st.TriggerCount())
	})
}

func TestClearAll(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{ID: "1", Text: "hello"})
	st.PutDataset("a.csv", entity.Dataset{})

	err := newTestService(st).ClearAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, st.TriggerCount())
	assert.Equal(t, 0, st.DatasetCount())
}
