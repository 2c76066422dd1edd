package datasetService

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botforge/internal/api/dataset"
	"botforge/internal/entity"
	"botforge/internal/store"
)

func newTestService(st *store.Store) IDatasetService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, st, store.NopFlusher{})
}

func seedDataset(st *store.Store, name string, records int) {
	ds := entity.Dataset{Headers: []string{"name"}}
	for i := 0; i < records; i++ {
		ds.Records = append(ds.Records, entity.Record{"name": "row"})
	}
	st.PutDataset(name, ds)
}

// multipartFiles assembles real multipart file headers the way fiber's
// MultipartForm hands them to the service.
func multipartFiles(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func uploadOutcome(t *testing.T, results []dataset.UploadResult, name string) dataset.UploadResult {
	t.Helper()
	for _, result := range results {
		if result.File == name {
			return result
		}
	}
	t.Fatalf("no upload outcome for %s", name)
	return dataset.UploadResult{}
}

func TestUploadDatasets(t *testing.T) {
	t.Run("one rejected file never aborts the rest of the batch", func(t *testing.T) {
		st := store.New()
		svc := newTestService(st)

		files := multipartFiles(t, map[string]string{
			"good.csv": "name,price\nWidget,10\nGadget,25",
			"bad.txt":  "not a csv at all",
		})

		result, err := svc.UploadDatasets(context.Background(), files)

		require.NoError(t, err)
		require.Len(t, result.Files, 2)

		good := uploadOutcome(t, result.Files, "good.csv")
		assert.Equal(t, "ok", good.Status)
		assert.Equal(t, 2, good.Records)

		bad := uploadOutcome(t, result.Files, "bad.txt")
		assert.Equal(t, "failed", bad.Status)
		assert.Equal(t, dataset.ErrInvalidFileType.Error(), bad.Error)

		ingested, ok := st.Dataset("good.csv")
		require.True(t, ok)
		assert.Equal(t, "Widget", ingested.Records[0]["name"])
		_, ok = st.Dataset("bad.txt")
		assert.False(t, ok)
	})

	t.Run("same name replaces the stored dataset", func(t *testing.T) {
		st := store.New()
		svc := newTestService(st)

		_, err := svc.UploadDatasets(context.Background(),
			multipartFiles(t, map[string]string{"items.csv": "name\nold"}))
		require.NoError(t, err)

		_, err = svc.UploadDatasets(context.Background(),
			multipartFiles(t, map[string]string{"items.csv": "name\nnew-a\nnew-b"}))
		require.NoError(t, err)

		ingested, ok := st.Dataset("items.csv")
		require.True(t, ok)
		assert.Equal(t, 2, ingested.Len())
		assert.Equal(t, "new-a", ingested.Records[0]["name"])
	})

	t.Run("case-insensitive extension check", func(t *testing.T) {
		st := store.New()
		svc := newTestService(st)

		result, err := svc.UploadDatasets(context.Background(),
			multipartFiles(t, map[string]string{"UPPER.CSV": "name\nrow"}))

		require.NoError(t, err)
		assert.Equal(t, "ok", result.Files[0].Status)
		_, ok := st.Dataset("UPPER.CSV")
		assert.True(t, ok)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		svc := newTestService(store.New())

		_, err := svc.UploadDatasets(context.Background(), nil)

		assert.ErrorIs(t, err, dataset.ErrNoFilesUploaded)
	})
}

func TestGetAllDatasets(t *testing.T) {
	st := store.New()
	seedDataset(st, "b.csv", 2)
	seedDataset(st, "a.csv", 5)

	list, err := newTestService(st).GetAllDatasets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "a.csv", list.Datasets[0].Name)
	assert.Equal(t, 5, list.Datasets[0].Records)
	assert.Equal(t, "b.csv", list.Datasets[1].Name)
}

func TestPreviewDataset(t *testing.T) {
	st := store.New()
	seedDataset(st, "big.csv", 10)
	svc := newTestService(st)

	t.Run("reports total count with a bounded fragment", func(t *testing.T) {
		preview, err := svc.PreviewDataset(context.Background(), "big.csv")

		require.NoError(t, err)
		assert.Equal(t, "big.csv", preview.Name)
		assert.Equal(t, 10, preview.Records)
		assert.Contains(t, preview.Fragment, "<table")
	})

	t.Run("missing dataset", func(t *testing.T) {
		_, err := svc.PreviewDataset(context.Background(), "nope.csv")
		assert.ErrorIs(t, err, dataset.ErrDatasetNotFound)
	})
}

func TestDeleteDataset(t *testing.T) {
	st := store.New()
	seedDataset(st, "a.csv", 1)
	svc := newTestService(st)

	assert.NoError(t, svc.DeleteDataset(context.Background(), "a.csv"))
	assert.ErrorIs(t, svc.DeleteDataset(context.Background(), "a.csv"), dataset.ErrDatasetNotFound)
}
