package datasetService

import (
	"botforge/internal/api/dataset"
	"botforge/internal/entity"
	contextPkg "botforge/pkg/context"
	"botforge/pkg/csvparse"
	"botforge/pkg/render"
	"io"
	"mime/multipart"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const previewRecordLimit = 3

// UploadDatasets parses each uploaded file independently; one malformed or
// unreadable file never aborts the rest of the batch. A file with the same
// name as an existing dataset replaces it wholesale.
func (s *datasetService) UploadDatasets(ctx context.Context, files []*multipart.FileHeader) (*dataset.UploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(files) == 0 {
		return nil, dataset.ErrNoFilesUploaded
	}

	result := &dataset.UploadResponse{}
	for _, file := range files {
		outcome := s.ingestFile(file)
		if outcome.Status != "ok" {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file":       file.Filename,
				"error":      outcome.Error,
			}).Warn("CSV upload rejected")
		}
		result.Files = append(result.Files, outcome)
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store after upload")
	}

	return result, nil
}

func (s *datasetService) ingestFile(file *multipart.FileHeader) dataset.UploadResult {
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		return dataset.UploadResult{
			File:   file.Filename,
			Status: "failed",
			Error:  dataset.ErrInvalidFileType.Error(),
		}
	}

	reader, err := file.Open()
	if err != nil {
		return dataset.UploadResult{File: file.Filename, Status: "failed", Error: err.Error()}
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return dataset.UploadResult{File: file.Filename, Status: "failed", Error: err.Error()}
	}

	parsed := csvparse.Parse(string(raw))
	s.store.PutDataset(file.Filename, parsed)

	return dataset.UploadResult{
		File:    file.Filename,
		Status:  "ok",
		Records: parsed.Len(),
	}
}

func (s *datasetService) GetAllDatasets(ctx context.Context) (*dataset.DatasetListResponse, error) {
	names := s.store.DatasetNames()

	list := &dataset.DatasetListResponse{
		Datasets: make([]dataset.DatasetSummary, 0, len(names)),
		Total:    len(names),
	}
	for _, name := range names {
		if ds, ok := s.store.Dataset(name); ok {
			list.Datasets = append(list.Datasets, dataset.DatasetSummary{
				Name:    name,
				Records: ds.Len(),
			})
		}
	}

	return list, nil
}

func (s *datasetService) PreviewDataset(ctx context.Context, name string) (dataset.PreviewResponse, error) {
	ds, ok := s.store.Dataset(name)
	if !ok {
		return dataset.PreviewResponse{}, dataset.ErrDatasetNotFound
	}

	head := ds
	if ds.Len() > previewRecordLimit {
		head = entity.Dataset{Headers: ds.Headers, Records: ds.Records[:previewRecordLimit]}
	}

	return dataset.PreviewResponse{
		Name:     name,
		Records:  ds.Len(),
		Fragment: render.RenderTable(head),
	}, nil
}

// DeleteDataset removes the record set only. Triggers referencing it are
// left dangling and surface in the validation report.
func (s *datasetService) DeleteDataset(ctx context.Context, name string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.store.DeleteDataset(name) {
		return dataset.ErrDatasetNotFound
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store after dataset delete")
	}

	return nil
}
