package datasetService

import (
	"botforge/internal/api/dataset"
	"botforge/internal/store"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IDatasetService interface {
	UploadDatasets(ctx context.Context, files []*multipart.FileHeader) (*dataset.UploadResponse, error)
	GetAllDatasets(ctx context.Context) (*dataset.DatasetListResponse, error)
	PreviewDataset(ctx context.Context, name string) (dataset.PreviewResponse, error)
	DeleteDataset(ctx context.Context, name string) error
}

type datasetService struct {
	log     *logrus.Logger
	store   *store.Store
	flusher store.Flusher
}

func New(
	log *logrus.Logger,
	st *store.Store,
	flusher store.Flusher,
) IDatasetService {
	return &datasetService{
		log:     log,
		store:   st,
		flusher: flusher,
	}
}
