package dataset

import "botforge/pkg/response"

var (
	ErrDatasetNotFound = response.NewError(404, "csv file not found")
	ErrNoFilesUploaded = response.NewError(400, "no files uploaded")
	ErrInvalidFileType = response.NewError(400, "only .csv files are accepted")
)
