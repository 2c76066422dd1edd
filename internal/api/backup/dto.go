package backup

import "botforge/internal/entity"

const BundleVersion = "1.0"

// ExportBundle is the portable snapshot of everything the builder holds.
// Field names mirror the download format the web client produces so bundles
// remain interchangeable between the two.
type ExportBundle struct {
	Triggers   []entity.Trigger          `json:"triggers"`
	CSVData    map[string]entity.Dataset `json:"csvData"`
	ExportDate string                    `json:"exportDate"`
	Version    string                    `json:"version"`
}

// ImportRequest uses pointers so a missing collection can be told apart
// from an empty one. Both collections must be present.
type ImportRequest struct {
	Triggers *[]entity.Trigger          `json:"triggers"`
	CSVData  *map[string]entity.Dataset `json:"csvData"`
}

type ImportResponse struct {
	Triggers int `json:"triggers"`
	Datasets int `json:"datasets"`
}
