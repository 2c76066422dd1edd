package dataset

type DatasetSummary struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

type DatasetListResponse struct {
	Datasets []DatasetSummary `json:"datasets"`
	Total    int              `json:"total"`
}

type UploadResult struct {
	File    string `json:"file"`
	Status  string `json:"status"`
	Records int    `json:"records,omitempty"`
	Error   string `json:"error,omitempty"`
}

type UploadResponse struct {
	Files []UploadResult `json:"files"`
}

type PreviewResponse struct {
	Name     string `json:"name"`
	Records  int    `json:"records"`
	Fragment string `json:"fragment"`
}
