package insight

type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type OptimizationReport struct {
	Optimized   bool     `json:"optimized"`
	Suggestions []string `json:"suggestions"`
}

type StatsReport struct {
	TotalTriggers int     `json:"total_triggers"`
	TotalUsage    int     `json:"total_usage"`
	AverageUsage  float64 `json:"average_usage"`
	MostUsedText  string  `json:"most_used_text"`
	MostUsedCount int     `json:"most_used_count"`
	DatasetCount  int     `json:"dataset_count"`
	CategoryCount int     `json:"category_count"`
}
