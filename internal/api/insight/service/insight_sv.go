package insightService

import (
	"botforge/internal/api/insight"
	"botforge/internal/entity"
	"botforge/pkg/similarity"
	"fmt"
	"math"
	"strings"

	"golang.org/x/net/context"
)

// Validate flags an empty store, case-insensitive duplicate trigger texts
// (every text involved is listed, not pairs) and csv triggers whose file is
// missing from the dataset collection.
func (s *insightService) Validate(ctx context.Context) (insight.ValidationReport, error) {
	triggers := s.store.Triggers()

	report := insight.ValidationReport{Issues: []string{}}

	if len(triggers) == 0 {
		report.Issues = append(report.Issues, "No triggers defined")
	}

	var duplicates []string
	for i, candidate := range triggers {
		if firstIndexOfText(triggers, candidate.Text) != i {
			duplicates = append(duplicates, candidate.Text)
		}
	}
	if len(duplicates) > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Duplicate triggers found: %s", strings.Join(duplicates, ", ")))
	}

	for _, candidate := range triggers {
		payload, ok := candidate.ResponseData.(*entity.CSVPayload)
		if !ok {
			continue
		}
		if _, exists := s.store.Dataset(payload.File); !exists {
			report.Issues = append(report.Issues,
				fmt.Sprintf("CSV file not found: %s", payload.File))
		}
	}

	report.Valid = len(report.Issues) == 0
	return report, nil
}

// Optimize flags never-used triggers and every unordered pair of triggers
// whose text similarity exceeds the near-duplicate threshold. The pairwise
// scan is quadratic, which is fine for the trigger counts this tool serves.
func (s *insightService) Optimize(ctx context.Context) (insight.OptimizationReport, error) {
	triggers := s.store.Triggers()

	report := insight.OptimizationReport{Suggestions: []string{}}

	unused := 0
	for _, candidate := range triggers {
		if candidate.Usage == 0 {
			unused++
		}
	}
	if unused > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("%d triggers have never been used", unused))
	}

	for i := 0; i < len(triggers); i++ {
		for j := i + 1; j < len(triggers); j++ {
			score := similarity.Score(triggers[i].Text, triggers[j].Text)
			if score > similarity.NearDuplicateThreshold {
				report.Suggestions = append(report.Suggestions,
					fmt.Sprintf("%q and %q are very similar", triggers[i].Text, triggers[j].Text))
			}
		}
	}

	report.Optimized = len(report.Suggestions) == 0
	return report, nil
}

func (s *insightService) Stats(ctx context.Context) (insight.StatsReport, error) {
	triggers := s.store.Triggers()

	report := insight.StatsReport{
		TotalTriggers: len(triggers),
		DatasetCount:  s.store.DatasetCount(),
		MostUsedText:  "None",
	}

	categories := make(map[string]struct{})
	for _, candidate := range triggers {
		report.TotalUsage += candidate.Usage
		if candidate.Usage > report.MostUsedCount {
			report.MostUsedCount = candidate.Usage
			report.MostUsedText = candidate.Text
		}
		if candidate.Category != "" {
			categories[candidate.Category] = struct{}{}
		}
	}
	report.CategoryCount = len(categories)

	if len(triggers) > 0 {
		average := float64(report.TotalUsage) / float64(len(triggers))
		report.AverageUsage = math.Round(average*10) / 10
	}

	return report, nil
}

func firstIndexOfText(triggers []entity.Trigger, text string) int {
	lower := strings.ToLower(text)
	for i, candidate := range triggers {
		if strings.ToLower(candidate.Text) == lower {
			return i
		}
	}
	return -1
}
