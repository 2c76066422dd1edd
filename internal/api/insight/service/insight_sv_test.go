package insightService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"botforge/internal/entity"
	"botforge/internal/store"
)

func newTestService(st *store.Store) IInsightService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, st)
}

func textTrigger(id, text string, usage int) entity.Trigger {
	return entity.Trigger{
		ID: id, Text: text, Usage: usage,
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "reply"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("empty store is flagged", func(t *testing.T) {
		report, err := newTestService(store.New()).Validate(context.Background())

		assert.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Contains(t, report.Issues, "No triggers defined")
	})

	t.Run("clean store is valid", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(textTrigger("1", "hello", 0))

		report, err := newTestService(st).Validate(context.Background())

		assert.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Issues)
	})

	t.Run("duplicate texts are case-insensitive", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(textTrigger("1", "Hi", 0))
		st.AddTrigger(textTrigger("2", "hi", 0))
		st.AddTrigger(textTrigger("3", "pricing", 0))

		report, err := newTestService(st).Validate(context.Background())

		assert.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Contains(t, report.Issues, "Duplicate triggers found: hi")
	})

	t.Run("dangling csv reference is flagged", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(entity.Trigger{
			ID: "1", Text: "products",
			ResponseType: entity.ResponseCSV,
			ResponseData: &entity.CSVPayload{File: "gone.csv"},
		})

		report, err := newTestService(st).Validate(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, report.Issues, "CSV file not found: gone.csv")
	})

	t.Run("csv trigger with its dataset present is fine", func(t *testing.T) {
		st := store.New()
		st.PutDataset("here.csv", entity.Dataset{Headers: []string{"a"}})
		st.AddTrigger(entity.Trigger{
			ID: "1", Text: "products",
			ResponseType: entity.ResponseCSV,
			ResponseData: &entity.CSVPayload{File: "here.csv"},
		})

		report, err := newTestService(st).Validate(context.Background())

		assert.NoError(t, err)
		assert.True(t, report.Valid)
	})
}

func TestOptimize(t *testing.T) {
	t.Run("unused triggers are counted", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(textTrigger("1", "hello", 0))
		st.AddTrigger(textTrigger("2", "pricing", 3))
		st.AddTrigger(textTrigger("3", "shipping", 0))

		report, err := newTestService(st).Optimize(context.Background())

		assert.NoError(t, err)
		assert.False(t, report.Optimized)
		assert.Contains(t, report.Suggestions, "2 triggers have never been used")
	})

	t.Run("near duplicates are paired", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(textTrigger("1", "hello", 1))
		st.AddTrigger(textTrigger("2", "hallo", 1))

		report, err := newTestService(st).Optimize(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, report.Suggestions, `"hello" and "hallo" are very similar`)
	})

	t.Run("distinct used triggers need nothing", func(t *testing.T) {
		st := store.New()
		st.AddTrigger(textTrigger("1", "hello", 1))
		st.AddTrigger(textTrigger("2", "shipping cost", 2))

		report, err := newTestService(st).Optimize(context.Background())

		assert.NoError(t, err)
		assert.True(t, report.Optimized)
		assert.Empty(t, report.Suggestions)
	})
}

func TestStats(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		report, err := newTestService(store.New()).Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, report.TotalTriggers)
		assert.Equal(t, 0.0, report.AverageUsage)
		assert.Equal(t, "None", report.MostUsedText)
	})

	t.Run("aggregates usage and categories", func(t *testing.T) {
		st := store.New()
		first := textTrigger("1", "hello", 4)
		first.Category = "greeting"
		second := textTrigger("2", "bye", 1)
		second.Category = "greeting"
		third := textTrigger("3", "pricing", 0)
		third.Category = "sales"
		st.AddTrigger(first)
		st.AddTrigger(second)
		st.AddTrigger(third)
		st.PutDataset("data.csv", entity.Dataset{})

		report, err := newTestService(st).Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, report.TotalTriggers)
		assert.Equal(t, 5, report.TotalUsage)
		assert.Equal(t, 1.7, report.AverageUsage)
		assert.Equal(t, "hello", report.MostUsedText)
		assert.Equal(t, 4, report.MostUsedCount)
		assert.Equal(t, 1, report.DatasetCount)
		assert.Equal(t, 2, report.CategoryCount)
	})
}
