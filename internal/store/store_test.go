package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"botforge/internal/entity"
)

func TestStoreTriggers(t *testing.T) {
	s := New()

	s.AddTrigger(entity.Trigger{ID: "a", Text: "hello"})
	s.AddTrigger(entity.Trigger{ID: "b", Text: "pricing"})

	t.Run("preserves insertion order", func(t *testing.T) {
		triggers := s.Triggers()
		assert.Len(t, triggers, 2)
		assert.Equal(t, "a", triggers[0].ID)
		assert.Equal(t, "b", triggers[1].ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		trigger, ok := s.TriggerByID("b")
		assert.True(t, ok)
		assert.Equal(t, "pricing", trigger.Text)

		_, ok = s.TriggerByID("missing")
		assert.False(t, ok)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		triggers := s.Triggers()
		triggers[0].Text = "mutated"

		original, _ := s.TriggerByID("a")
		assert.Equal(t, "hello", original.Text)
	})

	t.Run("usage increments exactly one trigger", func(t *testing.T) {
		assert.True(t, s.IncrementUsage("a"))
		assert.False(t, s.IncrementUsage("missing"))

		bumped, _ := s.TriggerByID("a")
		untouched, _ := s.TriggerByID("b")
		assert.Equal(t, 1, bumped.Usage)
		assert.Equal(t, 0, untouched.Usage)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		assert.True(t, s.DeleteTrigger("a"))
		assert.False(t, s.DeleteTrigger("a"))
		assert.Equal(t, 1, s.TriggerCount())
	})
}

func TestStoreDatasets(t *testing.T) {
	s := New()

	s.PutDataset("b.csv", entity.Dataset{Headers: []string{"x"}})
	s.PutDataset("a.csv", entity.Dataset{Headers: []string{"y"}})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"a.csv", "b.csv"}, s.DatasetNames())
	})

	t.Run("same name replaces", func(t *testing.T) {
		s.PutDataset("a.csv", entity.Dataset{Headers: []string{"z"}})

		dataset, ok := s.Dataset("a.csv")
		assert.True(t, ok)
		assert.Equal(t, []string{"z"}, dataset.Headers)
		assert.Equal(t, 2, s.DatasetCount())
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, s.DeleteDataset("b.csv"))
		assert.False(t, s.DeleteDataset("b.csv"))
		assert.Equal(t, 1, s.DatasetCount())
	})
}

func TestStoreReplaceAndClear(t *testing.T) {
	s := New()
	s.AddTrigger(entity.Trigger{ID: "old"})
	s.PutDataset("old.csv", entity.Dataset{})

	s.Replace(
		[]entity.Trigger{{ID: "new"}},
		map[string]entity.Dataset{"new.csv": {}},
	)

	assert.Equal(t, 1, s.TriggerCount())
	_, ok := s.TriggerByID("new")
	assert.True(t, ok)
	_, ok = s.Dataset("old.csv")
	assert.False(t, ok)

	s.Clear()

	assert.Equal(t, 0, s.TriggerCount())
	assert.Equal(t, 0, s.DatasetCount())
}
