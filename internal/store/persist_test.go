package store

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botforge/internal/entity"
	"botforge/pkg/keyval"
)

type memoryKV map[string][]byte

func (m memoryKV) Set(ctx context.Context, key string, value []byte) error {
	m[key] = value
	return nil
}

func (m memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := m[key]
	if !ok {
		return nil, keyval.ErrNotFound
	}
	return value, nil
}

func (m memoryKV) Delete(ctx context.Context, key string) error {
	delete(m, key)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestPersisterFlushAndLoad(t *testing.T) {
	kv := memoryKV{}

	source := New()
	source.AddTrigger(entity.Trigger{
		ID: "1", Text: "hello",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hi!"},
		Usage:        2,
	})
	source.PutDataset("products.csv", entity.Dataset{
		Headers: []string{"name"},
		Records: []entity.Record{{"name": "Widget"}},
	})

	require.NoError(t, NewPersister(source, kv, testLogger()).Flush(context.Background()))

	restored := New()
	require.NoError(t, NewPersister(restored, kv, testLogger()).Load(context.Background()))

	trigger, ok := restored.TriggerByID("1")
	require.True(t, ok)
	assert.Equal(t, 2, trigger.Usage)
	payload, ok := trigger.ResponseData.(*entity.TextPayload)
	require.True(t, ok)
	assert.Equal(t, "Hi!", payload.Text)

	dataset, ok := restored.Dataset("products.csv")
	require.True(t, ok)
	assert.Equal(t, "Widget", dataset.Records[0]["name"])
}

func TestPersisterLoadFreshBackend(t *testing.T) {
	restored := New()

	err := NewPersister(restored, memoryKV{}, testLogger()).Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, restored.TriggerCount())
	assert.Equal(t, 0, restored.DatasetCount())
}
