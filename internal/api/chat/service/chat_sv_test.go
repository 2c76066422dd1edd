package chatService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"botforge/internal/api/chat"
	"botforge/internal/entity"
	"botforge/internal/store"
	"botforge/pkg/render"
)

func newTestService(st *store.Store) IChatService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, st, render.New(st), store.NopFlusher{})
}

func TestSimulateMatching(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{
		ID: "1", Text: "hi",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hey!"},
	})
	st.AddTrigger(entity.Trigger{
		ID: "2", Text: "hi there",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hello to you too!"},
	})
	svc := newTestService(st)

	t.Run("first trigger in store order wins", func(t *testing.T) {
		reply, err := svc.Simulate(context.Background(), "hi there")

		assert.NoError(t, err)
		assert.True(t, reply.Matched)
		assert.Equal(t, "1", reply.TriggerID)
		assert.Equal(t, "Hey!", reply.Reply)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		reply, err := svc.Simulate(context.Background(), "HI")

		assert.NoError(t, err)
		assert.True(t, reply.Matched)
		assert.Equal(t, "1", reply.TriggerID)
	})

	t.Run("message containing the trigger matches", func(t *testing.T) {
		reply, err := svc.Simulate(context.Background(), "well hi everyone")

		assert.NoError(t, err)
		assert.True(t, reply.Matched)
	})

	t.Run("trigger containing the message matches", func(t *testing.T) {
		st2 := store.New()
		st2.AddTrigger(entity.Trigger{
			ID: "long", Text: "opening hours",
			ResponseType: entity.ResponseText,
			ResponseData: &entity.TextPayload{Text: "9 to 5"},
		})

		reply, err := newTestService(st2).Simulate(context.Background(), "hours")

		assert.NoError(t, err)
		assert.True(t, reply.Matched)
		assert.Equal(t, "long", reply.TriggerID)
	})
}

func TestResolveCountsUsage(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{
		ID: "1", Text: "hello",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hi!"},
	})
	svc := newTestService(st)

	matched, ok := svc.Resolve("hello")

	assert.True(t, ok)
	assert.Equal(t, 1, matched.Usage)
	stored, _ := st.TriggerByID("1")
	assert.Equal(t, 1, stored.Usage)

	_, ok = svc.Resolve("no such phrase")
	assert.False(t, ok)
	stored, _ = st.TriggerByID("1")
	assert.Equal(t, 1, stored.Usage)
}

func TestSimulateUsageCounter(t *testing.T) {
	st := store.New()
	st.AddTrigger(entity.Trigger{
		ID: "1", Text: "hello",
		ResponseType: entity.ResponseText,
		ResponseData: &entity.TextPayload{Text: "Hi!"},
	})
	svc := newTestService(st)

	_, err := svc.Simulate(context.Background(), "hello")
	assert.NoError(t, err)
	reply, err := svc.Simulate(context.Background(), "hello")
	assert.NoError(t, err)

	stored, _ := st.TriggerByID("1")
	assert.Equal(t, 2, stored.Usage)
	assert.True(t, reply.Matched)
}

func TestSimulateFallback(t *testing.T) {
	svc := newTestService(store.New())

	reply, err := svc.Simulate(context.Background(), "completely unknown")

	assert.NoError(t, err)
	assert.False(t, reply.Matched)
	assert.Equal(t, chat.FallbackReply, reply.Reply)
	assert.Empty(t, reply.TriggerID)
}

func TestSimulateEmptyMessage(t *testing.T) {
	svc := newTestService(store.New())

	_, err := svc.Simulate(context.Background(), "   ")

	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}
