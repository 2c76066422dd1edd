package chatService

import (
	"botforge/internal/api/chat"
	"botforge/internal/entity"
	"botforge/internal/store"
	"botforge/pkg/render"
	"context"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	Simulate(ctx context.Context, message string) (chat.Reply, error)
	Resolve(message string) (entity.Trigger, bool)
}

type chatService struct {
	log      *logrus.Logger
	store    *store.Store
	renderer *render.Renderer
	flusher  store.Flusher
}

func New(
	log *logrus.Logger,
	st *store.Store,
	renderer *render.Renderer,
	flusher store.Flusher,
) IChatService {
	return &chatService{
		log:      log,
		store:    st,
		renderer: renderer,
		flusher:  flusher,
	}
}
