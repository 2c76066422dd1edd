package triggerService

import (
	"botforge/internal/api/chat"
	chatService "botforge/internal/api/chat/service"
	"botforge/internal/api/trigger"
	"botforge/internal/store"
	"botforge/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ITriggerService interface {
	CreateTrigger(ctx context.Context, req trigger.CreateTriggerRequest) (trigger.TriggerResponse, error)
	GetAllTriggers(ctx context.Context) (*trigger.TriggerListResponse, error)
	GetTriggerByID(ctx context.Context, id string) (trigger.TriggerResponse, error)
	DeleteTrigger(ctx context.Context, id string) error
	SeedSampleTriggers(ctx context.Context) (*trigger.TriggerListResponse, error)
	TestTrigger(ctx context.Context, id string) (chat.Reply, error)
}

type triggerService struct {
	log         *logrus.Logger
	store       *store.Store
	flusher     store.Flusher
	chatService chatService.IChatService
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	st *store.Store,
	flusher store.Flusher,
	cs chatService.IChatService,
	utils utils.IUtils,
) ITriggerService {
	return &triggerService{
		log:         log,
		store:       st,
		flusher:     flusher,
		chatService: cs,
		utils:       utils,
	}
}
