package config

import (
	backupHandler "botforge/internal/api/backup/handler"
	backupService "botforge/internal/api/backup/service"
	chatHandler "botforge/internal/api/chat/handler"
	chatService "botforge/internal/api/chat/service"
	datasetHandler "botforge/internal/api/dataset/handler"
	datasetService "botforge/internal/api/dataset/service"
	insightHandler "botforge/internal/api/insight/handler"
	insightService "botforge/internal/api/insight/service"
	triggerHandler "botforge/internal/api/trigger/handler"
	triggerService "botforge/internal/api/trigger/service"
	"botforge/internal/middleware"
	"botforge/internal/store"
	"botforge/pkg/keyval"
	"botforge/pkg/render"
	"botforge/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	keyValue   keyval.IKeyValue
	store      *store.Store
	persister  *store.Persister
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithKeyValue(kv keyval.IKeyValue) ServerOption {
	return func(s *Server) error {
		s.keyValue = kv
		return nil
	}
}

func WithStore() ServerOption {
	return func(s *Server) error {
		if s.keyValue == nil {
			return fmt.Errorf("key-value client must be initialized before store")
		}
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before store")
		}
		s.store = store.New()
		s.persister = store.NewPersister(s.store, s.keyValue, s.log)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

// Persister exposes the durability loop so main can restore state before the
// server starts and flush it on shutdown.
func (s *Server) Persister() *store.Persister {
	return s.persister
}

func (s *Server) RegisterHandler() {
	renderer := render.New(s.store)

	// Chat Domain
	chatServices := chatService.New(s.log, s.store, renderer, s.persister)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Trigger Domain
	triggerServices := triggerService.New(s.log, s.store, s.persister, chatServices, s.utils)
	triggerHandlers := triggerHandler.New(s.log, s.validator, s.middleware, triggerServices)

	// Dataset Domain
	datasetServices := datasetService.New(s.log, s.store, s.persister)
	datasetHandlers := datasetHandler.New(s.log, s.validator, s.middleware, datasetServices)

	// Insight Domain
	insightServices := insightService.New(s.log, s.store)
	insightHandlers := insightHandler.New(s.log, s.middleware, insightServices)

	// Backup Domain
	backupServices := backupService.New(s.log, s.store, s.persister)
	backupHandlers := backupHandler.New(s.log, s.middleware, backupServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		chatHandlers, triggerHandlers, datasetHandlers, insightHandlers, backupHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
