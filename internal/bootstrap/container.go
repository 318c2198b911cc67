package bootstrap

import (
	"context"
	"log"

	"amdlingo-be/internal/config"
	"amdlingo-be/internal/controller"
	"amdlingo-be/internal/pkg/logger"
	"amdlingo-be/internal/repository/contract"
	"amdlingo-be/internal/repository/implementation"
	"amdlingo-be/internal/repository/memory"
	"amdlingo-be/internal/service"
	"amdlingo-be/pkg/ai/document"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/worker"
	"amdlingo-be/pkg/fetcher"
	"amdlingo-be/pkg/llm/factory"

	pktNats "amdlingo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	MasterController   controller.IMasterController
	WorkerController   controller.IWorkerController
	AnalysisController controller.IAnalysisController
	SessionController  controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS forwarding is optional
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, sysLogger.Named("nats"))
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	sessionRepo := newSessionRepository(cfg, c)

	// 4. AI pipeline
	llmProvider, err := factory.NewLLMProvider(factory.Settings{
		Provider: cfg.LLM.Provider,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)

	docFetcher := fetcher.NewFetcher(cfg.Fetch.Timeout, sysLogger.Named("fetcher"))
	router := master.NewRouter(docFetcher, sysLogger.Named("master"))
	synthesizer := document.NewSynthesizer(llmProvider, document.Settings{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, sysLogger.Named("document"))
	dispatcher := worker.NewDispatcher(synthesizer, sysLogger.Named("worker"))

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		forwarder,
		sysLogger,
	)

	masterService := service.NewMasterService(router)
	workerService := service.NewWorkerService(dispatcher, synthesizer)
	sessionService := service.NewSessionService(sessionRepo)
	analysisService := service.NewAnalysisService(router, dispatcher, sessionRepo, publisherService, sysLogger)

	// 6. Controllers
	c.HealthController = controller.NewHealthController(cfg.LLM.Provider, cfg.History.Backend)
	c.MasterController = controller.NewMasterController(masterService)
	c.WorkerController = controller.NewWorkerController(workerService)
	c.AnalysisController = controller.NewAnalysisController(analysisService)
	c.SessionController = controller.NewSessionController(sessionService)

	return c
}

func newSessionRepository(cfg *config.Config, c *Container) contract.SessionHistoryRepository {
	if cfg.History.Backend != "redis" {
		return memory.NewSessionHistoryRepository(cfg.History.TTL)
	}

	opt, err := redis.ParseURL(cfg.History.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.History.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory history", err)
		_ = rdb.Close()
		return memory.NewSessionHistoryRepository(cfg.History.TTL)
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return implementation.NewRedisSessionHistoryRepository(rdb, cfg.History.TTL)
}

// Close releases bus and storage connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
