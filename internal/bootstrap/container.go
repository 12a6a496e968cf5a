package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/meetingscribe/api/internal/config"
	"github.com/meetingscribe/api/internal/controller"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/internal/pkg/mailer"
	"github.com/meetingscribe/api/internal/repository/implementation"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/internal/service"
	"github.com/meetingscribe/api/pkg/cloudrecording"
	"github.com/meetingscribe/api/pkg/embedding"
	"github.com/meetingscribe/api/pkg/embedding/jina"
	"github.com/meetingscribe/api/pkg/extraction"
	"github.com/meetingscribe/api/pkg/insightcache"
	"github.com/meetingscribe/api/pkg/llm/factory"
	"github.com/meetingscribe/api/pkg/meetingevents"
	pktNats "github.com/meetingscribe/api/pkg/nats"
	"github.com/meetingscribe/api/pkg/transcription"
	"github.com/meetingscribe/api/pkg/usage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const insightsCacheTTL = 5 * time.Minute

// Container wires every service and controller for the meeting-
// intelligence backend. Wiring lives here, not in main.go; cmd/rest builds
// its persistence layer through it, while cmd/migrate opens its own
// connection with database.NewGormDBFromDSN.
type Container struct {
	AuthController        controller.IAuthController
	LiveSessionController controller.ILiveSessionController
	MeetingController     controller.IMeetingController
	IssueController       controller.IIssueController

	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	events := meetingevents.NewNatsPublisher(natsPub, sysLogger)

	publisherService := service.NewPublisherService(cfg.Keys.ExampleTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.ExampleTopic, uowFactory, embeddingProvider)

	// MOCK_MODE, or a missing provider API key, forces the mock
	// implementations so the ingestion and extraction pipelines are
	// exercisable without live provider credentials.
	var transcriber transcription.Provider
	if cfg.App.MockMode || cfg.Keys.TranscribeKey == "" {
		transcriber = transcription.NewMockProvider()
		log.Printf("[INFO] Using Transcription Provider: MOCK")
	} else {
		transcriber = transcription.NewHTTPProvider(cfg.Keys.TranscribeURL, cfg.Keys.TranscribeKey)
		log.Printf("[INFO] Using Transcription Provider: HTTP (%s)", cfg.Keys.TranscribeURL)
	}

	var extractor extraction.Provider
	if cfg.App.MockMode || cfg.Keys.ExtractKey == "" {
		extractor = extraction.NewMockProvider()
		log.Printf("[INFO] Using Extraction Provider: MOCK")
	} else {
		extractor = extraction.NewLLMExtractorProvider(llmProvider)
		log.Printf("[INFO] Using Extraction Provider: LLM (%s)", cfg.Ai.LLMProvider)
	}

	usageCounterRepo := implementation.NewUsageCounterRepository(db)
	usageGate := usage.NewGate(usageCounterRepo)

	// Redis backs the insights read-through cache only. A parse failure,
	// connection failure, or any later command error is a warning, never
	// fatal — every caller treats a cache miss the same as Redis being down.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	insightCache := insightcache.NewCache(rdb, insightsCacheTTL, sysLogger)

	cloudProvider := cloudrecording.NewHTTPProvider(cfg.Cloud.BaseURL, cfg.Cloud.ClientID, cfg.Cloud.ClientSecret)

	authService := service.NewAuthService(uowFactory)

	issueService := service.NewTrackedIssueService(uowFactory, events, sysLogger)

	liveSessionManager := service.NewLiveSessionManager(
		uowFactory,
		transcriber,
		extractor,
		usageGate,
		events,
		sysLogger,
		publisherService,
		cfg.Keys.ExampleTopic,
	)

	meetingIngest := service.NewMeetingIngest(
		uowFactory,
		transcriber,
		usageGate,
		cloudProvider,
		sysLogger,
		publisherService,
		cfg.Keys.ExampleTopic,
	)

	meetingService := service.NewMeetingService(
		uowFactory,
		extractor,
		usageGate,
		issueService,
		emailService,
		sysLogger,
		insightCache,
	)

	return &Container{
		AuthController:        controller.NewAuthController(authService),
		LiveSessionController: controller.NewLiveSessionController(liveSessionManager),
		MeetingController:     controller.NewMeetingController(meetingService, meetingIngest),
		IssueController:       controller.NewIssueController(issueService),

		ConsumerService: consumerService,
	}
}
