package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/aysenurmengi/ai-languageExercises/internal/config"
	"github.com/aysenurmengi/ai-languageExercises/internal/embedding"
	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/api"
	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/service"
	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/store"
	"github.com/aysenurmengi/ai-languageExercises/internal/imagegen"
	"github.com/aysenurmengi/ai-languageExercises/internal/llm"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/pipeline"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

func main() {
	// Load .env if present; the API key always comes from the environment.
	_ = godotenv.Load()

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("exercise_service")
	appLogger.Info("Logger initialized")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		appLogger.Fatal("OPENAI_API_KEY is not set")
	}

	// Uploads directory for temporary files
	if err := os.MkdirAll(cfg.Storage.UploadsDir, 0o755); err != nil {
		appLogger.Fatal(fmt.Sprintf("failed to create uploads directory: %v", err))
	}

	// Embedding cache store (file by default, redis as alternative backend)
	var embeddingStore store.EmbeddingStore
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := store.NewRedisStore(&cfg.Redis)
		if err != nil {
			appLogger.Fatal(err.Error())
		}
		defer redisStore.Close()
		embeddingStore = redisStore
	default:
		fileStore, err := store.NewFileStore(cfg.Storage.EmbeddingsDir)
		if err != nil {
			appLogger.Fatal(err.Error())
		}
		embeddingStore = fileStore
	}
	appLogger.Info("Embedding store initialized (backend: " + cfg.Storage.Backend + ")")

	// Upstream clients
	timeout := time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	embedder := embedding.NewOpenAIModel(apiKey, cfg.OpenAI.EmbeddingModel, timeout)
	qaLLM := llm.NewOpenAI(apiKey, cfg.OpenAI.SummaryModel, 0.7, 0, timeout)
	summaryLLM := llm.NewOpenAI(apiKey, cfg.OpenAI.SummaryModel, 0.4, cfg.Summary.MaxTokens, timeout)
	quizLLM := llm.NewOpenAI(apiKey, cfg.OpenAI.ChatModel, 0.7, 0, timeout)
	imageGenerator := imagegen.NewGenerator(apiKey, cfg.OpenAI.ImageModel, timeout)

	// Pipelines (Store -> Pipelines -> Service -> Handler)
	qaSplitter := splitters.NewCharSplitter(cfg.QA.ChunkSize, cfg.QA.ChunkOverlap)
	summarySplitter := splitters.NewSentenceSplitter(cfg.Summary.ChunkMaxLength)

	ingestPipeline := pipeline.NewIngestPipeline(embedder, embeddingStore, qaSplitter, appLogger)
	retrievalPipeline := pipeline.NewRetrievalPipeline(embedder, embeddingStore, qaSplitter, cfg.QA.TopK, appLogger)
	qaPipeline := pipeline.NewQAPipeline(qaLLM, appLogger)
	summaryPipeline := pipeline.NewSummaryPipeline(summaryLLM, summarySplitter, appLogger)

	svc := service.New(ingestPipeline, retrievalPipeline, qaPipeline, summaryPipeline, imageGenerator, quizLLM, appLogger)
	apiHandler := api.NewHandler(svc, cfg.Storage.UploadsDir, cfg.Storage.MaxUploadMB, appLogger)
	appLogger.Info("Dependencies injected")

	// Setup and start Gin router
	router := api.SetupRouter(apiHandler, cfg)

	serverAddress := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server on " + serverAddress)

	if err := router.Run(serverAddress); err != nil {
		appLogger.Fatal(err.Error())
	}
}
