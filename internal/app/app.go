package app

import (
	"log"

	"github.com/feedworks/feedlens/internal/config"
	"github.com/feedworks/feedlens/internal/handler"
	"github.com/feedworks/feedlens/internal/pipeline"
	"github.com/feedworks/feedlens/internal/seeder"
	"github.com/feedworks/feedlens/pkg/llm"
	"github.com/feedworks/feedlens/pkg/store"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	LLMProvider llm.Provider
	Store       store.Store
	Enricher    *pipeline.Enricher
	Seeder      *seeder.Seeder
	Handler     *handler.FeedbackHandler
}

// New initializes a new application with all dependencies
func New() (*App, error) {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize LLM provider based on configuration
	factory := llm.NewFactory(llm.Config{
		Provider:        cfg.LLMProvider,
		OllamaURL:       cfg.OllamaURL,
		OllamaModel:     cfg.OllamaModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIModel:     cfg.OpenAIModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		BedrockRegion:   cfg.BedrockRegion,
		BedrockModel:    cfg.BedrockModel,
	})
	provider, err := factory.CreateProvider()
	if err != nil {
		return nil, err
	}

	// Initialize store: Postgres when configured, in-memory otherwise
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		st = pg
	} else {
		log.Printf("WARNING: DATABASE_URL not configured, using in-memory store (data is lost on restart)")
		st = store.NewMemory()
	}

	enricher := pipeline.NewEnricher(provider, st)
	sdr := seeder.NewSeeder(st, enricher)
	h := handler.NewFeedbackHandler(st, enricher, sdr)

	return &App{
		Config:      cfg,
		LLMProvider: provider,
		Store:       st,
		Enricher:    enricher,
		Seeder:      sdr,
		Handler:     h,
	}, nil
}

// LogStartupInfo logs application startup information
func (a *App) LogStartupInfo() {
	log.Printf("Starting Feedlens feedback digest service on port %s", a.Config.Port)
	log.Printf("LLM Provider: %s", a.LLMProvider.Name())

	if a.Config.DatabaseURL != "" {
		log.Printf("Store: PostgreSQL")
	} else {
		log.Printf("Store: in-memory")
	}

	if a.Config.SeedAuthToken != "" {
		log.Printf("Seed endpoint authentication: enabled (Bearer token required)")
	} else {
		log.Printf("Seed endpoint authentication: disabled (WARNING: anyone can trigger seeding)")
	}
}
