package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/analytics"
	"studykit-backend/internal/documents"
	"studykit-backend/internal/generation"
	"studykit-backend/internal/llm"
	"studykit-backend/internal/llm/openrouter"
	"studykit-backend/internal/shared/config"
	"studykit-backend/internal/shared/server"
	"studykit-backend/internal/shared/storage/db"
	"studykit-backend/internal/shared/util"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	LLM               llm.Client
	DocumentsRepo     documents.Repo
	GenerationService *generation.Service
	DocumentsService  *documents.Service
	GenerationHandler *generation.Handler
	DocumentsHandler  *documents.Handler
	AnalyticsHandler  *analytics.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		GenerationHandler: app.GenerationHandler,
		DocumentsHandler:  app.DocumentsHandler,
		AnalyticsHandler:  app.AnalyticsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		_ = sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	llmClient := llm.Client(llm.Disabled{})
	if strings.TrimSpace(app.Config.OpenRouterAPIKey) != "" {
		client, err := openrouter.New(openrouter.Config{
			APIKey:   app.Config.OpenRouterAPIKey,
			BaseURL:  app.Config.LLMBaseURL,
			Model:    app.Config.LLMModel,
			Referer:  app.Config.LLMReferer,
			AppTitle: app.Config.LLMAppTitle,
		})
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: OPENROUTER_API_KEY empty; generation endpoints disabled")
	}

	var docRepo documents.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	ids := util.NewTimeID()
	genSvc := &generation.Service{LLM: llmClient, MaxTokens: app.Config.LLMMaxTokens}
	docSvc := &documents.Service{Repo: docRepo, Gen: genSvc, IDs: ids}

	app.LLM = llmClient
	app.DocumentsRepo = docRepo
	app.GenerationService = genSvc
	app.DocumentsService = docSvc
	app.GenerationHandler = generation.NewHandler(genSvc)
	app.DocumentsHandler = documents.NewHandler(docSvc, app.Config.DemoMode)
	app.AnalyticsHandler = analytics.NewHandler(ids, app.Config.DemoMode)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
