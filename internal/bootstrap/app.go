package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/personas"
	"roadmap-backend/internal/quiz"
	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/services/health"
	"roadmap-backend/internal/shared/cache"
	"roadmap-backend/internal/shared/config"
	"roadmap-backend/internal/shared/server"
	"roadmap-backend/internal/shared/storage/db"
	"roadmap-backend/internal/shared/storage/object"
	"roadmap-backend/internal/shared/storage/object/local"
	"roadmap-backend/internal/shared/storage/object/s3"
	"roadmap-backend/internal/shared/telemetry"
)

// App holds the wired HTTP engine and the resources it owns.
type App struct {
	Engine *gin.Engine
	DB     *sql.DB
	Cache  *cache.Cache
}

// Build wires storage, caches, and handlers from config. Optional
// backends degrade: no database means in-memory sessions, no Redis
// means no shared cache.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redis := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword)

	personaSvc := personas.NewService(personas.NewObjectRepo(store, cfg.PersonaPrefix), redis)
	roadmapSvc := roadmap.NewService(personaSvc, redis)

	var (
		database *sql.DB
		sessions quiz.Store
	)
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err == nil {
			err = db.RunMigrations(ctx, database)
		}
		if err != nil {
			telemetry.Warn("database unavailable, using in-memory sessions", map[string]any{"error": err.Error()})
			database = nil
		}
	}
	if database != nil {
		sessions = quiz.NewPGStore(database)
	} else {
		sessions = quiz.NewMemoryStore()
	}

	engine := server.NewEngine(cfg)
	api := engine.Group("/api/v1")

	health.NewHandler(health.NewService(cfg.Env)).Register(api)
	quiz.NewHandler(sessions).Register(api)
	personas.NewHandler(personaSvc).Register(api)
	roadmap.NewHandler(roadmapSvc, sessions).Register(api)

	telemetry.Info("app wired", map[string]any{
		"env":         cfg.Env,
		"objectStore": cfg.ObjectStoreType,
		"database":    database != nil,
		"redis":       redis != nil,
	})

	return &App{Engine: engine, DB: database, Cache: redis}, nil
}

// Close releases the app's long-lived resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
	_ = a.Cache.Close()
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	default:
		return local.New(cfg.PersonaDir), nil
	}
}
