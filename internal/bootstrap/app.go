package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"journey-backend/internal/journey"
	"journey-backend/internal/roi"
	"journey-backend/internal/shared/cache"
	"journey-backend/internal/shared/config"
	"journey-backend/internal/shared/server"
	"journey-backend/internal/shared/storage/db"
	"journey-backend/internal/shared/storage/object"
	localstore "journey-backend/internal/shared/storage/object/local"
	s3store "journey-backend/internal/shared/storage/object/s3"
	"journey-backend/internal/shared/telemetry"
	"journey-backend/internal/suggestions"
)

const suggestionCachePrefix = "journey:"

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Assets            object.ObjectStore
	Cache             cache.Store
	CatalogRepo       journey.Repo
	CatalogService    *journey.Service
	CatalogSource     string
	Store             *journey.Store
	Resolver          suggestions.Resolver
	JourneyHandler    *journey.Handler
	SuggestionHandler *suggestions.Handler
	ROIHandler        *roi.Handler
}

// Build prepares dependencies and the router. It fails when the catalog
// that would be served does not validate.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.AssetStoreType) == "" {
		cfg.AssetStoreType = "local"
	}
	telemetry.Configure(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if sqlDB != nil {
		app.CatalogRepo = &journey.PGRepo{DB: sqlDB}
	} else {
		app.CatalogRepo = journey.NewMemoryRepo()
	}
	app.CatalogService = journey.NewService(app.CatalogRepo)

	catalog, source, err := app.CatalogService.Load(ctx, cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	app.Store = journey.NewStore(catalog)
	app.CatalogSource = source
	telemetry.Info("catalog.loaded", map[string]any{
		"source":   source,
		"checksum": app.Store.Checksum(),
		"chapters": len(catalog.Chapters),
		"packages": len(catalog.Packages),
	})

	app.Assets, err = NewAssetStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.Cache = buildCache(ctx, cfg)
	cached := suggestions.NewCachedResolver(suggestions.StaticResolver{}, app.Cache, cfg.SuggestionCacheTTL)
	cached.Known = func(id string) bool {
		_, ok := app.Store.GetChapterByID(id)
		return ok
	}
	app.Resolver = cached

	app.JourneyHandler = journey.NewHandler(app.Store, app.Assets)
	app.SuggestionHandler = suggestions.NewHandler(app.Store, app.Resolver)
	app.ROIHandler = roi.NewHandler(app.Store)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		JourneyHandler:    app.JourneyHandler,
		SuggestionHandler: app.SuggestionHandler,
		ROIHandler:        app.ROIHandler,
	})
	return app, nil
}

// Close releases connections held by the app.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if closer, ok := a.Cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.db_skipped", map[string]any{
			"reason": "DATABASE_URL empty; using in-memory snapshots",
		})
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_unavailable", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// NewAssetStore opens the configured diagram store.
func NewAssetStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.AssetStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("ASSET_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.AssetDir), nil
	}
}

func buildCache(ctx context.Context, cfg config.Config) cache.Store {
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisAddr, suggestionCachePrefix)
		if err == nil {
			return store
		}
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		})
	}
	return cache.NewMemoryStore(time.Now)
}
