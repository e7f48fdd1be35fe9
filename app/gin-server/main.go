package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shahhub/resumehub/config"
	"github.com/shahhub/resumehub/internal/api/handlers"
	"github.com/shahhub/resumehub/internal/api/middleware"
	"github.com/shahhub/resumehub/internal/api/routes"
	"github.com/shahhub/resumehub/internal/cache"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/logger"
	"github.com/shahhub/resumehub/internal/providers/llm"
	mongorepo "github.com/shahhub/resumehub/internal/repositories/mongo"
	pgrepo "github.com/shahhub/resumehub/internal/repositories/postgres"
	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/storage"
	"github.com/shahhub/resumehub/internal/workers"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("postgres init failed")
	}
	if err := config.MigratePostgres(); err != nil {
		log.WithError(err).Fatal("postgres migrate failed")
	}
	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("mongo init failed")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Fatal("mongo index setup failed")
	}
	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("redis init failed")
	}

	provider, err := llm.NewVertexGemini(ctx,
		os.Getenv("VERTEX_PROJECT_ID"),
		os.Getenv("VERTEX_LOCATION"),
		os.Getenv("VERTEX_MODEL"))
	if err != nil {
		log.WithError(err).Fatal("vertex init failed")
	}
	defer provider.Close()

	photoStore, err := storage.NewGCSStore(ctx, os.Getenv("GCS_BUCKET"))
	if err != nil {
		log.WithError(err).Fatal("gcs init failed")
	}
	defer photoStore.Close()

	alloc := identgen.NewUUID()
	store := services.NewDocumentStore(alloc)
	editor := services.NewEditorService(store, alloc)

	accounts := pgrepo.NewAccountRepository(config.PostgresDB)
	resumes := mongorepo.NewResumeRepository(config.MongoDatabase())

	autosave := services.NewAutosaveService(store, resumes, 0, log)
	editor.Subscribe(autosave)

	rewrite := services.NewRewriteService(provider, editor)
	keywords := services.NewKeywordService(provider, cache.NewRedisCache(config.RedisClient), accounts, log)

	queue := workers.NewImportQueue(config.RedisClient)
	hostname, _ := os.Hostname()
	worker := workers.NewImportWorker(config.RedisClient, provider, editor, alloc, log, hostname)
	go func() {
		if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("import worker stopped")
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:    handlers.NewAuthHandler(accounts, log),
		Account: handlers.NewAccountHandler(accounts, log),
		Editor:  handlers.NewEditorHandler(editor, autosave),
		Import:  handlers.NewImportHandler(editor, queue, accounts, log),
		Layout:  handlers.NewLayoutHandler(editor),
		Rewrite: handlers.NewRewriteHandler(rewrite),
		Keyword: handlers.NewKeywordHandler(editor, keywords),
		Photo:   handlers.NewPhotoHandler(editor, photoStore, photoStore),
		Saved:   handlers.NewSavedHandler(resumes),
		WS:      handlers.NewWSHandler(config.RedisClient, editor, log),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
