package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/ai"
	"github.com/shelfward/shelfward/internal/config"
	"github.com/shelfward/shelfward/internal/covers"
	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/database/books"
	"github.com/shelfward/shelfward/internal/database/categories"
	"github.com/shelfward/shelfward/internal/database/chat"
	"github.com/shelfward/shelfward/internal/database/notes"
	"github.com/shelfward/shelfward/internal/database/settings"
	"github.com/shelfward/shelfward/internal/database/subscriptions"
	http_controllers "github.com/shelfward/shelfward/internal/http"
	"github.com/shelfward/shelfward/internal/reader"
	"github.com/shelfward/shelfward/internal/recommend"
	"github.com/shelfward/shelfward/internal/scheduler"
	"github.com/shelfward/shelfward/internal/services"
	"github.com/shelfward/shelfward/internal/speech"
	"github.com/shelfward/shelfward/internal/storage"
	"github.com/shelfward/shelfward/internal/subscription"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Shelfward v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	fileStore, err := storage.NewClient(cfg.Library.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize library storage: %v", err)
	}

	// Cache book covers next to the database.
	coverCache, err := covers.NewCache(filepath.Join(filepath.Dir(cfg.Database.Path), "covers"))
	if err != nil {
		log.Printf("WARNING: Failed to initialize cover cache: %v", err)
	}

	booksRepo := books.NewRepository(db.DB)
	categoriesRepo := categories.NewRepository(db.DB)
	notesRepo := notes.NewRepository(db.DB)
	chatRepo := chat.NewRepository(db.DB)
	subscriptionsRepo := subscriptions.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	subscriptionService := subscription.NewService(subscriptionsRepo)

	// The AI assistant stays disabled until an API key is configured;
	// asking then reports the missing configuration instead of failing
	// the whole startup.
	var asker ai.Asker
	if cfg.AI.APIKey != "" {
		asker = ai.NewOpenAIClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	} else {
		log.Printf("WARNING: AI API key is not set. The reading assistant will be unavailable. Set 'AI_API_KEY' to enable.")
	}

	libraryService := services.NewLibraryService(booksRepo, fileStore)
	assistantService := services.NewAssistantService(booksRepo, chatRepo, fileStore, asker, subscriptionService)
	recommendService := recommend.NewService(booksRepo, subscriptionService)
	speechController := speech.NewController(speech.NoopEngine{}, subscriptionService)

	sweep := scheduler.NewExpirySweepScheduler(subscriptionService, cfg.ExpirySweep)
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	if err := sweep.Start(sweepCtx); err != nil {
		log.Fatalf("Failed to start expiry sweep: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		CategoriesStore: categoriesRepo,
		BooksStore:      booksRepo,
		NotesStore:      notesRepo,
		ChatStore:       chatRepo,
		SettingsStore:   settingsRepo,
		Progress:        reader.NewProgress(booksRepo),
		Importer:        libraryService,
		Assistant:       assistantService,
		Subscription:    subscriptionService,
		Recommender:     recommendService,
		Speech:          speechController,
		CoverCache:      coverCache,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		sweepCancel()
		sweep.Stop()
	}

	Serve(router, cfg, onShutdown)
}
