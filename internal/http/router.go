package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	categoriesController := NewCategoriesController(cfg.CategoriesStore)
	booksController := NewBooksController(cfg.BooksStore, cfg.Progress, cfg.Importer)
	notesController := NewNotesController(cfg.NotesStore)
	chatController := NewChatController(cfg.ChatStore, cfg.Assistant)
	subscriptionController := NewSubscriptionController(cfg.Subscription)
	settingsController := NewSettingsController(cfg.SettingsStore)
	recommendationsController := NewRecommendationsController(cfg.Recommender)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Category endpoints
	router.GET("/api/categories", categoriesController.ListCategories)
	router.POST("/api/categories", categoriesController.CreateCategory)
	router.DELETE("/api/categories/:id", categoriesController.DeleteCategory)

	// Books API endpoints
	router.GET("/api/books", booksController.ListBooks)
	router.POST("/api/books/import", booksController.ImportBook)
	router.GET("/api/books/:id", booksController.GetBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)
	router.GET("/api/books/:id/pages/:page", booksController.GetPage)
	router.PUT("/api/books/:id/progress", booksController.UpdateProgress)
	router.PUT("/api/books/:id/category", booksController.UpdateCategory)
	router.POST("/api/books/:id/favorite", booksController.ToggleFavorite)
	router.POST("/api/books/:id/complete", booksController.MarkCompleted)

	// Book cover endpoint
	if cfg.CoverCache != nil {
		coversController := NewCoversController(cfg.CoverCache, cfg.BooksStore)
		router.GET("/api/books/:id/cover", coversController.GetCover)
	}

	// Notes endpoints
	router.GET("/api/notes", notesController.ListAllNotes)
	router.DELETE("/api/notes/:id", notesController.DeleteNote)
	router.GET("/api/books/:id/notes", notesController.ListBookNotes)
	router.POST("/api/books/:id/notes", notesController.CreateNote)

	// AI assistant chat endpoints
	router.GET("/api/chat", chatController.ListAllChat)
	router.GET("/api/books/:id/chat", chatController.ListBookChat)
	router.POST("/api/books/:id/chat", chatController.Ask)
	router.DELETE("/api/books/:id/chat", chatController.ClearBookChat)

	// Subscription endpoints
	router.GET("/api/subscription", subscriptionController.GetSubscription)
	router.GET("/api/subscription/plans", subscriptionController.ListPlans)
	router.POST("/api/subscription/upgrade", subscriptionController.Upgrade)
	router.POST("/api/subscription/cancel", subscriptionController.Cancel)

	// Settings endpoints
	router.GET("/api/settings", settingsController.GetSettings)
	router.PUT("/api/settings", settingsController.UpdateSettings)

	// Recommendation endpoints
	router.GET("/api/recommendations", recommendationsController.ListRecommendations)
	router.POST("/api/recommendations/track", recommendationsController.TrackInteraction)
	router.POST("/api/recommendations/claim", recommendationsController.ClaimBook)

	// Speech endpoints
	if cfg.Speech != nil {
		speechController := NewSpeechController(cfg.Speech)
		router.POST("/api/speech/speak", speechController.Speak)
		router.POST("/api/speech/stop", speechController.Stop)
		router.POST("/api/speech/pause", speechController.Pause)
		router.POST("/api/speech/resume", speechController.Resume)
		router.GET("/api/speech/status", speechController.Status)
	}

	return router
}
