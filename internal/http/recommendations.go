package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/recommend"
	"github.com/shelfward/shelfward/internal/subscription"
)

// Recommender builds book suggestions from the user's library.
type Recommender interface {
	ForLibrary() ([]recommend.Recommendation, error)
	TrackBookInteraction(bookID, action string)
	Claim(title, author string) (*entities.Book, error)
}

type RecommendationsController struct {
	recommender Recommender
}

func NewRecommendationsController(recommender Recommender) *RecommendationsController {
	return &RecommendationsController{recommender: recommender}
}

// ListRecommendations returns suggestions ranked by the user's genre taste.
// GET /api/recommendations
func (rc *RecommendationsController) ListRecommendations(c *gin.Context) {
	list, err := rc.recommender.ForLibrary()
	if err != nil {
		respondInternalError(c, err, "list recommendations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": list, "count": len(list)})
}

type trackRequest struct {
	BookID string `json:"book_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// TrackInteraction records that the user acted on a recommendation.
// POST /api/recommendations/track
func (rc *RecommendationsController) TrackInteraction(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book_id and action are required")
		return
	}
	rc.recommender.TrackBookInteraction(req.BookID, req.Action)
	respondSuccess(c, "interaction recorded")
}

type claimRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

// ClaimBook adds an archive-available recommendation to the library.
// Requires a paid subscription with a book allowance.
// POST /api/recommendations/claim
func (rc *RecommendationsController) ClaimBook(c *gin.Context) {
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and author are required")
		return
	}

	book, err := rc.recommender.Claim(req.Title, req.Author)
	if errors.Is(err, subscription.ErrSubscriptionRequired) {
		respondServiceError(c, err, "claim book")
		return
	}
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, book)
}
