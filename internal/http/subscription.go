package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/subscription"
)

// SubscriptionService exposes the entitlement operations the API needs.
type SubscriptionService interface {
	Current() (*entities.UserSubscription, error)
	Upgrade(tier entities.Tier) (*entities.UserSubscription, error)
	Cancel() (*entities.UserSubscription, error)
}

type SubscriptionController struct {
	service SubscriptionService
}

func NewSubscriptionController(service SubscriptionService) *SubscriptionController {
	return &SubscriptionController{service: service}
}

// GetSubscription returns the current subscription state.
// GET /api/subscription
func (sc *SubscriptionController) GetSubscription(c *gin.Context) {
	sub, err := sc.service.Current()
	if err != nil {
		respondInternalError(c, err, "get subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListPlans returns the purchasable plan catalog.
// GET /api/subscription/plans
func (sc *SubscriptionController) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": subscription.Plans})
}

type upgradeRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// Upgrade switches the user to a paid tier for the standard validity window.
// POST /api/subscription/upgrade
func (sc *SubscriptionController) Upgrade(c *gin.Context) {
	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "tier is required")
		return
	}

	tier := entities.Tier(req.Tier)
	if _, ok := subscription.PlanForTier(tier); !ok {
		respondBadRequest(c, "unknown tier: "+req.Tier)
		return
	}

	sub, err := sc.service.Upgrade(tier)
	if err != nil {
		respondInternalError(c, err, "upgrade subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Cancel drops the user back to the free tier immediately.
// POST /api/subscription/cancel
func (sc *SubscriptionController) Cancel(c *gin.Context) {
	sub, err := sc.service.Cancel()
	if err != nil {
		respondInternalError(c, err, "cancel subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}
