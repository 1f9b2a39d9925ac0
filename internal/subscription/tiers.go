package subscription

import (
	"time"

	"github.com/shelfward/shelfward/internal/entities"
)

// Plan is one row of the fixed tier catalog: a named subscription level
// with its price and entitlement bundle. The catalog is static
// configuration, ordered from cheapest to richest.
type Plan struct {
	Tier          entities.Tier `json:"tier"`
	Price         float64       `json:"price"`
	Features      []string      `json:"features"`
	BooksPerMonth int           `json:"books_per_month"`
	HasAI         bool          `json:"has_ai"`
	HasNaturalTTS bool          `json:"has_natural_tts"`
}

// Plans lists the four tiers in declaration order. Price and entitlement
// richness are non-decreasing down the list.
var Plans = []Plan{
	{
		Tier:          entities.TierFree,
		Price:         0,
		Features:      []string{"Local library", "Notes", "Robotic voice"},
		BooksPerMonth: 0,
	},
	{
		Tier:          entities.TierBasic,
		Price:         4.99,
		Features:      []string{"Local library", "Notes", "Robotic voice", "5 archive books per month"},
		BooksPerMonth: 5,
	},
	{
		Tier:          entities.TierPremium,
		Price:         9.99,
		Features:      []string{"Local library", "Notes", "Robotic voice", "10 archive books per month", "AI reading assistant"},
		BooksPerMonth: 10,
		HasAI:         true,
	},
	{
		Tier:          entities.TierPro,
		Price:         14.99,
		Features:      []string{"Local library", "Notes", "20 archive books per month", "AI reading assistant", "Natural voice"},
		BooksPerMonth: 20,
		HasAI:         true,
		HasNaturalTTS: true,
	},
}

// PlanForTier looks up a plan in the catalog.
func PlanForTier(tier entities.Tier) (Plan, bool) {
	for _, plan := range Plans {
		if plan.Tier == tier {
			return plan, true
		}
	}
	return Plan{}, false
}

// subscriptionForPlan builds the full singleton record for a plan.
func subscriptionForPlan(plan Plan, expiresAt *time.Time) entities.UserSubscription {
	return entities.UserSubscription{
		ID:            entities.SingletonID,
		Tier:          plan.Tier,
		Price:         plan.Price,
		Features:      entities.StringList(plan.Features),
		BooksPerMonth: plan.BooksPerMonth,
		HasAI:         entities.BoolFlag(plan.HasAI),
		HasNaturalTTS: entities.BoolFlag(plan.HasNaturalTTS),
		ExpiresAt:     expiresAt,
	}
}

// FreeSubscription returns the free-tier singleton record. Used both for
// first-run seeding and for cancellation.
func FreeSubscription() entities.UserSubscription {
	plan, _ := PlanForTier(entities.TierFree)
	return subscriptionForPlan(plan, nil)
}
