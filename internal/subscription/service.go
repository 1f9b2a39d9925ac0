// Package subscription derives feature access from the single current
// subscription record and manages tier changes.
//
// Every gated feature (AI assistant, natural voice, archive downloads)
// consults this package before touching its collaborator.
package subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/shelfward/shelfward/internal/entities"
)

// ErrSubscriptionRequired is returned when a feature is requested without
// the entitlement that gates it. It is expected and user-facing: the caller
// recovers by offering an upgrade, never by silently degrading the feature.
var ErrSubscriptionRequired = errors.New("subscription required")

// upgradeValidity is how long a paid tier lasts after an upgrade.
const upgradeValidity = 30 * 24 * time.Hour

// Store is the slice of the subscription repository this service needs.
type Store interface {
	GetSubscription() (*entities.UserSubscription, error)
	ReplaceSubscription(sub entities.UserSubscription) error
}

// Service answers entitlement questions and performs tier changes.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a subscription service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Current returns the active subscription record.
func (s *Service) Current() (*entities.UserSubscription, error) {
	return s.store.GetSubscription()
}

// RequireAI returns ErrSubscriptionRequired unless the active tier grants
// AI access. Must be checked before any AI network call is attempted.
func (s *Service) RequireAI() error {
	sub, err := s.store.GetSubscription()
	if err != nil {
		return err
	}
	if !sub.HasAI.Bool() {
		return fmt.Errorf("AI assistant: %w", ErrSubscriptionRequired)
	}
	return nil
}

// CanUseNaturalVoice reports whether the active tier grants natural TTS.
// Robotic/offline voice is always permitted and never goes through here.
func (s *Service) CanUseNaturalVoice() (bool, error) {
	sub, err := s.store.GetSubscription()
	if err != nil {
		return false, err
	}
	return sub.HasNaturalTTS.Bool(), nil
}

// CanClaimArchiveBook reports whether an archive-available catalog entry
// may be added to the library at no cost. Without the allowance the entry
// is treated as a paid affiliate link.
func (s *Service) CanClaimArchiveBook() (bool, error) {
	sub, err := s.store.GetSubscription()
	if err != nil {
		return false, err
	}
	return sub.BooksPerMonth > 0, nil
}

// Upgrade replaces the subscription record with the target tier's fixed
// plan and sets the expiry 30 days out. The replacement is whole-record:
// nothing from the previous record survives.
func (s *Service) Upgrade(tier entities.Tier) (*entities.UserSubscription, error) {
	plan, ok := PlanForTier(tier)
	if !ok {
		return nil, fmt.Errorf("unknown subscription tier: %s", tier)
	}

	expiresAt := s.now().Add(upgradeValidity)
	sub := subscriptionForPlan(plan, &expiresAt)
	if err := s.store.ReplaceSubscription(sub); err != nil {
		return nil, fmt.Errorf("failed to upgrade subscription: %w", err)
	}
	return &sub, nil
}

// Cancel replaces the subscription record with the free-tier defaults and
// clears the expiry.
func (s *Service) Cancel() (*entities.UserSubscription, error) {
	sub := FreeSubscription()
	if err := s.store.ReplaceSubscription(sub); err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return &sub, nil
}

// ExpireIfDue downgrades to the free tier when the paid period has lapsed.
// Returns true when a downgrade happened. Called periodically by the
// scheduler; a record without an expiry never expires.
func (s *Service) ExpireIfDue() (bool, error) {
	sub, err := s.store.GetSubscription()
	if err != nil {
		return false, err
	}
	if sub.ExpiresAt == nil || sub.ExpiresAt.After(s.now()) {
		return false, nil
	}
	if _, err := s.Cancel(); err != nil {
		return false, err
	}
	return true, nil
}
