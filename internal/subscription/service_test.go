package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfward/shelfward/internal/entities"
)

// memoryStore holds the singleton record in memory for service tests.
type memoryStore struct {
	sub entities.UserSubscription
}

func (m *memoryStore) GetSubscription() (*entities.UserSubscription, error) {
	sub := m.sub
	return &sub, nil
}

func (m *memoryStore) ReplaceSubscription(sub entities.UserSubscription) error {
	m.sub = sub
	return nil
}

func newTestService(sub entities.UserSubscription) (*Service, *memoryStore) {
	store := &memoryStore{sub: sub}
	return NewService(store), store
}

func TestPlans_PriceNonDecreasing(t *testing.T) {
	for i := 1; i < len(Plans); i++ {
		assert.GreaterOrEqual(t, Plans[i].Price, Plans[i-1].Price)
		assert.GreaterOrEqual(t, Plans[i].BooksPerMonth, Plans[i-1].BooksPerMonth)
	}
}

func TestPlanForTier_Unknown(t *testing.T) {
	_, ok := PlanForTier(entities.Tier("platinum"))
	assert.False(t, ok)
}

func TestService_RequireAI_WithoutEntitlement(t *testing.T) {
	svc, _ := newTestService(FreeSubscription())

	err := svc.RequireAI()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubscriptionRequired)
}

func TestService_RequireAI_WithEntitlement(t *testing.T) {
	sub := FreeSubscription()
	sub.HasAI = true
	svc, _ := newTestService(sub)

	assert.NoError(t, svc.RequireAI())
}

func TestService_CanUseNaturalVoice(t *testing.T) {
	svc, store := newTestService(FreeSubscription())

	ok, err := svc.CanUseNaturalVoice()
	require.NoError(t, err)
	assert.False(t, ok)

	store.sub.HasNaturalTTS = true
	ok, err = svc.CanUseNaturalVoice()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_CanClaimArchiveBook(t *testing.T) {
	svc, store := newTestService(FreeSubscription())

	ok, err := svc.CanClaimArchiveBook()
	require.NoError(t, err)
	assert.False(t, ok)

	store.sub.BooksPerMonth = 5
	ok, err = svc.CanClaimArchiveBook()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_Upgrade_ReplacesWholeRecord(t *testing.T) {
	svc, store := newTestService(FreeSubscription())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sub, err := svc.Upgrade(entities.TierPro)
	require.NoError(t, err)

	assert.Equal(t, entities.TierPro, sub.Tier)
	assert.True(t, sub.HasAI.Bool())
	assert.True(t, sub.HasNaturalTTS.Bool())
	require.NotNil(t, sub.ExpiresAt)
	assert.Equal(t, now.Add(30*24*time.Hour), *sub.ExpiresAt)
	assert.Equal(t, entities.TierPro, store.sub.Tier)
}

func TestService_Upgrade_UnknownTier(t *testing.T) {
	svc, _ := newTestService(FreeSubscription())

	_, err := svc.Upgrade(entities.Tier("platinum"))
	assert.Error(t, err)
}

func TestService_Cancel_RestoresFreeDefaults(t *testing.T) {
	svc, store := newTestService(FreeSubscription())

	_, err := svc.Upgrade(entities.TierPremium)
	require.NoError(t, err)

	sub, err := svc.Cancel()
	require.NoError(t, err)

	assert.Equal(t, entities.TierFree, sub.Tier)
	assert.False(t, sub.HasAI.Bool())
	assert.Nil(t, sub.ExpiresAt)
	assert.Nil(t, store.sub.ExpiresAt)
}

func TestService_ExpireIfDue(t *testing.T) {
	t.Run("downgrades past expiry", func(t *testing.T) {
		svc, store := newTestService(FreeSubscription())
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		_, err := svc.Upgrade(entities.TierPremium)
		require.NoError(t, err)

		svc.now = func() time.Time { return now.Add(31 * 24 * time.Hour) }
		expired, err := svc.ExpireIfDue()
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Equal(t, entities.TierFree, store.sub.Tier)
	})

	t.Run("leaves active subscription alone", func(t *testing.T) {
		svc, store := newTestService(FreeSubscription())

		_, err := svc.Upgrade(entities.TierPremium)
		require.NoError(t, err)

		expired, err := svc.ExpireIfDue()
		require.NoError(t, err)
		assert.False(t, expired)
		assert.Equal(t, entities.TierPremium, store.sub.Tier)
	})

	t.Run("free tier never expires", func(t *testing.T) {
		svc, _ := newTestService(FreeSubscription())

		expired, err := svc.ExpireIfDue()
		require.NoError(t, err)
		assert.False(t, expired)
	})
}
