// FILE: internal/service/resolver_test.go
package service

import (
	"context"
	"testing"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFlag(t *testing.T, store *memory.Store, orgId uuid.UUID, featureId uuid.UUID, enabled bool) {
	t.Helper()
	uow := store.Factory().NewUnitOfWork(context.Background())
	id := orgId
	err := uow.FlagRepository().Create(context.Background(), &entity.Flag{
		OrganizationId: &id,
		FeatureId:      featureId,
		Enabled:        enabled,
	})
	require.NoError(t, err)
}

func seedFeature(t *testing.T, store *memory.Store, name string, active bool) uuid.UUID {
	t.Helper()
	uow := store.Factory().NewUnitOfWork(context.Background())
	f := &entity.Feature{Name: name, DisplayName: name, Active: active}
	require.NoError(t, uow.FeatureRepository().Create(context.Background(), f))
	return f.Id
}

func TestLiveFlags(t *testing.T) {
	store := memory.NewStore()
	resolver := NewFeatureResolver()
	ctx := context.Background()
	orgId := uuid.New()
	principal := entity.OrganizationPrincipal(orgId)

	liveId := seedFeature(t, store, "live", true)
	inactiveId := seedFeature(t, store, "inactive", false)

	seedFlag(t, store, orgId, liveId, true)
	// Feature off: dropped from the live set.
	seedFlag(t, store, orgId, inactiveId, true)
	// Feature gone entirely: also dropped.
	danglingFeature := uuid.New()
	seedFlag(t, store, orgId, danglingFeature, true)

	uow := store.Factory().NewUnitOfWork(ctx)
	live, err := resolver.LiveFlags(ctx, uow, principal)
	require.NoError(t, err)

	require.Len(t, live, 1)
	assert.Equal(t, "live", live[0].Feature.Name)
	assert.Equal(t, liveId, live[0].Flag.FeatureId)
}

func TestLiveFlagsIgnoresDisabledFlags(t *testing.T) {
	store := memory.NewStore()
	resolver := NewFeatureResolver()
	ctx := context.Background()
	orgId := uuid.New()

	featureId := seedFeature(t, store, "live", true)
	seedFlag(t, store, orgId, featureId, false)

	uow := store.Factory().NewUnitOfWork(ctx)
	live, err := resolver.LiveFlags(ctx, uow, entity.OrganizationPrincipal(orgId))
	require.NoError(t, err)
	assert.Empty(t, live, "a disabled flag behaves like an absent one")
}

func TestLiveFlagsScopedToPrincipal(t *testing.T) {
	store := memory.NewStore()
	resolver := NewFeatureResolver()
	ctx := context.Background()

	featureId := seedFeature(t, store, "live", true)
	orgA := uuid.New()
	orgB := uuid.New()
	seedFlag(t, store, orgA, featureId, true)

	uow := store.Factory().NewUnitOfWork(ctx)
	live, err := resolver.LiveFlags(ctx, uow, entity.OrganizationPrincipal(orgB))
	require.NoError(t, err)
	assert.Empty(t, live, "another principal's flags never leak")
}

func TestFlagsWithDetailsKeepsNonLiveRows(t *testing.T) {
	store := memory.NewStore()
	resolver := NewFeatureResolver()
	ctx := context.Background()
	orgId := uuid.New()

	inactiveId := seedFeature(t, store, "inactive", false)
	seedFlag(t, store, orgId, inactiveId, true)
	dangling := uuid.New()
	seedFlag(t, store, orgId, dangling, false)

	uow := store.Factory().NewUnitOfWork(ctx)
	details, err := resolver.FlagsWithDetails(ctx, uow, entity.OrganizationPrincipal(orgId))
	require.NoError(t, err)
	require.Len(t, details, 2, "the admin view keeps inactive and dangling rows")

	for _, d := range details {
		if d.Flag.FeatureId == dangling {
			assert.Nil(t, d.Feature)
		} else {
			require.NotNil(t, d.Feature)
			assert.False(t, d.Feature.Active)
		}
	}
}
