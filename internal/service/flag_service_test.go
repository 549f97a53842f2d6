// FILE: internal/service/flag_service_test.go
package service

import (
	"context"
	"testing"

	"featuregate-be/internal/apperror"
	"featuregate-be/internal/dto"
	"featuregate-be/internal/entity"
	"featuregate-be/internal/hook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFlag(t *testing.T) {
	f := newFixture(t, entity.ScopeBoth, nil)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	orgId := f.orgId

	resp, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{
		OrganizationId: &orgId,
		FeatureId:      featureId,
		Enabled:        true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.Id)
	require.NotNil(t, resp.OrganizationId)
	assert.Equal(t, orgId, *resp.OrganizationId)
	assert.Nil(t, resp.UserId)
	assert.True(t, resp.Enabled)
	require.NotNil(t, resp.Feature, "the response carries the joined feature")
	assert.Equal(t, "csv_export", resp.Feature.Name)
}

func TestSetFlagValidation(t *testing.T) {
	f := newFixture(t, entity.ScopeBoth, nil)
	ctx := context.Background()

	activeId := f.mustCreateFeature(t, "active_feature", true)
	inactiveId := f.mustCreateFeature(t, "inactive_feature", false)
	orgId := f.orgId
	userId := f.userId

	t.Run("unknown feature", func(t *testing.T) {
		_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: uuid.New(), Enabled: true})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.StatusOf(err))
	})

	t.Run("inactive feature", func(t *testing.T) {
		// Even a disabled flag cannot target an inactive feature.
		_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: inactiveId, Enabled: false})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("unknown principal", func(t *testing.T) {
		ghost := uuid.New()
		_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &ghost, FeatureId: activeId, Enabled: true})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.StatusOf(err))
	})

	t.Run("both principal ids", func(t *testing.T) {
		_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, UserId: &userId, FeatureId: activeId, Enabled: true})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("no principal id", func(t *testing.T) {
		_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{FeatureId: activeId, Enabled: true})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})
}

func TestSetFlagScopeMode(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	userId := f.userId

	// User-scoped flags are rejected in an organization-only deployment.
	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{UserId: &userId, FeatureId: featureId, Enabled: true})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusOf(err))
}

func TestSetFlagNoUpsert(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	orgId := f.orgId

	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: true})
	require.NoError(t, err)

	// A second set for the same (principal, feature) conflicts; it does not
	// overwrite the existing value.
	_, err = f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: false})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.StatusOf(err))

	list, err := f.flags.List(ctx, f.admin, dto.ListFlagsRequest{OrganizationId: &orgId})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Enabled, "the original flag value survives the conflicting set")
}

func TestRemoveFlag(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	orgId := f.orgId

	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: true})
	require.NoError(t, err)

	resp, err := f.flags.Remove(ctx, f.admin, dto.RemoveFlagRequest{OrganizationId: &orgId, FeatureId: featureId})
	require.NoError(t, err)
	assert.True(t, resp.Removed)

	// Removal is not idempotent: the flag is gone, so a second remove is a
	// plain not-found.
	_, err = f.flags.Remove(ctx, f.admin, dto.RemoveFlagRequest{OrganizationId: &orgId, FeatureId: featureId})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.StatusOf(err))

	// And the flag can be set again afterwards.
	_, err = f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: false})
	assert.NoError(t, err)
}

func TestListFlags(t *testing.T) {
	f := newFixture(t, entity.ScopeBoth, nil)
	ctx := context.Background()

	firstId := f.mustCreateFeature(t, "first", true)
	secondId := f.mustCreateFeature(t, "second", false)
	orgId := f.orgId
	userId := f.userId

	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: firstId, Enabled: true})
	require.NoError(t, err)
	_, err = f.flags.Set(ctx, f.admin, dto.SetFlagRequest{UserId: &userId, FeatureId: firstId, Enabled: false})
	require.NoError(t, err)

	// Deactivate "second" after flagging it so the admin list shows a flag
	// whose feature is inactive.
	on := true
	_, err = f.features.Toggle(ctx, f.admin, dto.ToggleFeatureRequest{Id: secondId, Active: &on})
	require.NoError(t, err)
	_, err = f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: secondId, Enabled: true})
	require.NoError(t, err)
	off := false
	_, err = f.features.Toggle(ctx, f.admin, dto.ToggleFeatureRequest{Id: secondId, Active: &off})
	require.NoError(t, err)

	list, err := f.flags.List(ctx, f.admin, dto.ListFlagsRequest{OrganizationId: &orgId})
	require.NoError(t, err)
	require.Len(t, list, 2, "the admin list does not filter by liveness")

	names := map[string]bool{}
	for _, fl := range list {
		require.NotNil(t, fl.Feature)
		names[fl.Feature.Name] = fl.Feature.Active
	}
	assert.Equal(t, map[string]bool{"first": true, "second": false}, names)

	// The user principal's list is separate.
	userList, err := f.flags.List(ctx, f.admin, dto.ListFlagsRequest{UserId: &userId})
	require.NoError(t, err)
	require.Len(t, userList, 1)
	assert.False(t, userList[0].Enabled)
}

func TestAvailableFeaturesLiveSet(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()

	betaId := f.mustCreateFeature(t, "beta_dashboard", true)
	disabledId := f.mustCreateFeature(t, "disabled_for_org", true)
	orgId := f.orgId

	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: betaId, Enabled: true})
	require.NoError(t, err)
	_, err = f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: disabledId, Enabled: false})
	require.NoError(t, err)

	available, err := f.flags.Available(ctx, f.member)
	require.NoError(t, err)
	require.Len(t, available, 1, "only enabled flags on active features are live")
	assert.Equal(t, "beta_dashboard", available[0].Feature.Name)

	t.Run("kill switch hides the feature everywhere", func(t *testing.T) {
		off := false
		_, err := f.features.Toggle(ctx, f.admin, dto.ToggleFeatureRequest{Id: betaId, Active: &off})
		require.NoError(t, err)

		available, err := f.flags.Available(ctx, f.member)
		require.NoError(t, err)
		assert.Empty(t, available)

		on := true
		_, err = f.features.Toggle(ctx, f.admin, dto.ToggleFeatureRequest{Id: betaId, Active: &on})
		require.NoError(t, err)

		available, err = f.flags.Available(ctx, f.member)
		require.NoError(t, err)
		assert.Len(t, available, 1, "re-activating restores visibility without touching flags")
	})
}

func TestAvailableFeaturesMembership(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	orgId := f.orgId
	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: true})
	require.NoError(t, err)

	t.Run("no session", func(t *testing.T) {
		_, err := f.flags.Available(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, 401, apperror.StatusOf(err))
	})

	t.Run("non-member sees an empty list, not an error", func(t *testing.T) {
		stranger := &entity.Session{UserId: uuid.New(), ActiveOrganizationId: &orgId}
		available, err := f.flags.Available(ctx, stranger)
		require.NoError(t, err)
		assert.Empty(t, available)
	})

	t.Run("no active organization", func(t *testing.T) {
		available, err := f.flags.Available(ctx, f.outsider)
		require.NoError(t, err)
		assert.Empty(t, available)
	})
}

func TestBeforeHookShortCircuitSkipsWrites(t *testing.T) {
	hooks := &hook.Registry{}
	canned := &dto.FlagResponse{Id: uuid.New(), Enabled: true}
	hooks.SetFlag.Before = func(ctx context.Context, hc *hook.Context, in dto.SetFlagRequest) hook.BeforeResult[dto.SetFlagRequest, *dto.FlagResponse] {
		return hook.BeforeResult[dto.SetFlagRequest, *dto.FlagResponse]{Skip: true, Result: &canned}
	}

	f := newFixture(t, entity.ScopeOrganization, hooks)
	ctx := context.Background()
	orgId := f.orgId

	before := f.store.WriteCalls
	resp, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: uuid.New(), Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, canned.Id, resp.Id)
	assert.Equal(t, before, f.store.WriteCalls, "a skipped operation must not touch the store")
}

func TestAfterHookErrorOverridesSuccess(t *testing.T) {
	hooks := &hook.Registry{}
	hooks.SetFlag.After = func(ctx context.Context, hc *hook.Context, outcome hook.Outcome[*dto.FlagResponse], in dto.SetFlagRequest) hook.AfterResult[*dto.FlagResponse] {
		return hook.AfterResult[*dto.FlagResponse]{Err: &hook.Error{Message: "rolled back by policy", Status: 422}}
	}

	f := newFixture(t, entity.ScopeOrganization, hooks)
	ctx := context.Background()

	featureId := f.mustCreateFeature(t, "csv_export", true)
	orgId := f.orgId

	_, err := f.flags.Set(ctx, f.admin, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: featureId, Enabled: true})
	require.Error(t, err)
	assert.EqualError(t, err, "rolled back by policy")
	assert.Equal(t, 422, apperror.StatusOf(err))
}

func TestFlagOperationsRequireAdmin(t *testing.T) {
	f := newFixture(t, entity.ScopeOrganization, nil)
	ctx := context.Background()
	orgId := f.orgId

	_, err := f.flags.Set(ctx, f.member, dto.SetFlagRequest{OrganizationId: &orgId, FeatureId: uuid.New(), Enabled: true})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.StatusOf(err))

	_, err = f.flags.Remove(ctx, f.member, dto.RemoveFlagRequest{OrganizationId: &orgId, FeatureId: uuid.New()})
	assert.Equal(t, 403, apperror.StatusOf(err))

	_, err = f.flags.List(ctx, f.member, dto.ListFlagsRequest{OrganizationId: &orgId})
	assert.Equal(t, 403, apperror.StatusOf(err))
}
