// FILE: internal/service/fixture_test.go
// Shared test wiring: memory-backed repositories plus a canned principal
// directory, assembled the same way the bootstrap container does it.
package service

import (
	"context"
	"testing"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/hook"
	"featuregate-be/internal/pkg/logger"
	"featuregate-be/internal/repository/memory"

	"github.com/google/uuid"
)

type stubDirectory struct {
	admins  map[uuid.UUID]bool
	known   map[uuid.UUID]bool
	members map[uuid.UUID]map[uuid.UUID]bool
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{
		admins:  make(map[uuid.UUID]bool),
		known:   make(map[uuid.UUID]bool),
		members: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (d *stubDirectory) Exists(ctx context.Context, principal entity.Principal) (bool, error) {
	return d.known[principal.Id], nil
}

func (d *stubDirectory) IsAdmin(ctx context.Context, userId uuid.UUID) (bool, error) {
	return d.admins[userId], nil
}

func (d *stubDirectory) IsMember(ctx context.Context, userId uuid.UUID, organizationId uuid.UUID) (bool, error) {
	return d.members[userId][organizationId], nil
}

func (d *stubDirectory) addMember(userId, organizationId uuid.UUID) {
	if d.members[userId] == nil {
		d.members[userId] = make(map[uuid.UUID]bool)
	}
	d.members[userId][organizationId] = true
}

type fixture struct {
	store     *memory.Store
	directory *stubDirectory
	features  FeatureService
	flags     FlagService

	adminId  uuid.UUID
	userId   uuid.UUID
	orgId    uuid.UUID
	admin    *entity.Session
	member   *entity.Session
	outsider *entity.Session
}

func newFixture(t *testing.T, scope entity.ScopeMode, hooks *hook.Registry) *fixture {
	t.Helper()

	store := memory.NewStore()
	directory := newStubDirectory()

	f := &fixture{
		store:     store,
		directory: directory,
		adminId:   uuid.New(),
		userId:    uuid.New(),
		orgId:     uuid.New(),
	}

	directory.admins[f.adminId] = true
	directory.known[f.adminId] = true
	directory.known[f.userId] = true
	directory.known[f.orgId] = true
	directory.addMember(f.userId, f.orgId)
	directory.addMember(f.adminId, f.orgId)

	orgId := f.orgId
	f.admin = &entity.Session{UserId: f.adminId, ActiveOrganizationId: &orgId}
	f.member = &entity.Session{UserId: f.userId, ActiveOrganizationId: &orgId}
	f.outsider = &entity.Session{UserId: uuid.New()}
	directory.known[f.outsider.UserId] = true

	resolver := NewFeatureResolver()
	f.features = NewFeatureService(store.Factory(), directory, hooks, logger.NopLogger{})
	f.flags = NewFlagService(store.Factory(), directory, resolver, hooks, scope, logger.NopLogger{})
	return f
}

func (f *fixture) mustCreateFeature(t *testing.T, name string, active bool) uuid.UUID {
	t.Helper()
	resp, err := f.features.Create(context.Background(), f.admin, createFeatureRequest(name, active))
	if err != nil {
		t.Fatalf("create feature %q: %v", name, err)
	}
	return resp.Id
}
