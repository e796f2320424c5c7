package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/hierarchy"
	"pulse/pkg/errors"
	"pulse/pkg/eventbus"
	"pulse/pkg/types"
)

type fakeUserRepo struct {
	users     []entities.User
	reparents map[string]string
}

func (f *fakeUserRepo) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return f.users, uint64(len(f.users)), nil
}

func (f *fakeUserRepo) GetActiveUsers(ctx context.Context) ([]entities.User, error) {
	active := make([]entities.User, 0, len(f.users))
	for _, u := range f.users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}

func (f *fakeUserRepo) FindUser(ctx context.Context, id string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, errors.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, errors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	f.users = append(f.users, *entity)
	return entity, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].ID == entity.ID {
			f.users[i] = *entity
			return entity, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (f *fakeUserRepo) UpdateReportsTo(ctx context.Context, id string, reportsTo null.String) error {
	if f.reparents == nil {
		f.reparents = make(map[string]string)
	}
	f.reparents[id] = reportsTo.String
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].ReportsTo = reportsTo
			return nil
		}
	}
	return errors.ErrNotFound
}

func (f *fakeUserRepo) PromoteReports(ctx context.Context, managerID string, newManager null.String) (int64, error) {
	var n int64
	for i := range f.users {
		if f.users[i].ReportsTo.String == managerID {
			f.users[i].ReportsTo = newManager
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) UpdateDepartment(ctx context.Context, id string, departmentID int64) error {
	return nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].IsActive = false
			return nil
		}
	}
	return errors.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, newPasswordHash string) error {
	return nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

type fakeCache struct {
	values map[string]string
	dels   int
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errors.ErrNotFound
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value.(string)
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	f.dels++
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func demoOrg() []entities.User {
	user := func(id, first, last, role, reportsTo string) entities.User {
		return entities.User{
			ID:        id,
			FirstName: first,
			LastName:  null.StringFrom(last),
			Email:     first + "@example.com",
			Role:      hierarchy.Role(role),
			ReportsTo: null.NewString(reportsTo, reportsTo != ""),
			IsActive:  true,
		}
	}
	return []entities.User{
		user("u-admin", "Alice", "Admin", "admin", ""),
		user("u-ops", "Omar", "Said", "contact_center_ops_manager", "u-admin"),
		user("u-lead", "Lena", "Petrova", "team_leader", "u-ops"),
		user("u-agent", "Aron", "Berg", "agent", "u-lead"),
	}
}

func newHierarchyService(repo *fakeUserRepo, cache *fakeCache) *HierarchyService {
	return NewHierarchyService(repo, cache, eventbus.New(zap.NewNop()), time.Minute, zap.NewNop())
}

func TestGetHierarchyCollapsedShowsRootsOnly(t *testing.T) {
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, &fakeCache{})

	rows, err := svc.GetHierarchy(context.Background(), HierarchyQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u-admin", rows[0].Member.ID)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[0].IsExpanded)
}

func TestGetHierarchyExpandedWalksDown(t *testing.T) {
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, &fakeCache{})

	rows, err := svc.GetHierarchy(context.Background(), HierarchyQuery{
		ExpandedIDs: []string{"u-admin", "u-ops", "u-lead"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].Level)
	assert.Equal(t, 3, rows[3].Level)
	assert.Equal(t, "u-agent", rows[3].Member.ID)
}

func TestGetHierarchyFilteredManagerPromotesReports(t *testing.T) {
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, &fakeCache{})

	// only agents survive the filter, so the agent becomes a root
	rows, err := svc.GetHierarchy(context.Background(), HierarchyQuery{Role: "agent"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u-agent", rows[0].Member.ID)
	assert.Equal(t, 0, rows[0].Level)
}

func TestGetHierarchySkipsInactive(t *testing.T) {
	users := demoOrg()
	users[3].IsActive = false
	svc := newHierarchyService(&fakeUserRepo{users: users}, &fakeCache{})

	rows, err := svc.GetHierarchy(context.Background(), HierarchyQuery{
		ExpandedIDs: []string{"u-admin", "u-ops", "u-lead"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.NotEqual(t, "u-agent", r.Member.ID)
	}
}

func TestGetOrgChartCachesResult(t *testing.T) {
	cache := &fakeCache{}
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, cache)

	nodes, err := svc.GetOrgChart(context.Background())
	require.NoError(t, err)
	assert.Len(t, nodes, 4)
	assert.Contains(t, cache.values, orgChartCacheKey)

	// second call is served from the cache and must match
	again, err := svc.GetOrgChart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nodes, again)
}

func TestGetOrgChartDropsCorruptCacheEntry(t *testing.T) {
	cache := &fakeCache{values: map[string]string{orgChartCacheKey: "{not json"}}
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, cache)

	nodes, err := svc.GetOrgChart(context.Background())
	require.NoError(t, err)
	assert.Len(t, nodes, 4)
}

func TestReparentPersistsAndInvalidates(t *testing.T) {
	repo := &fakeUserRepo{users: demoOrg()}
	cache := &fakeCache{values: map[string]string{orgChartCacheKey: "[]"}}
	svc := newHierarchyService(repo, cache)

	err := svc.Reparent(context.Background(), dto.ReparentDTO{UserID: "u-agent", ReportsTo: "u-ops"})
	require.NoError(t, err)
	assert.Equal(t, "u-ops", repo.reparents["u-agent"])
	assert.NotContains(t, cache.values, orgChartCacheKey)
}

func TestReparentRejectsCycle(t *testing.T) {
	repo := &fakeUserRepo{users: demoOrg()}
	svc := newHierarchyService(repo, &fakeCache{})

	err := svc.Reparent(context.Background(), dto.ReparentDTO{UserID: "u-ops", ReportsTo: "u-agent"})
	require.Error(t, err)
	var httpErr *errors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
	assert.Empty(t, repo.reparents)
}

func TestReparentUnknownUserIsNotFound(t *testing.T) {
	svc := newHierarchyService(&fakeUserRepo{users: demoOrg()}, &fakeCache{})

	err := svc.Reparent(context.Background(), dto.ReparentDTO{UserID: "u-ghost", ReportsTo: "u-admin"})
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
