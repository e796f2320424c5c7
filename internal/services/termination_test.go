package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/repositories"
	"pulse/pkg/errors"
	"pulse/pkg/eventbus"
	"pulse/pkg/types"
)

type fakeTerminationRepo struct {
	created []entities.Termination
}

var _ repositories.TerminationRepositoryInterface = (*fakeTerminationRepo)(nil)

func (f *fakeTerminationRepo) GetTerminations(ctx context.Context, filter types.Filter) ([]entities.Termination, uint64, error) {
	return f.created, uint64(len(f.created)), nil
}

func (f *fakeTerminationRepo) FindTermination(ctx context.Context, id int64) (*entities.Termination, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, errors.ErrNotFound
}

func (f *fakeTerminationRepo) CreateTermination(ctx context.Context, entity entities.Termination) (*entities.Termination, error) {
	entity.ID = int64(len(f.created) + 1)
	f.created = append(f.created, entity)
	return &entity, nil
}

func newTerminationService(userRepo *fakeUserRepo, terminationRepo *fakeTerminationRepo, cache *fakeCache) *TerminationService {
	return NewTerminationService(terminationRepo, userRepo, cache, eventbus.New(zap.NewNop()), zap.NewNop())
}

func TestCreateTerminationPromotesReports(t *testing.T) {
	userRepo := &fakeUserRepo{users: demoOrg()}
	terminationRepo := &fakeTerminationRepo{}
	cache := &fakeCache{values: map[string]string{orgChartCacheKey: "[]"}}
	svc := newTerminationService(userRepo, terminationRepo, cache)

	// terminate the team leader; the agent should move up to ops
	res, err := svc.CreateTermination(context.Background(), dto.CreateTerminationDTO{
		UserID:        "u-lead",
		Reason:        "resignation",
		EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-lead", res.UserID)

	lead, err := userRepo.FindUser(context.Background(), "u-lead")
	require.NoError(t, err)
	assert.False(t, lead.IsActive)

	agent, err := userRepo.FindUser(context.Background(), "u-agent")
	require.NoError(t, err)
	assert.Equal(t, "u-ops", agent.ReportsTo.String)

	assert.NotContains(t, cache.values, orgChartCacheKey)
}

func TestCreateTerminationOfRootOrphansReports(t *testing.T) {
	userRepo := &fakeUserRepo{users: demoOrg()}
	svc := newTerminationService(userRepo, &fakeTerminationRepo{}, &fakeCache{})

	_, err := svc.CreateTermination(context.Background(), dto.CreateTerminationDTO{
		UserID:        "u-admin",
		Reason:        "retirement",
		EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)

	// ops had no grandparent to move to, so they become a root
	ops, err := userRepo.FindUser(context.Background(), "u-ops")
	require.NoError(t, err)
	assert.False(t, ops.ReportsTo.Valid)
}

func TestCreateTerminationTwiceRejected(t *testing.T) {
	userRepo := &fakeUserRepo{users: demoOrg()}
	svc := newTerminationService(userRepo, &fakeTerminationRepo{}, &fakeCache{})

	payload := dto.CreateTerminationDTO{UserID: "u-agent", Reason: "resignation", EffectiveDate: "2026-09-01"}
	_, err := svc.CreateTermination(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.CreateTermination(context.Background(), payload)
	var inputErr *errors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestCreateTerminationBadDate(t *testing.T) {
	svc := newTerminationService(&fakeUserRepo{users: demoOrg()}, &fakeTerminationRepo{}, &fakeCache{})

	_, err := svc.CreateTermination(context.Background(), dto.CreateTerminationDTO{
		UserID:        "u-agent",
		Reason:        "resignation",
		EffectiveDate: "01.09.2026",
	})
	assert.Error(t, err)
}
