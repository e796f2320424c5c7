package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/events"
	"pulse/internal/hierarchy"
	"pulse/internal/repositories"
	"pulse/pkg/errors"
	"pulse/pkg/eventbus"
)

// orgChartCacheKey holds the serialized chart nodes; every user
// mutation must drop it.
const orgChartCacheKey = "pulse:orgchart:nodes"

// HierarchyService feeds the reporting-hierarchy table and the
// org-chart widget, and mediates reparent requests.
type HierarchyService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	bus       *eventbus.Bus
	chartTTL  time.Duration
	logger    *zap.Logger
}

func NewHierarchyService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	chartTTL time.Duration,
	logger *zap.Logger,
) *HierarchyService {
	return &HierarchyService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		bus:       bus,
		chartTTL:  chartTTL,
		logger:    logger,
	}
}

// HierarchyQuery narrows the roster before the tree is built. Filtering
// happens before tree construction, so a filtered-out manager promotes
// its reports to roots.
type HierarchyQuery struct {
	Search      string
	Role        string
	ExpandedIDs []string
}

func (s *HierarchyService) activeMembers(ctx context.Context) ([]hierarchy.Member, error) {
	users, err := s.userRepo.GetActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]hierarchy.Member, 0, len(users))
	for i := range users {
		members = append(members, users[i].ToMember())
	}
	return members, nil
}

func matchesQuery(m hierarchy.Member, q HierarchyQuery) bool {
	if q.Role != "" && string(m.Role) != q.Role {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(m.FullName()), needle) &&
			!strings.Contains(strings.ToLower(m.Email), needle) {
			return false
		}
	}
	return true
}

// GetHierarchy returns the flattened, ordered tree rows for the user
// management table.
func (s *HierarchyService) GetHierarchy(ctx context.Context, q HierarchyQuery) ([]hierarchy.Row, error) {
	members, err := s.activeMembers(ctx)
	if err != nil {
		return nil, err
	}

	filtered := members[:0:0]
	for _, m := range members {
		if matchesQuery(m, q) {
			filtered = append(filtered, m)
		}
	}

	expanded := make(map[string]bool, len(q.ExpandedIDs))
	for _, id := range q.ExpandedIDs {
		expanded[id] = true
	}

	return hierarchy.Build(filtered, expanded), nil
}

// GetOrgChart returns the diagram node data, served from Redis when a
// fresh copy is there.
func (s *HierarchyService) GetOrgChart(ctx context.Context) ([]hierarchy.ChartNode, error) {
	if cached, err := s.cacheRepo.Get(ctx, orgChartCacheKey); err == nil && cached != "" {
		var nodes []hierarchy.ChartNode
		if err := json.Unmarshal([]byte(cached), &nodes); err == nil {
			return nodes, nil
		}
		s.logger.Warn("dropping unreadable org-chart cache entry")
		_ = s.cacheRepo.Del(ctx, orgChartCacheKey)
	}

	members, err := s.activeMembers(ctx)
	if err != nil {
		return nil, err
	}
	nodes := hierarchy.ChartNodes(members)

	if raw, err := json.Marshal(nodes); err == nil {
		if err := s.cacheRepo.Set(ctx, orgChartCacheKey, string(raw), s.chartTTL); err != nil {
			s.logger.Warn("failed to cache org chart", zap.Error(err))
		}
	}
	return nodes, nil
}

// Reparent validates a drag-and-drop manager change against the
// current tree and persists it when it keeps the forest acyclic.
func (s *HierarchyService) Reparent(ctx context.Context, payload dto.ReparentDTO) error {
	members, err := s.activeMembers(ctx)
	if err != nil {
		return err
	}

	chart := hierarchy.NewChart(members)
	if err := chart.Reparent(payload.UserID, payload.ReportsTo); err != nil {
		switch err {
		case hierarchy.ErrUnknownMember:
			return errors.ErrNotFound
		case hierarchy.ErrSelfParent, hierarchy.ErrCycleDetected:
			return errors.NewHttpError(http.StatusUnprocessableEntity, err.Error(), err)
		default:
			return err
		}
	}

	if err := s.userRepo.UpdateReportsTo(ctx, payload.UserID, null.StringFrom(payload.ReportsTo)); err != nil {
		return err
	}
	s.InvalidateChart(ctx)

	var moved entities.User
	for _, m := range members {
		if m.ID == payload.UserID {
			moved.FirstName = m.FirstName
			moved.LastName = null.NewString(m.LastName, m.LastName != "")
			break
		}
	}
	s.bus.Publish(ctx, events.ManagerChangedEvent{
		UserID:       payload.UserID,
		UserName:     moved.FullName(),
		NewManagerID: payload.ReportsTo,
	})
	return nil
}

// InvalidateChart drops the cached chart nodes. Called by every
// service that mutates users.
func (s *HierarchyService) InvalidateChart(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, orgChartCacheKey); err != nil {
		s.logger.Warn("failed to invalidate org-chart cache", zap.Error(err))
	}
}
