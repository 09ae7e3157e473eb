package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/config"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
)

// CohortService keeps a user's access-group membership in sync with the
// tier they are entitled to. Tiers are cumulative: a tier-k subscriber
// belongs to every paid group up to and including rank k. Rank 0 means
// no paid entitlement, which maps to the free-preview group alone.
type CohortService struct {
	queries db.Querier
	cohorts config.CohortConfig
	logger  *zap.Logger
}

// NewCohortService creates a new cohort service.
func NewCohortService(queries db.Querier, cohorts config.CohortConfig) *CohortService {
	return &CohortService{
		queries: queries,
		cohorts: cohorts,
		logger:  logger.Log,
	}
}

// rankedGroups returns the paid groups in tier order, rank 1 first.
func (cs *CohortService) rankedGroups() []uuid.UUID {
	return []uuid.UUID{
		cs.cohorts.BasicGroupID,
		cs.cohorts.StandardGroupID,
		cs.cohorts.PremiumGroupID,
	}
}

// ReconcileAccess makes the user's group membership match tierRank.
// Unconfigured group IDs are skipped. Adds and removes are idempotent,
// so re-running after a partial failure converges.
func (cs *CohortService) ReconcileAccess(ctx context.Context, userID uuid.UUID, tierRank int32) error {
	for i, groupID := range cs.rankedGroups() {
		rank := int32(i + 1)
		if groupID == uuid.Nil {
			cs.logger.Debug("access group not configured, skipping",
				zap.Int32("tier_rank", rank))
			continue
		}
		if rank <= tierRank {
			if err := cs.queries.AddCohortMember(ctx, db.AddCohortMemberParams{CohortID: groupID, UserID: userID}); err != nil {
				return fmt.Errorf("failed to add user to group %s: %w", groupID, err)
			}
		} else {
			if err := cs.queries.RemoveCohortMember(ctx, db.RemoveCohortMemberParams{CohortID: groupID, UserID: userID}); err != nil {
				return fmt.Errorf("failed to remove user from group %s: %w", groupID, err)
			}
		}
	}

	if preview := cs.cohorts.FreePreviewGroupID; preview != uuid.Nil {
		if tierRank > 0 {
			if err := cs.queries.RemoveCohortMember(ctx, db.RemoveCohortMemberParams{CohortID: preview, UserID: userID}); err != nil {
				return fmt.Errorf("failed to remove user from free preview: %w", err)
			}
		} else {
			if err := cs.queries.AddCohortMember(ctx, db.AddCohortMemberParams{CohortID: preview, UserID: userID}); err != nil {
				return fmt.Errorf("failed to add user to free preview: %w", err)
			}
		}
	}

	cs.logger.Info("access groups reconciled",
		zap.String("user_id", userID.String()),
		zap.Int32("tier_rank", tierRank))
	return nil
}

// ListUserGroups returns the group IDs the user currently belongs to.
func (cs *CohortService) ListUserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	members, err := cs.queries.ListCohortMembersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	groups := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		groups = append(groups, m.CohortID)
	}
	return groups, nil
}
