package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/repository"
)

// GraphService maintains the follow relationship between accounts. Edges live
// in a single relationship table, so the follower/following mirror cannot
// drift: both views are reads of the same rows.
type GraphService struct {
	accounts repository.AccountRepository
	follows  repository.FollowRepository
}

func NewGraphService(accounts repository.AccountRepository, follows repository.FollowRepository) *GraphService {
	return &GraphService{
		accounts: accounts,
		follows:  follows,
	}
}

// Follow makes actor follow target. Following an account twice is a no-op,
// not an error. Returns the actor's following count after the operation.
func (s *GraphService) Follow(ctx context.Context, actorID, targetID uuid.UUID) (int, error) {
	if actorID == targetID {
		return 0, domain.ErrSelfFollow
	}

	if _, err := s.accounts.GetByID(ctx, targetID); err != nil {
		return 0, err
	}

	follow := &domain.Follow{
		FollowerID: actorID,
		FolloweeID: targetID,
	}
	if err := s.follows.Create(ctx, follow); err != nil {
		return 0, err
	}

	return s.follows.CountFollowing(ctx, actorID)
}

// Unfollow removes the edge from actor to target. An absent edge is a no-op,
// not an error. Returns the actor's following count after the operation.
func (s *GraphService) Unfollow(ctx context.Context, actorID, targetID uuid.UUID) (int, error) {
	if actorID == targetID {
		return 0, domain.ErrSelfUnfollow
	}

	if _, err := s.accounts.GetByID(ctx, targetID); err != nil {
		return 0, err
	}

	if err := s.follows.Delete(ctx, actorID, targetID); err != nil {
		return 0, err
	}

	return s.follows.CountFollowing(ctx, actorID)
}

// FollowerIDs returns the ids of accounts following the given account.
func (s *GraphService) FollowerIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	return s.follows.FollowerIDs(ctx, accountID)
}

// FollowingIDs returns the ids of accounts the given account follows.
func (s *GraphService) FollowingIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	return s.follows.FollowingIDs(ctx, accountID)
}
