package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/averyhale/socialnet/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	// Delete removes the account and every follow edge that references it,
	// so no other account's relationship sets retain the deleted id.
	Delete(ctx context.Context, id uuid.UUID) error
}

type FollowRepository interface {
	// Create inserts the edge; inserting an existing edge is a no-op.
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	FollowerIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	FollowingIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	CountFollowing(ctx context.Context, accountID uuid.UUID) (int, error)
}

type Repositories struct {
	Account AccountRepository
	Follow  FollowRepository
}
