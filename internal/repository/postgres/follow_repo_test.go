package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/repository/postgres"
	"github.com/averyhale/socialnet/internal/testutil"
)

func TestFollowRepository_CreateIdempotent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	a, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	b, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	follow := &domain.Follow{FollowerID: a.ID, FolloweeID: b.ID}
	require.NoError(t, repo.Create(ctx, follow))

	// Second insert of the same edge is a no-op
	require.NoError(t, repo.Create(ctx, &domain.Follow{FollowerID: a.ID, FolloweeID: b.ID}))

	count, err := repo.CountFollowing(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFollowRepository_MirroredProjections(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	a, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	b, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Create(ctx, &domain.Follow{FollowerID: a.ID, FolloweeID: b.ID}))

	following, err := repo.FollowingIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Contains(t, following, b.ID)

	followers, err := repo.FollowerIDs(ctx, b.ID)
	require.NoError(t, err)
	assert.Contains(t, followers, a.ID)

	// The reverse direction does not exist
	reverse, err := repo.Exists(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	a, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	b, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Create(ctx, &domain.Follow{FollowerID: a.ID, FolloweeID: b.ID}))
	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))

	exists, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an absent edge is not an error
	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))
}
