package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssms/hrms-backend-go/internal/pkg/database"
	"github.com/sssms/hrms-backend-go/internal/repository/postgresql"
)

func truncateRefreshTokens(t *testing.T, db *database.DB) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE TABLE refresh_tokens CASCADE")
	require.NoError(t, err)
}

func TestJWTRepository_RevocationLifecycle(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	truncateRefreshTokens(t, db)

	repo := postgresql.NewJWTRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db)
	token := "opaque-refresh-token"
	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	require.NoError(t, repo.CreateRefreshToken(ctx, userID, token, expiresAt))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, token))

	revoked, err = repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)

	// A second repository instance over the same pool sees the revocation,
	// so the state survives process restarts.
	fresh := postgresql.NewJWTRepository(db)
	revoked, err = fresh.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestJWTRepository_UnknownTokenCountsAsRevoked(t *testing.T) {
	db := testDatabase(t)
	truncateRefreshTokens(t, db)

	repo := postgresql.NewJWTRepository(db)

	revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestJWTRepository_LapsedTokenCountsAsRevoked(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	truncateRefreshTokens(t, db)

	repo := postgresql.NewJWTRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db)
	token := "short-lived-token"

	require.NoError(t, repo.CreateRefreshToken(ctx, userID, token, time.Now().Add(-time.Minute).Unix()))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}
