package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sssms/hrms-backend-go/internal/domain/auth"
	"github.com/sssms/hrms-backend-go/internal/domain/user"
	"github.com/sssms/hrms-backend-go/internal/pkg/jwt"
)

type fakeUserRepository struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type tokenRow struct {
	expiresAt time.Time
	revoked   bool
}

// fakeJWTRepository mirrors the persistent token store: unknown tokens count
// as revoked, and rows outlive any one service instance.
type fakeJWTRepository struct {
	tokens map[string]*tokenRow
}

func newFakeJWTRepository() *fakeJWTRepository {
	return &fakeJWTRepository{tokens: make(map[string]*tokenRow)}
}

func (f *fakeJWTRepository) CreateRefreshToken(_ context.Context, _ string, token string, expiresAt int64) error {
	f.tokens[token] = &tokenRow{expiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (f *fakeJWTRepository) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	row, ok := f.tokens[token]
	if !ok {
		return true, nil
	}
	return row.revoked || !row.expiresAt.After(time.Now()), nil
}

func (f *fakeJWTRepository) RevokeRefreshToken(_ context.Context, token string) error {
	if row, ok := f.tokens[token]; ok {
		row.revoked = true
	}
	return nil
}

func testUserRepo(t *testing.T) *fakeUserRepository {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeUserRepository{users: map[string]user.User{
		"asha@example.com": {
			ID:           "user-1",
			Email:        "asha@example.com",
			FullName:     "Asha Rao",
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		},
	}}
}

func newTestAuthService(t *testing.T) (auth.AuthService, *fakeJWTRepository) {
	t.Helper()

	jwtRepo := newFakeJWTRepository()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	return NewAuthService(testUserRepo(t), jwtService, jwtRepo), jwtRepo
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, jwtRepo := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, "employee", resp.User.Role)

	// The issued refresh token is on record and usable.
	revoked, err := jwtRepo.IsRefreshTokenRevoked(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown email reads the same as a bad password")
}

func TestLogin_InvalidRequest(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is spent.
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_GarbageToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	t.Parallel()

	// A refresh lifetime in the past yields an already expired token.
	jwtRepo := newFakeJWTRepository()
	jwtService := jwt.NewJWTService("test-secret", "15m", "-2h")
	svc := NewAuthService(testUserRepo(t), jwtService, jwtRepo)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired, "expiry is reported distinctly from malformed tokens")
}

func TestRefresh_UnknownToken(t *testing.T) {
	t.Parallel()

	// Validly signed but never recorded by the store.
	jwtRepo := newFakeJWTRepository()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(testUserRepo(t), jwtService, jwtRepo)

	stray, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), stray)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	svc, jwtRepo := newTestAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	revoked, err := jwtRepo.IsRefreshTokenRevoked(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	assert.ErrorIs(t, svc.Logout(ctx, ""), auth.ErrInvalidToken)
}

func TestLogout_RevocationOutlivesServiceInstance(t *testing.T) {
	t.Parallel()

	jwtRepo := newFakeJWTRepository()
	userRepo := testUserRepo(t)
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(userRepo, jwtService, jwtRepo)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	// A fresh service over the same store, as after a process restart,
	// still refuses the revoked token.
	restarted := NewAuthService(userRepo, jwt.NewJWTService("test-secret", "15m", "720h"), jwtRepo)
	_, err = restarted.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
