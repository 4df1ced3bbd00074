package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/tokens"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.AutoMigrate())

	return &AuthService{
		Repo: r,
		Tokens: &tokens.Manager{
			AccessSecret:  []byte("test-access-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
		},
	}
}

func bootstrapAdmin(t *testing.T, svc *AuthService) {
	t.Helper()
	_, err := svc.CreateInitialAdmin(context.Background(), "admin", "secret1")
	require.NoError(t, err)
}

func TestCreateInitialAdmin_OnceOnly(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.CreateInitialAdmin(ctx, "admin", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "admin", user.Username)

	initialized, err := svc.SetupStatus(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)

	_, err = svc.CreateInitialAdmin(ctx, "other", "secret2")
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// The original credential record must be intact.
	stored, err := svc.Repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestCreateInitialAdmin_WeakPassword(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	_, err := svc.CreateInitialAdmin(context.Background(), "admin", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)

	initialized, err := svc.SetupStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, initialized, "a rejected bootstrap must not initialize the system")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)

	res, err := svc.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "admin", res.User.Username)
	require.NotEmpty(t, res.Pair.AccessToken)
	require.NotEmpty(t, res.Pair.RefreshToken)

	claims, err := svc.Verify(res.Pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
}

func TestLogin_InvalidCredentials_Unified(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)
	ctx := context.Background()

	_, unknownUser := svc.Login(ctx, "nobody", "secret1")
	_, wrongPassword := svc.Login(ctx, "admin", "wrong")

	// Unknown user and wrong password must be indistinguishable.
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, unknownUser.Error(), wrongPassword.Error())
}

func TestRefresh_RotatesPair(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)
	ctx := context.Background()

	base := time.Now()
	svc.Tokens.Now = func() time.Time { return base }

	res, err := svc.Login(ctx, "admin", "secret1")
	require.NoError(t, err)

	svc.Tokens.Now = func() time.Time { return base.Add(time.Minute) }

	rotated, err := svc.Refresh(ctx, res.Pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, res.Pair.AccessToken, rotated.Pair.AccessToken)
	assert.NotEqual(t, res.Pair.RefreshToken, rotated.Pair.RefreshToken)
	assert.True(t, rotated.Pair.AccessExp.After(res.Pair.AccessExp))
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)

	res, err := svc.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), res.Pair.AccessToken)
	assert.ErrorIs(t, err, tokens.ErrInvalidTokenType)
}

func TestRefresh_DeletedUser(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Repo.DB.Exec("DELETE FROM users").Error)

	_, err = svc.Refresh(ctx, res.Pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRefresh_ExpiredRefreshToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)
	ctx := context.Background()

	base := time.Now()
	svc.Tokens.Now = func() time.Time { return base }

	res, err := svc.Login(ctx, "admin", "secret1")
	require.NoError(t, err)

	svc.Tokens.Now = func() time.Time { return base.Add(tokens.RefreshTTL + time.Hour) }

	_, err = svc.Refresh(ctx, res.Pair.RefreshToken)
	assert.ErrorIs(t, err, tokens.ErrTokenExpired)
}

func TestMe(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	bootstrapAdmin(t, svc)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin", "secret1")
	require.NoError(t, err)

	user, err := svc.Me(ctx, res.Pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	require.NoError(t, svc.Repo.DB.Exec("DELETE FROM users").Error)
	_, err = svc.Me(ctx, res.Pair.AccessToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
