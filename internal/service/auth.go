package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/hash"
	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/tokens"
)

var (
	// Unknown user and wrong password share one sentinel so the login
	// response cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyInitialized = errors.New("system already initialized")
	ErrWeakPassword       = errors.New("password too weak")
	ErrUsernameTaken      = errors.New("username already taken")
)

const minPasswordLen = 6

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Manager
}

type LoginResult struct {
	Pair *tokens.Pair
	User *models.User
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "user lookup", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.Tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		l.Error("login_failed", "reason", "token issue", "error", err)
		return nil, err
	}

	l.Info("login_successful", "user_id", user.ID)
	return &LoginResult{Pair: pair, User: user}, nil
}

// Refresh rotates the token pair. The referenced user is re-checked so a
// token outliving its account stops working at the first rotation. The old
// refresh token is not revoked; tokens are stateless and expire naturally.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.Tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pair, err := s.Tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("token_refreshed", "user_id", user.ID)
	return &LoginResult{Pair: pair, User: user}, nil
}

func (s *AuthService) Verify(token string) (*tokens.Claims, error) {
	return s.Tokens.ParseAccess(token)
}

func (s *AuthService) Me(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := s.Tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SetupStatus(ctx context.Context) (bool, error) {
	return s.Repo.IsInitialized(ctx)
}

// CreateInitialAdmin is the one-time bootstrap. The credential insert and
// the initialized flag are committed atomically.
func (s *AuthService) CreateInitialAdmin(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.create_initial_admin")

	initialized, err := s.Repo.IsInitialized(ctx)
	if err != nil {
		return nil, err
	}
	if initialized {
		return nil, ErrAlreadyInitialized
	}

	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	exists, err := s.Repo.UserExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("create_admin_failed", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: pwHash}
	if err := s.Repo.CreateAdminAndInitialize(ctx, &user); err != nil {
		l.Error("create_admin_failed", "reason", "bootstrap transaction", "error", err)
		return nil, err
	}

	l.Info("initial_admin_created", "user_id", user.ID)
	return &user, nil
}
