package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/domain/entity"
	repo "github.com/oksasatya/edupath/internal/domain/repository"
	"github.com/oksasatya/edupath/pkg/helpers"
)

// AuthService owns registration, credential checks and login sessions.
type AuthService struct {
	Users    repo.UserRepository
	Sessions SessionStore
	JWT      *helpers.JWTManager
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions SessionStore, jwt *helpers.JWTManager, notifier Notifier, logger *logrus.Logger) *AuthService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &AuthService{Users: users, Sessions: sessions, JWT: jwt, Notifier: notifier, Logger: logger}
}

// LoginResult carries the user and the signed access token for the cookie.
type LoginResult struct {
	User        *entity.User
	SessionID   string
	AccessToken string
	ExpiresAt   time.Time
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if utf8.RuneCountInString(password) < helpers.MinPasswordLength {
		return nil, invalid("password", "must be at least 6 characters")
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.Logger.WithError(err).Error("hash password failed")
		return nil, fmt.Errorf("register: %w", err)
	}
	u := &entity.User{Email: email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		return nil, persistence("create user", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.Welcome(ctx, u.Email); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue welcome email failed")
		}
	}
	return u, nil
}

// Authenticate never tells an unknown email apart from a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.Logger.WithError(err).Error("lookup user failed")
		return nil, persistence("lookup user", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and starts a fresh session bound to the access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess, err := s.Sessions.Start(ctx, u.ID, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("start session failed")
		return nil, persistence("start session", err)
	}
	token, exp, err := s.JWT.GenerateAccessToken(u.ID, sess.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, err
	}
	return &LoginResult{User: u, SessionID: sess.ID, AccessToken: token, ExpiresAt: exp}, nil
}

// Logout drops the session and every value stored in it.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.Sessions.End(ctx, userID); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("end session failed")
		return persistence("end session", err)
	}
	return nil
}

// VerifySession checks that sid is the user's current session.
func (s *AuthService) VerifySession(ctx context.Context, userID int64, sid string) (*Session, error) {
	sess, err := s.Sessions.Lookup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.ID != sid {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
