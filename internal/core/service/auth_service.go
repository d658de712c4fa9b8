package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medrecords/patient-system/internal/api/metrics"
	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/domain"
	"github.com/medrecords/patient-system/internal/core/ports"
)

// AttemptLimiter abstracts the login throttle store (Redis).
type AttemptLimiter interface {
	TooMany(ctx context.Context, username, remoteIP string) (bool, error)
	RecordFailure(ctx context.Context, username, remoteIP string) error
	Reset(ctx context.Context, username, remoteIP string) error
}

// AuthService implements login and current-user resolution.
type AuthService struct {
	users   ports.UserRepository
	tokens  *auth.TokenManager
	limiter AttemptLimiter // nil disables throttling
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenManager, limiter AttemptLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, log: log}
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.PublicUser, error) {
	if in.Username == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, in.Username, in.RemoteIP)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("limiter check failed, continuing without throttle")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		s.recordFailure(ctx, in)
		return "", nil, domain.ErrInvalidCredentials
	}

	if auth.ComparePassword(user.PasswordHash, in.Password) != nil {
		s.recordFailure(ctx, in)
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.IsDisabled {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return "", nil, domain.ErrUserDisabled
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, in.Username, in.RemoteIP); err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to reset limiter")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")

	return token, user.Public(), nil
}

// CurrentUser resolves the account behind a verified token. The public
// projection keeps the password hash out of every response.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*domain.PublicUser, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, in ports.LoginInput) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, in.Username, in.RemoteIP); err != nil {
		s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to record login attempt")
	}
}
