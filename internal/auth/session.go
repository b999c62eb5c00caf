package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
	"github.com/rs/zerolog/log"
)

// UserSource lists the local accounts.
type UserSource interface {
	List(ctx context.Context) ([]users.User, error)
}

// LoginRecorder receives a metric for every login attempt.
type LoginRecorder interface {
	RecordLogin(ctx context.Context, success bool)
}

// LoginRequest carries the sign-in form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful sign-in.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      users.User `json:"user"`
}

// SessionServiceInterface defines the contract for session operations
type SessionServiceInterface interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*users.User, error)
}

// Ensure SessionService implements SessionServiceInterface
var _ SessionServiceInterface = (*SessionService)(nil)

// SessionService signs users in against the local accounts and keeps the
// signed-in user in the session slot.
type SessionService struct {
	users    UserSource
	session  *store.Collection[users.User]
	verifier *Verifier
	delay    time.Duration
	recorder LoginRecorder
	now      clock.Clock
}

func NewSessionService(kv store.KV, accounts UserSource, verifier *Verifier, cfg Config, recorder LoginRecorder, now clock.Clock) *SessionService {
	if now == nil {
		now = clock.System
	}
	return &SessionService{
		users:    accounts,
		session:  store.NewCollection[users.User](kv, store.KeySession, nil),
		verifier: verifier,
		delay:    cfg.LoginDelay,
		recorder: recorder,
		now:      now,
	}
}

func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	accounts, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	user, err := Authenticate(accounts, req.Username, req.Password)
	if s.recorder != nil {
		s.recorder.RecordLogin(ctx, err == nil)
	}
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("Login rejected")
		return nil, err
	}

	if err := s.session.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, exp, err := s.verifier.Sign(user, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("✓ User signed in")
	return &LoginResponse{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current returns the signed-in user, or ErrNoSession.
func (s *SessionService) Current(ctx context.Context) (*users.User, error) {
	u, ok, err := s.session.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	return &u, nil
}
