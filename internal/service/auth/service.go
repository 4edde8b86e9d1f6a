package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/auth"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/jwt"
)

const maxUnlockAttempts = 5

type AuthServiceImpl struct {
	settingsRepo settings.SettingsRepository
	jwtService   jwt.Service

	mu             sync.Mutex
	failedAttempts int
	locked         bool
}

var _ auth.AuthService = (*AuthServiceImpl)(nil)

func NewAuthService(settingsRepo settings.SettingsRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
	}
}

func (s *AuthServiceImpl) SetupPIN(ctx context.Context, req auth.SetupPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if auth.IsWeakPIN(req.PIN) {
		return auth.ErrWeakPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	hashStr := string(hash)
	if err := s.settingsRepo.SetPINHash(ctx, &hashStr); err != nil {
		return fmt.Errorf("failed to store pin hash: %w", err)
	}
	if err := s.settingsRepo.SetAppLockEnabled(ctx, true); err != nil {
		return fmt.Errorf("failed to enable app lock: %w", err)
	}

	s.mu.Lock()
	s.failedAttempts = 0
	s.locked = false
	s.mu.Unlock()

	return nil
}

// Unlock verifies the PIN against the stored hash. Every failed attempt
// counts; after the limit the lock is permanent until the PIN is reset.
func (s *AuthServiceImpl) Unlock(ctx context.Context, req auth.UnlockRequest) (auth.UnlockResponse, error) {
	s.mu.Lock()
	if s.locked {
		s.mu.Unlock()
		return auth.UnlockResponse{}, auth.ErrPINLocked
	}
	s.mu.Unlock()

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return auth.UnlockResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if cfg.PINHash == nil {
		return auth.UnlockResponse{}, auth.ErrNoPINSet
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*cfg.PINHash), []byte(req.PIN)); err != nil {
		s.mu.Lock()
		s.failedAttempts++
		if s.failedAttempts >= maxUnlockAttempts {
			s.locked = true
			s.mu.Unlock()
			return auth.UnlockResponse{}, auth.ErrPINLocked
		}
		s.mu.Unlock()
		return auth.UnlockResponse{}, auth.ErrInvalidPIN
	}

	s.mu.Lock()
	s.failedAttempts = 0
	s.mu.Unlock()

	token, expiresAt, err := s.jwtService.GenerateSessionToken()
	if err != nil {
		return auth.UnlockResponse{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	return auth.UnlockResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Lock revokes the session token; the revocation list keeps it dead for
// the rest of its lifetime even though the signature stays valid.
func (s *AuthServiceImpl) Lock(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrTokenExpired
	}
	s.jwtService.RevokeToken(token)
	return nil
}

func (s *AuthServiceImpl) DisableLock(ctx context.Context) error {
	if err := s.settingsRepo.SetPINHash(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear pin hash: %w", err)
	}
	if err := s.settingsRepo.SetAppLockEnabled(ctx, false); err != nil {
		return fmt.Errorf("failed to disable app lock: %w", err)
	}

	s.mu.Lock()
	s.failedAttempts = 0
	s.locked = false
	s.mu.Unlock()

	return nil
}

func (s *AuthServiceImpl) Status(ctx context.Context) (auth.AuthStatusResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return auth.AuthStatusResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	s.mu.Lock()
	attemptsLeft := maxUnlockAttempts - s.failedAttempts
	locked := s.locked
	s.mu.Unlock()
	if attemptsLeft < 0 {
		attemptsLeft = 0
	}

	return auth.AuthStatusResponse{
		AppLockEnabled: cfg.AppLockEnabled,
		PINSet:         cfg.PINHash != nil,
		Locked:         locked,
		AttemptsLeft:   attemptsLeft,
	}, nil
}
