package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/internal/mailer"
	"github.com/sweetrecords/storefront/internal/repository"
	"github.com/sweetrecords/storefront/pkg/auth"
	"github.com/sweetrecords/storefront/pkg/config"
	"github.com/sweetrecords/storefront/pkg/events"
	"github.com/sweetrecords/storefront/pkg/logger"
)

type AuthService interface {
	// RegisterRequest is the first signup phase: it mints a one-time code,
	// records it in the ledger, and mails it. No identity is created yet.
	RegisterRequest(ctx context.Context, req *domain.RegisterRequest) error

	// RegisterConfirm is the second phase: it checks the latest code for the
	// email and creates the identity on a match.
	RegisterConfirm(ctx context.Context, req *domain.RegisterConfirmRequest) (*domain.User, error)

	SignIn(ctx context.Context, req *domain.SignInRequest) (string, *domain.User, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	mailer   mailer.Service
	eventBus events.EventBus
	config   *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	mailer mailer.Service,
	eventBus events.EventBus,
	config *config.Config,
) AuthService {
	return &authService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
		eventBus: eventBus,
		config:   config,
	}
}

func (s *authService) RegisterRequest(ctx context.Context, req *domain.RegisterRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", domain.ErrConflict, req.Email)
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	// A fresh request overwrites any earlier code for the same email; only
	// the latest code verifies.
	if err := s.otpRepo.Put(ctx, req.Email, code, time.Now()); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	// Without the email the user has no code, so a transport failure fails
	// the whole request. The stored code may remain; a retry issues a new
	// one safely.
	if err := s.mailer.SendOTPEmail(req.Email, code); err != nil {
		logger.ErrorContext(ctx, "Failed to send OTP email", "error", err, "email", req.Email)
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	return nil
}

func (s *authService) RegisterConfirm(ctx context.Context, req *domain.RegisterConfirmRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	code, createdAt, err := s.otpRepo.GetLatest(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load code: %w", err)
	}
	if code == "" || time.Since(createdAt) > s.config.Auth.OTPTTL {
		return nil, domain.ErrInvalidOTP
	}
	if code != req.Code {
		return nil, domain.ErrInvalidOTP
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Concurrent confirms race on the unique email index; the store decides
	// the winner and the loser surfaces as a conflict.
	user, err := s.userRepo.Create(ctx, req.Username, req.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		Username:     user.Username,
		RegisteredAt: user.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish user.registered", "error", err, "user_id", user.ID)
	}

	return user, nil
}

func (s *authService) SignIn(ctx context.Context, req *domain.SignInRequest) (string, *domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		// Same outcome as a wrong password: no signal about which half of
		// the credentials was bad.
		return "", nil, domain.ErrInvalidCredentials
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken(user.ID, s.config.Auth.JWTSecret, s.config.Auth.SessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session token: %w", err)
	}

	return token, user, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := auth.Parse(token, s.config.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.Sub)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// generateOTPCode draws a 6-digit code from a uniform distribution.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
