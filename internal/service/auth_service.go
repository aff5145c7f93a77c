package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/config"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// OTP codes are four decimal digits.
const (
	otpMin = 1000
	otpMax = 9999
)

// dummyHash is compared against when login hits an unknown username, so the
// unknown-user and wrong-password paths do the same bcrypt work.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// RegisterInput carries new-account fields.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      domain.UserRole
}

// AuthService coordinates registration, login and the password-reset flow.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
	now        func() time.Time
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   cfg.Auth.ResetTTL(),
		now:        time.Now,
	}
}

// Register creates a new account. Duplicate email or username is surfaced as
// a conflict by the storage layer's uniqueness constraints.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(in.Role)})
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
		IsVerified:   false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperrors.NewValidationError("user with this email or username already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
	return user, nil
}

// Login authenticates by username and returns a bearer token. An unknown
// username and a wrong password produce the same result.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil && err != pgx.ErrNoRows {
		return "", time.Time{}, apperrors.MapError(err)
	}

	hash := dummyHash
	if user != nil {
		hash = user.PasswordHash
	}
	if compareErr := auth.ComparePassword(hash, password); compareErr != nil || user == nil {
		return "", time.Time{}, apperrors.NewUnauthorized("incorrect username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}

// RequestPasswordReset issues a one-time code for the email. Unknown emails
// return the sentinel id 0 with no error so callers cannot probe for
// registered accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (int64, error) {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Warn("password reset attempt for unknown email")
			return 0, nil
		}
		return 0, apperrors.MapError(err)
	}

	code, err := generateOTP()
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}

	reset := &repository.PasswordReset{
		Email:     email,
		Code:      code,
		CreatedAt: s.now(),
	}
	if err := s.resets.Create(ctx, reset); err != nil {
		return 0, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventPasswordResetRequested, events.PasswordResetRequestedPayload{
		Email:   email,
		ResetID: reset.ID,
		Code:    code,
	})
	return reset.ID, nil
}

// VerifyPasswordReset checks the code, updates the password and consumes the
// reset record. A code mismatch is indistinguishable from a missing record.
func (s *AuthService) VerifyPasswordReset(ctx context.Context, resetID int64, code int, newPassword string) error {
	reset, err := s.resets.GetByIDAndCode(ctx, resetID, code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewValidationError("invalid OTP code", nil)
		}
		return apperrors.MapError(err)
	}

	if s.now().After(reset.CreatedAt.Add(s.resetTTL)) {
		if err := s.resets.DeleteByID(ctx, reset.ID); err != nil {
			return apperrors.MapError(err)
		}
		return apperrors.NewForbidden("OTP code has expired")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.users.UpdatePasswordByEmail(ctx, reset.Email, hash); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}

	if err := s.resets.DeleteByIDAndEmail(ctx, reset.ID, reset.Email); err != nil {
		return apperrors.MapError(err)
	}
	s.logger.Info("password reset completed", zap.Int64("reset_id", reset.ID))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	})
}

func generateOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return 0, err
	}
	return otpMin + int(n.Int64()), nil
}
