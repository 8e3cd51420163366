package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/utils"
)

// ErrInvalidCredentials is returned when the username or password is wrong.
// Deliberately indistinguishable between the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// authService verifies operator credentials and issues JWTs.
type authService struct {
	userRepo  portsrepo.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepository, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the password against the stored bcrypt hash and returns a
// signed token whose subject is the user ID.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign token for user %s: %w", user.UserID, err)
	}
	return token, nil
}
