// AngelaMos | 2026
// service.go

package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/gardenly/go-backend/internal/core"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// emailRx enforces the local@domain.tld shape: non-whitespace local part,
// non-whitespace domain, a literal dot, non-whitespace TLD.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup creates an account. Uniqueness of username and email is enforced
// by the store constraints; the insert error is the conflict signal.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (string, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return "", err
	}

	return user.Username, nil
}

// Login verifies credentials and returns the profile on a match. Unknown
// usernames take the same timing-safe verification path as wrong passwords.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*Profile, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // always verify to prevent user enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile mutates first_name, last_name and email. The username is
// the immutable primary identifier and is never updated.
func (s *Service) UpdateProfile(
	ctx context.Context,
	req UpdateProfileRequest,
) (*Profile, error) {
	if !emailRx.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	taken, err := s.repo.EmailTakenByOther(ctx, req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	// The pre-check above gives the friendly answer; the email constraint
	// still backstops the race between check and update.
	err = s.repo.UpdateProfile(
		ctx,
		req.Username,
		req.FirstName,
		req.LastName,
		req.Email,
	)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil
}

// DeleteAccount re-verifies credentials immediately before the destructive
// action, independent of any prior login.
func (s *Service) DeleteAccount(
	ctx context.Context,
	req DeleteAccountRequest,
) error {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // always verify to prevent user enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return ErrInvalidCredentials
		}
		return err
	}

	valid, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	return s.repo.Delete(ctx, req.Username)
}
