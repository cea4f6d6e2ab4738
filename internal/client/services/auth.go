// Package services holds the application services of the gophdocs client:
// thin pass-throughs to the backend with the input checks that must happen
// before any call is made.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/common"
)

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", common.MinPasswordLength)
)

// AuthService covers sign-up, sign-in and profile changes. Passwords passed
// in are wiped once the call returns.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte, displayName string) (*models.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ChangeEmail(ctx context.Context, email string) (*models.User, error)
	ChangePassword(ctx context.Context, password []byte) error
	Ping(ctx context.Context) error
	Close() error
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func checkPassword(password []byte) error {
	if len(password) < common.MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func (a *authService) SignUp(ctx context.Context, email string, password []byte, displayName string) (*models.Session, error) {
	defer common.WipeByteArray(password)

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	s, err := a.client.SignUp(ctx, email, password, strings.TrimSpace(displayName))
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return s, nil
}

func (a *authService) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	defer common.WipeByteArray(password)

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ErrPasswordTooShort
	}

	s, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return s, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.client.SignOut(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.client.GetCurrentUser(ctx)
}

func (a *authService) ChangeEmail(ctx context.Context, email string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	u, err := a.client.UpdateUser(ctx, &email, nil)
	if err != nil {
		return nil, fmt.Errorf("change email: %w", err)
	}
	return u, nil
}

func (a *authService) ChangePassword(ctx context.Context, password []byte) error {
	defer common.WipeByteArray(password)

	if err := checkPassword(password); err != nil {
		return err
	}
	if _, err := a.client.UpdateUser(ctx, nil, password); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close() error {
	return a.client.Close()
}
