package usecase

import (
	"fmt"
	"time"

	"github.com/athsb009/cloud-cdn/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityProvider is the user-pool surface the auth flow needs.
// pkg/cognito implements it.
type IdentityProvider interface {
	Register(email, password string) (string, error)
	Login(email, password string) (string, error)
}

// Session is what a successful login yields. The token is issued and
// signed by the identity provider; claims are read without local
// verification since the provider just handed the token to us.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

type AuthUseCase interface {
	Register(email, password string) (string, error)
	Login(email, password string) (*Session, error)
}

type authUseCase struct {
	provider IdentityProvider
	logger   *logger.Logger
}

func NewAuthUseCase(provider IdentityProvider, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		provider: provider,
		logger:   logger,
	}
}

func (uc *authUseCase) Register(email, password string) (string, error) {
	userSub, err := uc.provider.Register(email, password)
	if err != nil {
		uc.logger.Error("Failed to register user: %v", err)
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return userSub, nil
}

func (uc *authUseCase) Login(email, password string) (*Session, error) {
	token, err := uc.provider.Login(email, password)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	session := &Session{Token: token}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if e, ok := claims["email"].(string); ok {
			session.Email = e
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Time
		}
	}

	return session, nil
}
