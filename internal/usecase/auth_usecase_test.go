package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/athsb009/cloud-cdn/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Register(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func signedTestToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func TestRegister_Success(t *testing.T) {
	provider := new(MockIdentityProvider)
	uc := NewAuthUseCase(provider, logger.New())

	provider.On("Register", "user@example.com", "hunter2hunter2").Return("sub-123", nil)

	sub, err := uc.Register("user@example.com", "hunter2hunter2")

	assert.NoError(t, err)
	assert.Equal(t, "sub-123", sub)
	provider.AssertExpectations(t)
}

func TestRegister_ProviderFails(t *testing.T) {
	provider := new(MockIdentityProvider)
	uc := NewAuthUseCase(provider, logger.New())

	provider.On("Register", mock.Anything, mock.Anything).Return("", errors.New("pool rejected"))

	sub, err := uc.Register("user@example.com", "pw")

	assert.Error(t, err)
	assert.Empty(t, sub)
}

func TestLogin_ParsesTokenClaims(t *testing.T) {
	provider := new(MockIdentityProvider)
	uc := NewAuthUseCase(provider, logger.New())

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, "user@example.com", exp)
	provider.On("Login", "user@example.com", "pw").Return(token, nil)

	session, err := uc.Login("user@example.com", "pw")

	assert.NoError(t, err)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, "user@example.com", session.Email)
	assert.WithinDuration(t, exp, session.ExpiresAt, time.Second)
}

func TestLogin_OpaqueTokenStillReturned(t *testing.T) {
	provider := new(MockIdentityProvider)
	uc := NewAuthUseCase(provider, logger.New())

	provider.On("Login", mock.Anything, mock.Anything).Return("not-a-jwt", nil)

	session, err := uc.Login("user@example.com", "pw")

	assert.NoError(t, err)
	assert.Equal(t, "not-a-jwt", session.Token)
	assert.Empty(t, session.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	provider := new(MockIdentityProvider)
	uc := NewAuthUseCase(provider, logger.New())

	provider.On("Login", mock.Anything, mock.Anything).Return("", errors.New("NotAuthorizedException"))

	session, err := uc.Login("user@example.com", "wrong")

	assert.Error(t, err)
	assert.Nil(t, session)
}
