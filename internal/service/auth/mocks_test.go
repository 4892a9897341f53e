package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/auth"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Hand-rolled func-field mocks for the service's consumer interfaces.

type userRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
	CreateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, nickname, avatarURL *string) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.CreateFunc(ctx, user)
}

func (m *userRepoMock) Update(ctx context.Context, id uuid.UUID, nickname, avatarURL *string) (*domain.User, error) {
	return m.UpdateFunc(ctx, id, nickname, avatarURL)
}

type tokenRepoMock struct {
	CreateFunc           func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc        func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, id uuid.UUID) error
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteExpiredFunc    func(ctx context.Context, cutoff time.Time) (int, error)
}

func (m *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	return m.CreateFunc(ctx, token)
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	return m.GetByHashFunc(ctx, tokenHash)
}

func (m *tokenRepoMock) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.RevokeFunc(ctx, id)
}

func (m *tokenRepoMock) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.RevokeAllForUserFunc(ctx, userID)
}

func (m *tokenRepoMock) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	return m.DeleteExpiredFunc(ctx, cutoff)
}

type authMethodRepoMock struct {
	GetByOAuthFunc         func(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error)
	GetByUserAndMethodFunc func(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	CreateFunc             func(ctx context.Context, am *domain.AuthMethod) error
}

func (m *authMethodRepoMock) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	return m.GetByOAuthFunc(ctx, method, providerID)
}

func (m *authMethodRepoMock) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	return m.GetByUserAndMethodFunc(ctx, userID, method)
}

func (m *authMethodRepoMock) Create(ctx context.Context, am *domain.AuthMethod) error {
	return m.CreateFunc(ctx, am)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type oauthVerifierMock struct {
	VerifyCodeFunc func(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)
}

func (m *oauthVerifierMock) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	return m.VerifyCodeFunc(ctx, provider, code)
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return m.GenerateAccessTokenFunc(userID, role)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	return m.GenerateRefreshTokenFunc()
}

func ptrString(s string) *string { return &s }
