package service

import (
	"context"
	"testing"
	"time"

	"medichat-be/internal/apperror"
	"medichat-be/internal/config"
	"medichat-be/internal/dto"
	"medichat-be/internal/entity"
	"medichat-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key"

func newAuthFixture(t *testing.T) (*fakeUow, IAuthService) {
	t.Helper()
	uow := newFakeUow()
	svc := NewAuthService(&fakeFactory{uow: uow}, config.JWTConfig{
		Secret:      testSecret,
		ExpiryHours: 24,
	})
	return uow, svc
}

func seedUser(t *testing.T, uow *fakeUow, name, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entity.User{
		Id:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleCustomer,
	}
	require.NoError(t, uow.userRepo.Create(context.Background(), user))
	return user
}

func TestLoginByEmailIssuesValidToken(t *testing.T) {
	uow, svc := newAuthFixture(t)
	user := seedUser(t, uow, "ana", "ana@example.com", "s3cret")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, user.Id, res.UserContext.Id)

	claims, err := serverutils.ParseToken(testSecret, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.Id.String(), claims["sub"])

	userCtx, ok := claims["context"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", userCtx["email"])
	assert.Equal(t, "customer", userCtx["role"])

	// Expiry lands inside the configured 24h window.
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)
}

func TestLoginByNameSucceeds(t *testing.T) {
	uow, svc := newAuthFixture(t)
	seedUser(t, uow, "ana", "ana@example.com", "s3cret")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ana",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	uow, svc := newAuthFixture(t)
	seedUser(t, uow, "ana", "ana@example.com", "s3cret")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ana@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestLoginUnknownUser(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestLoginDeletedUserRejected(t *testing.T) {
	uow, svc := newAuthFixture(t)
	user := seedUser(t, uow, "ana", "ana@example.com", "s3cret")
	require.NoError(t, uow.userRepo.MarkDeleted(context.Background(), user.Id))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ana@example.com",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestSessionEchoesTokenContext(t *testing.T) {
	uow, svc := newAuthFixture(t)
	seedUser(t, uow, "ana", "ana@example.com", "s3cret")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	claims, err := serverutils.ParseToken(testSecret, login.AccessToken)
	require.NoError(t, err)

	session := svc.Session(claims)
	assert.Equal(t, "ok", session.Status)
	assert.Equal(t, "ana@example.com", session.UserContext.Email)
	assert.Equal(t, "customer", session.UserContext.Role)
	assert.WithinDuration(t, login.ExpiresAt, session.TokenExpiresAt, time.Second)
}
