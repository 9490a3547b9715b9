package service

import (
	"context"
	"time"

	"medichat-be/internal/apperror"
	"medichat-be/internal/config"
	"medichat-be/internal/dto"
	"medichat-be/internal/entity"
	"medichat-be/internal/repository/specification"
	"medichat-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Session(claims jwt.MapClaims) *dto.SessionResponse
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtConfig  config.JWTConfig
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtConfig config.JWTConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtConfig:  jwtConfig,
		now:        time.Now,
	}
}

// Login verifies credentials against the stored hash and issues a signed,
// time-limited token embedding the user context.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByEmailOrName{Identifier: req.Username},
		specification.NotDeletedFlag{},
	)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Authentication("incorrect username")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Authentication("incorrect password")
	}

	expiresAt := s.now().Add(time.Duration(s.jwtConfig.ExpiryHours) * time.Hour)
	userContext := buildUserContext(user)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Id.String(),
		"exp": expiresAt.Unix(),
		"context": map[string]interface{}{
			"id":         userContext.Id.String(),
			"name":       userContext.Name,
			"email":      userContext.Email,
			"role":       userContext.Role,
			"created_at": userContext.CreatedAt.Format(time.RFC3339),
		},
	})

	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		UserContext: userContext,
	}, nil
}

// Session reports the resolved context of an already-validated token.
func (s *authService) Session(claims jwt.MapClaims) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		Status:   "ok",
		Datetime: s.now(),
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		resp.TokenExpiresAt = exp.Time
	}
	if rawCtx, ok := claims["context"].(map[string]interface{}); ok {
		if name, ok := rawCtx["name"].(string); ok {
			resp.UserContext.Name = name
		}
		if email, ok := rawCtx["email"].(string); ok {
			resp.UserContext.Email = email
		}
		if role, ok := rawCtx["role"].(string); ok {
			resp.UserContext.Role = role
		}
	}
	return resp
}

func buildUserContext(user *entity.User) dto.UserContext {
	return dto.UserContext{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
