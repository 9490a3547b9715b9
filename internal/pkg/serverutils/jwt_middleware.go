package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalsUserId = "user_id"
	LocalsRole   = "user_role"
	LocalsClaims = "claims"
)

// ParseToken verifies signature and expiry and returns the claims.
// golang-jwt rejects expired tokens during Parse.
func ParseToken(secret, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// NewJwtMiddleware guards a route group with bearer-token auth. The
// resolved context lands in Locals; role is carried, never enforced.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		if sub, ok := claims["sub"].(string); ok {
			ctx.Locals(LocalsUserId, sub)
		}
		if userCtx, ok := claims["context"].(map[string]interface{}); ok {
			if role, ok := userCtx["role"].(string); ok {
				ctx.Locals(LocalsRole, role)
			}
		}
		ctx.Locals(LocalsClaims, claims)
		return ctx.Next()
	}
}
