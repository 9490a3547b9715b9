package controller

import (
	"medichat-be/internal/dto"
	"medichat-be/internal/pkg/serverutils"
	"medichat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	r.Post("/auth", c.Login)
	r.Get("/user/session", jwtMiddleware, c.Session)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	claims, ok := ctx.Locals(serverutils.LocalsClaims).(jwt.MapClaims)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token context")
	}
	return ctx.JSON(serverutils.SuccessResponse("Session active", c.service.Session(claims)))
}
