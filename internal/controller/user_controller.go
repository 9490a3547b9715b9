package controller

import (
	"io"

	"medichat-be/internal/dto"
	"medichat-be/internal/pkg/serverutils"
	"medichat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Register(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UploadPhoto(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	// Registration is the only open endpoint in this group.
	r.Post("/users", c.Register)

	r.Get("/users", jwtMiddleware, c.List)
	r.Put("/users", jwtMiddleware, c.Update)
	r.Delete("/users", jwtMiddleware, c.Delete)
	r.Post("/users/photo", jwtMiddleware, c.UploadPhoto)
	r.Put("/users/photo", jwtMiddleware, c.UploadPhoto)
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *userController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.Queries())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users retrieved", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	callerId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.Update(ctx.Context(), &req, callerId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	callerId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	targetId := callerId
	if raw := ctx.Query("id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}
		targetId = parsed
	}

	if err := c.service.Delete(ctx.Context(), targetId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}

func (c *userController) UploadPhoto(ctx *fiber.Ctx) error {
	callerId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable file")
	}

	res, err := c.service.UploadPhoto(
		ctx.Context(),
		callerId,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Photo stored", res))
}

// callerUserId resolves the authenticated user from the token middleware.
func callerUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(serverutils.LocalsUserId).(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing token context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}
