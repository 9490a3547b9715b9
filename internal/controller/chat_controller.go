package controller

import (
	"medichat-be/internal/dto"
	"medichat-be/internal/pkg/serverutils"
	"medichat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListHistory(ctx *fiber.Ctx) error
	UpdateMessage(ctx *fiber.Ctx) error
	DeleteMessage(ctx *fiber.Ctx) error
	AttachTag(ctx *fiber.Ctx) error
	ListTags(ctx *fiber.Ctx) error
	DetachTag(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/chats", jwtMiddleware)

	h.Post("/", c.Submit)
	h.Get("/", c.List)
	h.Put("/", c.Update)
	h.Delete("/", c.Delete)

	h.Get("/history", c.ListHistory)
	h.Put("/history", c.UpdateMessage)
	h.Delete("/history", c.DeleteMessage)

	h.Post("/tags", c.AttachTag)
	h.Get("/tags", c.ListTags)
	h.Delete("/tags", c.DetachTag)
}

func (c *chatController) Submit(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	res, err := c.service.SubmitMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Message submitted", res))
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	// A bare id filter answers with the full single-chat view.
	if raw := ctx.Query("id"); raw != "" && len(ctx.Queries()) == 1 {
		return c.Get(ctx)
	}

	res, err := c.service.ListChats(ctx.Context(), userId, ctx.Queries())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chats retrieved", res))
}

func (c *chatController) Get(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}
	chatId, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chat id")
	}

	res, err := c.service.GetChat(ctx.Context(), userId, chatId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat retrieved", res))
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.UpdateChat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat updated", res))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}
	chatId, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chat id")
	}

	if err := c.service.DeleteChat(ctx.Context(), userId, chatId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Chat deleted", nil))
}

func (c *chatController) ListHistory(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListHistory(ctx.Context(), userId, ctx.Queries())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("History retrieved", res))
}

func (c *chatController) UpdateMessage(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.UpdateMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message updated", res))
}

func (c *chatController) DeleteMessage(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}
	messageId, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid message id")
	}

	if err := c.service.DeleteMessage(ctx.Context(), userId, messageId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message deleted", nil))
}

func (c *chatController) AttachTag(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.TagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tag name is required")
	}

	res, err := c.service.AttachTag(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Tag attached", res))
}

func (c *chatController) ListTags(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}
	chatId, err := uuid.Parse(ctx.Query("chat_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chat id")
	}

	res, err := c.service.ListTags(ctx.Context(), userId, chatId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tags retrieved", res))
}

func (c *chatController) DetachTag(ctx *fiber.Ctx) error {
	userId, err := callerUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.TagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.service.DetachTag(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Tag detached", nil))
}
