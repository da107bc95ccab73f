package controller

import (
	"errors"

	"wink-music-be/internal/dto"
	"wink-music-be/internal/pkg/serverutils"
	"wink-music-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	StartMy(ctx *fiber.Ctx) error
	StartSpace(ctx *fiber.Ctx) error
	AiResponse(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	SaveRecommendation(ctx *fiber.Ctx) error
	GetRecommendation(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService           service.IChatService
	recommendationService service.IRecommendationService
}

func NewChatController(chatService service.IChatService, recommendationService service.IRecommendationService) IChatController {
	return &chatController{
		chatService:           chatService,
		recommendationService: recommendationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/start/my", c.StartMy)
	h.Post("/start/space", c.StartSpace)
	h.Post("/ai-response", c.AiResponse)
	h.Get("/history/:sessionId", c.History)
	h.Post("/recommendation", c.SaveRecommendation)
	h.Get("/recommendation/:sessionId", c.GetRecommendation)
}

func (c *chatController) StartMy(ctx *fiber.Ctx) error {
	var req dto.ChatStartMyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.StartMySession(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *chatController) StartSpace(ctx *fiber.Ctx) error {
	var req dto.ChatStartSpaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.StartSpaceSession(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *chatController) AiResponse(ctx *fiber.Ctx) error {
	var req dto.AiResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.GenerateAiResponse(ctx.UserContext(), &req)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("AI response", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session ID"))
	}

	res, err := c.chatService.GetHistory(ctx.UserContext(), sessionId)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) SaveRecommendation(ctx *fiber.Ctx) error {
	var req dto.SaveRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommendationService.SaveRecommendation(ctx.UserContext(), &req)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation saved", res))
}

func (c *chatController) GetRecommendation(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session ID"))
	}

	res, err := c.recommendationService.GetRecommendation(ctx.UserContext(), sessionId)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation", res))
}

// notFoundOr answers 404 for missing resources and defers everything else
// to the error middleware.
func notFoundOr(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrSessionNotFound) ||
		errors.Is(err, service.ErrRecommendationNotFound) ||
		errors.Is(err, service.ErrPlaylistNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return err
}
