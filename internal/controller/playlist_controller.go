package controller

import (
	"wink-music-be/internal/dto"
	"wink-music-be/internal/pkg/serverutils"
	"wink-music-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlaylistController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type playlistController struct {
	service service.IPlaylistService
}

func NewPlaylistController(service service.IPlaylistService) IPlaylistController {
	return &playlistController{service: service}
}

func (c *playlistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/playlists")
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)
}

func (c *playlistController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePlaylistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFromSession(ctx.UserContext(), &req)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Playlist created", res))
}

func (c *playlistController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid playlist ID"))
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Playlist", res))
}

func (c *playlistController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid playlist ID"))
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return notFoundOr(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Playlist deleted", nil))
}
