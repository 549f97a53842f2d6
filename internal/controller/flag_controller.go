// FILE: internal/controller/flag_controller.go
// Controller for per-principal flag endpoints
package controller

import (
	"featuregate-be/internal/apperror"
	"featuregate-be/internal/dto"
	"featuregate-be/internal/pkg/serverutils"
	"featuregate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlagController interface {
	RegisterRoutes(r fiber.Router)
	Set(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Available(ctx *fiber.Ctx) error
}

type flagController struct {
	service service.FlagService
}

func NewFlagController(service service.FlagService) IFlagController {
	return &flagController{service: service}
}

func (c *flagController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flags/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Set)
	h.Delete("", c.Remove)
	h.Get("/available", c.Available)
}

func (c *flagController) Set(ctx *fiber.Ctx) error {
	var req dto.SetFlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Set(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Flag set", res))
}

func (c *flagController) Remove(ctx *fiber.Ctx) error {
	var req dto.RemoveFlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Remove(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Flag removed", res))
}

func (c *flagController) GetAll(ctx *fiber.Ctx) error {
	req := dto.ListFlagsRequest{}
	if raw := ctx.Query("organization_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperror.InvalidInput("invalid organization_id")
		}
		req.OrganizationId = &id
	}
	if raw := ctx.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperror.InvalidInput("invalid user_id")
		}
		req.UserId = &id
	}

	res, err := c.service.List(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Flags retrieved", res))
}

func (c *flagController) Available(ctx *fiber.Ctx) error {
	res, err := c.service.Available(ctx.Context(), serverutils.SessionFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Available features retrieved", res))
}
