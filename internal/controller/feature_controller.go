// FILE: internal/controller/feature_controller.go
// Controller for feature catalog endpoints (admin tier)
package controller

import (
	"featuregate-be/internal/apperror"
	"featuregate-be/internal/dto"
	"featuregate-be/internal/pkg/serverutils"
	"featuregate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type featureController struct {
	service service.FeatureService
}

func NewFeatureController(service service.FeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Patch(":id/toggle", c.Toggle)
	h.Delete(":id", c.Delete)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feature created", res))
}

func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), serverutils.SessionFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Features retrieved", res))
}

func (c *featureController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.InvalidInput("invalid feature id")
	}

	res, err := c.service.Get(ctx.Context(), serverutils.SessionFromCtx(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature retrieved", res))
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.InvalidInput("invalid feature id")
	}

	var req dto.UpdateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("malformed request body")
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature updated", res))
}

func (c *featureController) Toggle(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.InvalidInput("invalid feature id")
	}

	var req dto.ToggleFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Toggle(ctx.Context(), serverutils.SessionFromCtx(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature toggled", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.InvalidInput("invalid feature id")
	}

	res, err := c.service.Delete(ctx.Context(), serverutils.SessionFromCtx(ctx), dto.DeleteFeatureRequest{Id: id})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature deleted", res))
}
