package controller

import (
	"fmt"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/apperror"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type folderController struct {
	service service.IFolderService
}

func NewFolderController(service service.IFolderService) IFolderController {
	return &folderController{service: service}
}

func (c *folderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *folderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *folderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFolderRequest
	// An empty or malformed body falls through to field validation, which
	// reports the first missing field.
	_ = ctx.BodyParser(&req)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("/folders/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *folderController) Show(ctx *fiber.Ctx) error {
	id, ok := serverutils.ParseId(ctx.Params("id"))
	if !ok {
		return apperror.NewNotFoundError("Folder")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *folderController) Update(ctx *fiber.Ctx) error {
	id, ok := serverutils.ParseId(ctx.Params("id"))
	if !ok {
		return apperror.NewNotFoundError("Folder")
	}

	var req dto.UpdateFolderRequest
	_ = ctx.BodyParser(&req)
	req.Id = id

	if err := c.service.Update(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *folderController) Delete(ctx *fiber.Ctx) error {
	id, ok := serverutils.ParseId(ctx.Params("id"))
	if !ok {
		return apperror.NewNotFoundError("Folder")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
