package controller

import (
	"lifehub-be/internal/dto"
	"lifehub-be/internal/pkg/serverutils"
	"lifehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{noteService: noteService}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Post("/notes", serverutils.JwtMiddleware, c.Create)
	r.Post("/delete-note", serverutils.JwtMiddleware, c.Delete)
	r.Post("/edit-note", serverutils.JwtMiddleware, c.Edit)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	userId := serverutils.CurrentUserId(ctx)

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Note added!",
		"noteId":  res.Id,
	})
}

// Delete always answers an empty object; removing a note that is gone
// or never existed is not an error.
func (c *noteController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	userId := serverutils.CurrentUserId(ctx)

	if err := c.noteService.Delete(ctx.Context(), userId, req.NoteId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{})
}

func (c *noteController) Edit(ctx *fiber.Ctx) error {
	var req dto.EditNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	userId := serverutils.CurrentUserId(ctx)

	res, err := c.noteService.Edit(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Note updated successfully",
		"noteId":  res.NoteId,
		"newData": res.NewData,
		"newDate": res.NewDate,
	})
}
