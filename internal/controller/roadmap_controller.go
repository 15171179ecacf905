package controller

import (
	"lifehub-be/internal/dto"
	"lifehub-be/internal/pkg/serverutils"
	"lifehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	ListGoals(ctx *fiber.Ctx) error
	CreateGoal(ctx *fiber.Ctx) error
	UpdateGoal(ctx *fiber.Ctx) error
	DeleteGoal(ctx *fiber.Ctx) error
	ReorderGoals(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type roadmapController struct {
	roadmapService service.IRoadmapService
}

func NewRoadmapController(roadmapService service.IRoadmapService) IRoadmapController {
	return &roadmapController{roadmapService: roadmapService}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmap")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/goals", c.ListGoals)
	h.Post("/goals", c.CreateGoal)
	h.Post("/goals/reorder", c.ReorderGoals)
	h.Put("/goals/:id", c.UpdateGoal)
	h.Delete("/goals/:id", c.DeleteGoal)
	h.Get("/stats", c.Stats)
}

func (c *roadmapController) ListGoals(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	items, err := c.roadmapService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(items)
}

func (c *roadmapController) CreateGoal(ctx *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	userId := serverutils.CurrentUserId(ctx)

	res, err := c.roadmapService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Goal created successfully",
		"goalId":  res.Id,
	})
}

func (c *roadmapController) UpdateGoal(ctx *fiber.Ctx) error {
	var req dto.UpdateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	userId := serverutils.CurrentUserId(ctx)

	if err := c.roadmapService.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Goal updated successfully"})
}

func (c *roadmapController) DeleteGoal(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))
	userId := serverutils.CurrentUserId(ctx)

	if err := c.roadmapService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Goal deleted successfully"})
}

func (c *roadmapController) ReorderGoals(ctx *fiber.Ctx) error {
	var req dto.ReorderGoalsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	userId := serverutils.CurrentUserId(ctx)

	if err := c.roadmapService.Reorder(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Goals reordered successfully"})
}

func (c *roadmapController) Stats(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	stats, err := c.roadmapService.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}
