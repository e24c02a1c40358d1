package controllers

import (
	"errors"

	"trainhub/middleware"
	courseModels "trainhub/models/course"
	"trainhub/services/courseModule"
	validators "trainhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CourseModuleController exposes the module ordering service over HTTP
type CourseModuleController struct {
	service *courseModule.Service
}

func NewCourseModuleController(service *courseModule.Service) *CourseModuleController {
	return &CourseModuleController{service: service}
}

// Create creates a new module in a course
func (ctl *CourseModuleController) Create(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*validators.CreateCourseModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := ctl.service.Create(c.UserContext(), courseModule.CreateModuleInput{
		CourseID:        reqData.CourseID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		OrderIndex:      *reqData.OrderIndex,
		DurationMinutes: reqData.DurationMinutes,
		ModuleType:      courseModels.ModuleType(reqData.ModuleType),
		IsMandatory:     reqData.IsMandatory,
		PassingScore:    reqData.PassingScore,
	}, userId)
	if err != nil {
		return moduleErrorResponse(c, err, "Course not found!", "Failed to create module!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// ListByCourse lists all modules in a course in display order
func (ctl *CourseModuleController) ListByCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	modules, err := ctl.service.ListByCourse(c.UserContext(), courseID, userId)
	if err != nil {
		return moduleErrorResponse(c, err, "Course not found!", "Failed to fetch modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// GetOne returns a module with its quiz and exam content
func (ctl *CourseModuleController) GetOne(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	module, err := ctl.service.GetOne(c.UserContext(), moduleID, userId)
	if err != nil {
		return moduleErrorResponse(c, err, "Module not found!", "Failed to fetch module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// Update applies a partial update to a module
func (ctl *CourseModuleController) Update(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	reqData, ok := c.Locals("validatedModuleUpdate").(*validators.UpdateCourseModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	patch := courseModule.ModulePatch{
		Title:           reqData.Title,
		Description:     reqData.Description,
		OrderIndex:      reqData.OrderIndex,
		DurationMinutes: reqData.DurationMinutes,
		IsMandatory:     reqData.IsMandatory,
		PassingScore:    reqData.PassingScore,
	}
	if reqData.ModuleType != nil {
		moduleType := courseModels.ModuleType(*reqData.ModuleType)
		patch.ModuleType = &moduleType
	}

	module, err := ctl.service.Update(c.UserContext(), moduleID, patch, userId)
	if err != nil {
		return moduleErrorResponse(c, err, "Module not found!", "Failed to update module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// Remove deletes a module
func (ctl *CourseModuleController) Remove(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	if err := ctl.service.Remove(c.UserContext(), moduleID, userId); err != nil {
		return moduleErrorResponse(c, err, "Module not found!", "Failed to delete module!")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder rewrites the module order of a course
func (ctl *CourseModuleController) Reorder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedReorder").(*validators.ReorderCourseModulesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	modules, err := ctl.service.Reorder(c.UserContext(), courseID, reqData.ModuleIDs, userId)
	if err != nil {
		return moduleErrorResponse(c, err, "Course not found!", "Failed to reorder modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", modules)
}

// moduleErrorResponse maps service errors to status codes; internal details stay in the logs
func moduleErrorResponse(c *fiber.Ctx, err error, notFound, internal string) error {
	switch {
	case errors.Is(err, courseModule.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFound, nil)
	case errors.Is(err, courseModule.ErrOrderIndexTaken):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Another module of this course already uses this order_index!", nil)
	case errors.Is(err, courseModule.ErrInvalidReorder), errors.Is(err, courseModule.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, internal, nil)
	}
}
