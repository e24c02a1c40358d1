package courseRoutes

import (
	controllers "trainhub/controllers/course"
	"trainhub/middleware"
	"trainhub/models"
	validators "trainhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseModuleRoutes sets up module management routes.
// Role checks gate the endpoint; course ownership is enforced by the service.
func SetupCourseModuleRoutes(app *fiber.App, ctl *controllers.CourseModuleController) {
	moduleGroup := app.Group("/course-modules", middleware.JWTMiddleware)

	authors := middleware.RequireRoles(models.RoleProvider, models.RoleAdmin)
	readers := middleware.RequireRoles(models.RoleProvider, models.RoleAdmin, models.RoleStudent)

	moduleGroup.Post("/", authors, validators.CreateCourseModule(), ctl.Create)
	moduleGroup.Get("/course/:courseId", readers, validators.CourseIDParam(), ctl.ListByCourse)
	moduleGroup.Post("/course/:courseId/reorder", authors, validators.ReorderCourseModules(), ctl.Reorder)
	moduleGroup.Get("/:id", readers, validators.ModuleIDParam(), ctl.GetOne)
	moduleGroup.Patch("/:id", authors, validators.UpdateCourseModule(), ctl.Update)
	moduleGroup.Delete("/:id", authors, validators.ModuleIDParam(), ctl.Remove)
}
