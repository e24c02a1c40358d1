package courseValidator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"trainhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateCourseModuleRequest is the body of POST /course-modules
type CreateCourseModuleRequest struct {
	CourseID        string   `json:"course_id" validate:"required,max=36"`
	Title           string   `json:"title" validate:"required,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=5000"`
	OrderIndex      *int     `json:"order_index" validate:"required,min=0"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	ModuleType      string   `json:"module_type" validate:"required,oneof=video quiz exam document mixed"`
	IsMandatory     *bool    `json:"is_mandatory"`
	PassingScore    *float64 `json:"passing_score" validate:"omitempty,gte=0,lte=100"`
}

// UpdateCourseModuleRequest is the body of PATCH /course-modules/:id; absent fields stay unchanged
type UpdateCourseModuleRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=5000"`
	OrderIndex      *int     `json:"order_index" validate:"omitempty,min=0"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	ModuleType      *string  `json:"module_type" validate:"omitempty,oneof=video quiz exam document mixed"`
	IsMandatory     *bool    `json:"is_mandatory"`
	PassingScore    *float64 `json:"passing_score" validate:"omitempty,gte=0,lte=100"`
}

// ReorderCourseModulesRequest is the body of POST /course-modules/course/:courseId/reorder
type ReorderCourseModulesRequest struct {
	ModuleIDs []string `json:"moduleIds" validate:"required,dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so clients see the field they sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationErrors flattens validator errors into the field -> message map
func validationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["body"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not be empty!", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number!", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 0 and 100!", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}

// paramID returns the trimmed route parameter, or a message explaining why it is unusable
func paramID(c *fiber.Ctx, name, label string) (string, string) {
	id := strings.TrimSpace(c.Params(name))
	if id == "" {
		return "", label + " is required!"
	}
	if len(id) > 36 {
		return "", "Invalid " + label + "!"
	}
	return id, ""
}

// CreateCourseModule validates module creation request
func CreateCourseModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateCourseModule validates module update request
func UpdateCourseModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, problem := paramID(c, "id", "Module ID")
		if problem != "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, problem, nil)
		}

		reqData := new(UpdateCourseModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil {
			title := strings.TrimSpace(*reqData.Title)
			reqData.Title = &title
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ReorderCourseModules validates module reorder request
func ReorderCourseModules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, problem := paramID(c, "courseId", "Course ID")
		if problem != "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, problem, nil)
		}

		reqData := new(ReorderCourseModulesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the :courseId route parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, problem := paramID(c, "courseId", "Course ID")
		if problem != "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, problem, nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ModuleIDParam validates the :id route parameter
func ModuleIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, problem := paramID(c, "id", "Module ID")
		if problem != "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, problem, nil)
		}
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
