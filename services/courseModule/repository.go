package courseModule

import (
	"context"

	courseModels "trainhub/models/course"
)

// ModuleRepository is the persistence gateway for course modules.
// Implementations return ErrNotFound for missing rows and
// ErrOrderIndexTaken when the (course_id, order_index) index rejects a write.
type ModuleRepository interface {
	// FindOwnedCourse loads the course if ownerID owns it directly or through its provider.
	FindOwnedCourse(ctx context.Context, courseID, ownerID string) (*courseModels.Course, error)

	// FindMany returns the course's modules ordered by order_index, resources included.
	FindMany(ctx context.Context, courseID string) ([]courseModels.CourseModule, error)

	// FindOne loads a module; full also loads quiz and exam questions with answers.
	FindOne(ctx context.Context, moduleID string, full bool) (*courseModels.CourseModule, error)

	FindByOrderIndex(ctx context.Context, courseID string, orderIndex int) (*courseModels.CourseModule, error)

	Create(ctx context.Context, module *courseModels.CourseModule) error
	Update(ctx context.Context, moduleID string, patch ModulePatch) error
	Delete(ctx context.Context, moduleID string) error

	// WithTransaction runs fn against a repository bound to one transaction.
	// Returning an error from fn rolls everything back.
	WithTransaction(ctx context.Context, fn func(repo ModuleRepository) error) error
}

// ModulePatch carries a merge-patch: nil fields are left unchanged.
type ModulePatch struct {
	Title           *string
	Description     *string
	OrderIndex      *int
	DurationMinutes *int
	ModuleType      *courseModels.ModuleType
	IsMandatory     *bool
	PassingScore    *float64
}

// IsEmpty reports whether the patch would write nothing
func (p ModulePatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the present fields to their column names
func (p ModulePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.OrderIndex != nil {
		cols["order_index"] = *p.OrderIndex
	}
	if p.DurationMinutes != nil {
		cols["duration_minutes"] = *p.DurationMinutes
	}
	if p.ModuleType != nil {
		cols["module_type"] = string(*p.ModuleType)
	}
	if p.IsMandatory != nil {
		cols["is_mandatory"] = *p.IsMandatory
	}
	if p.PassingScore != nil {
		cols["passing_score"] = *p.PassingScore
	}
	return cols
}
