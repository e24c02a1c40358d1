package courseModule

import (
	"time"

	courseModels "trainhub/models/course"
)

// CourseModuleResponse is the API view of a module.
// Nested collections are always present: [] or null, never omitted.
type CourseModuleResponse struct {
	ID              string                        `json:"id"`
	CourseID        string                        `json:"course_id"`
	Title           string                        `json:"title"`
	Description     *string                       `json:"description,omitempty"`
	OrderIndex      int                           `json:"order_index"`
	DurationMinutes *int                          `json:"duration_minutes,omitempty"`
	ModuleType      courseModels.ModuleType       `json:"module_type"`
	IsMandatory     bool                          `json:"is_mandatory"`
	PassingScore    *float64                      `json:"passing_score,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
	Resources       []courseModels.Resource       `json:"resources"`
	Quiz            *courseModels.Quiz            `json:"quiz"`
	Exam            *courseModels.Exam            `json:"exam"`
	Progress        []courseModels.ModuleProgress `json:"progress"`
}

func NewCourseModuleResponse(m *courseModels.CourseModule) *CourseModuleResponse {
	resp := &CourseModuleResponse{
		ID:              m.ID,
		CourseID:        m.CourseID,
		Title:           m.Title,
		Description:     m.Description,
		OrderIndex:      m.OrderIndex,
		DurationMinutes: m.DurationMinutes,
		ModuleType:      m.ModuleType,
		IsMandatory:     m.IsMandatory,
		PassingScore:    m.PassingScore,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Resources:       m.Resources,
		Quiz:            m.Quiz,
		Exam:            m.Exam,
		Progress:        m.Progress,
	}
	if resp.Resources == nil {
		resp.Resources = []courseModels.Resource{}
	}
	if resp.Progress == nil {
		resp.Progress = []courseModels.ModuleProgress{}
	}
	return resp
}
