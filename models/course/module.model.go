package course

import "trainhub/models"

type ModuleType string

const (
	ModuleTypeVideo    ModuleType = "video"
	ModuleTypeQuiz     ModuleType = "quiz"
	ModuleTypeExam     ModuleType = "exam"
	ModuleTypeDocument ModuleType = "document"
	ModuleTypeMixed    ModuleType = "mixed"
)

// ModuleTypes lists every accepted module type
var ModuleTypes = []ModuleType{
	ModuleTypeVideo,
	ModuleTypeQuiz,
	ModuleTypeExam,
	ModuleTypeDocument,
	ModuleTypeMixed,
}

// Valid reports whether t is one of ModuleTypes
func (t ModuleType) Valid() bool {
	for _, known := range ModuleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CourseModule represents a section/module within a course.
// OrderIndex is unique per course, enforced by idx_course_module_order.
type CourseModule struct {
	models.Base
	CourseID        string     `json:"course_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_course_module_order,priority:1"`
	Title           string     `json:"title" gorm:"not null"`
	Description     *string    `json:"description"`
	OrderIndex      int        `json:"order_index" gorm:"not null;uniqueIndex:idx_course_module_order,priority:2"`
	DurationMinutes *int       `json:"duration_minutes"`
	ModuleType      ModuleType `json:"module_type" gorm:"type:varchar(16);not null"`
	IsMandatory     bool       `json:"is_mandatory" gorm:"not null"` // no gorm default: false would be swapped for it on insert
	PassingScore    *float64   `json:"passing_score" gorm:"type:numeric(5,2)"`

	Resources []Resource       `json:"resources" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Quiz      *Quiz            `json:"quiz" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Exam      *Exam            `json:"exam" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Progress  []ModuleProgress `json:"progress" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
