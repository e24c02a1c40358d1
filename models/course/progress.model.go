package course

import (
	"time"

	"trainhub/models"

	"gorm.io/datatypes"
)

// ModuleProgress tracks one learner's progress through a module
type ModuleProgress struct {
	models.Base
	ModuleID    string         `json:"module_id" gorm:"type:varchar(36);index;not null"`
	UserID      string         `json:"user_id" gorm:"type:varchar(36);index;not null"`
	Status      string         `json:"status" gorm:"default:'NOT_STARTED'"` // NOT_STARTED, IN_PROGRESS, COMPLETED
	Score       *float64       `json:"score"`
	Answers     datatypes.JSON `json:"answers,omitempty"`
	CompletedAt *time.Time     `json:"completed_at"`
}

func (ModuleProgress) TableName() string {
	return "module_progress"
}
