package course

import "trainhub/models"

// Exam is the optional graded assessment of a module
type Exam struct {
	models.Base
	ModuleID         string         `json:"module_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Title            string         `json:"title"`
	PassingScore     *float64       `json:"passing_score" gorm:"type:numeric(5,2)"`
	TimeLimitMinutes *int           `json:"time_limit_minutes"`
	Questions        []ExamQuestion `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
}

type ExamQuestion struct {
	models.Base
	ExamID     string       `json:"exam_id" gorm:"type:varchar(36);index;not null"`
	Prompt     string       `json:"prompt" gorm:"type:text"`
	Points     int          `json:"points" gorm:"default:1"`
	OrderIndex int          `json:"order_index" gorm:"default:0"`
	Answers    []ExamAnswer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type ExamAnswer struct {
	models.Base
	QuestionID string `json:"question_id" gorm:"type:varchar(36);index;not null"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
