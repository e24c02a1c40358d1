package course

import "trainhub/models"

// Quiz is the optional practice assessment of a module
type Quiz struct {
	models.Base
	ModuleID     string         `json:"module_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Title        string         `json:"title"`
	PassingScore *float64       `json:"passing_score" gorm:"type:numeric(5,2)"`
	Questions    []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type QuizQuestion struct {
	models.Base
	QuizID     string       `json:"quiz_id" gorm:"type:varchar(36);index;not null"`
	Prompt     string       `json:"prompt" gorm:"type:text"`
	OrderIndex int          `json:"order_index" gorm:"default:0"`
	Answers    []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type QuizAnswer struct {
	models.Base
	QuestionID string `json:"question_id" gorm:"type:varchar(36);index;not null"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
