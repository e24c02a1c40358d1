package course

import "trainhub/models"

// Provider is a training organization; the owning user manages its courses
type Provider struct {
	models.Base
	UserID     string      `json:"user_id" gorm:"type:varchar(36);index;not null"`
	User       models.User `json:"-" gorm:"foreignKey:UserID"`
	Name       string      `json:"name" gorm:"not null"`
	IsVerified bool        `json:"is_verified" gorm:"default:false"`
}
