package course

import "trainhub/models"

// Course represents a learning course offered by a provider
type Course struct {
	models.Base
	ProviderID  string         `json:"provider_id" gorm:"type:varchar(36);index;not null"`
	Provider    Provider       `json:"-" gorm:"foreignKey:ProviderID"`
	OwnerID     *string        `json:"owner_id" gorm:"type:varchar(36);index"` // direct owner, bypasses provider linkage
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Status      string         `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	Modules     []CourseModule `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
