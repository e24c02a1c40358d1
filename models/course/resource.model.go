package course

import (
	"trainhub/models"

	"gorm.io/datatypes"
)

// Resource is a downloadable or linkable asset attached to a module
type Resource struct {
	models.Base
	ModuleID     string         `json:"module_id" gorm:"type:varchar(36);index;not null"`
	Title        string         `json:"title"`
	ResourceType string         `json:"resource_type" gorm:"default:'LINK'"` // LINK, FILE, VIDEO
	URL          string         `json:"url"`
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	Metadata     datatypes.JSON `json:"metadata,omitempty"`
}
