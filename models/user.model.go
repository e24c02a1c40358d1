package models

const (
	RoleAdmin    = "ADMIN"
	RoleProvider = "PROVIDER"
	RoleStudent  = "STUDENT"
)

type User struct {
	Base
	Name         string `json:"name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Role         string `json:"role" gorm:"default:'STUDENT'"` // ADMIN, PROVIDER, STUDENT
	PasswordHash string `json:"-" gorm:"not null"`
	IsBlocked    bool   `json:"is_blocked" gorm:"default:false"`
}
