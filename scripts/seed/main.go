package main

import (
	"fmt"
	"log"

	"trainhub/config"
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	courseModels "trainhub/models/course"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo provider with one course and three ordered modules, then
// prints a bearer token for trying the /course-modules endpoints.
func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:         "Demo Provider",
		Email:        "provider@trainhub.local",
		Role:         models.RoleProvider,
		PasswordHash: string(hash),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return err
		}

		provider := courseModels.Provider{UserID: user.ID, Name: "Demo Training Org", IsVerified: true}
		if err := tx.Where("user_id = ?", user.ID).FirstOrCreate(&provider).Error; err != nil {
			return err
		}

		course := courseModels.Course{ProviderID: provider.ID, Title: "Workplace Safety 101", Status: "ACTIVE"}
		if err := tx.Where("provider_id = ? AND title = ?", provider.ID, course.Title).FirstOrCreate(&course).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&courseModels.CourseModule{}).Where("course_id = ?", course.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.Printf("Course %s already has %d modules, skipping", course.ID, existing)
			return nil
		}

		duration := 20
		modules := []courseModels.CourseModule{
			{CourseID: course.ID, Title: "Hazard awareness", OrderIndex: 0, ModuleType: courseModels.ModuleTypeVideo, IsMandatory: true, DurationMinutes: &duration},
			{CourseID: course.ID, Title: "Protective equipment", OrderIndex: 1, ModuleType: courseModels.ModuleTypeDocument, IsMandatory: true},
			{CourseID: course.ID, Title: "Final check", OrderIndex: 2, ModuleType: courseModels.ModuleTypeQuiz, IsMandatory: false},
		}
		if err := tx.Create(&modules).Error; err != nil {
			return err
		}
		log.Printf("Seeded course %s with %d modules", course.ID, len(modules))
		return nil
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
}
