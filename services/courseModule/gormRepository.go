package courseModule

import (
	"context"
	"errors"
	"fmt"

	courseModels "trainhub/models/course"

	"gorm.io/gorm"
)

// GormRepository implements ModuleRepository on top of gorm.
// The (course_id, order_index) unique index backs the service's collision checks.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func byOrderIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index asc")
}

func (r *GormRepository) FindOwnedCourse(ctx context.Context, courseID, ownerID string) (*courseModels.Course, error) {
	providers := r.db.Model(&courseModels.Provider{}).Select("id").Where("user_id = ?", ownerID)

	var course courseModels.Course
	err := r.db.WithContext(ctx).
		Where("id = ?", courseID).
		Where(r.db.Where("owner_id = ?", ownerID).Or("provider_id IN (?)", providers)).
		Take(&course).Error
	if err != nil {
		return nil, translateError(err, "course")
	}
	return &course, nil
}

func (r *GormRepository) FindMany(ctx context.Context, courseID string) ([]courseModels.CourseModule, error) {
	var modules []courseModels.CourseModule
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Preload("Resources", byOrderIndex).
		Preload("Quiz").
		Preload("Exam").
		Preload("Progress").
		Order("order_index asc").
		Find(&modules).Error
	if err != nil {
		return nil, fmt.Errorf("list modules of course %s: %w", courseID, err)
	}
	return modules, nil
}

func (r *GormRepository) FindOne(ctx context.Context, moduleID string, full bool) (*courseModels.CourseModule, error) {
	q := r.db.WithContext(ctx).
		Preload("Resources", byOrderIndex).
		Preload("Progress")
	if full {
		q = q.
			Preload("Quiz.Questions", byOrderIndex).
			Preload("Quiz.Questions.Answers", byOrderIndex).
			Preload("Exam.Questions", byOrderIndex).
			Preload("Exam.Questions.Answers", byOrderIndex)
	} else {
		q = q.Preload("Quiz").Preload("Exam")
	}

	var module courseModels.CourseModule
	if err := q.Where("id = ?", moduleID).Take(&module).Error; err != nil {
		return nil, translateError(err, "module")
	}
	return &module, nil
}

func (r *GormRepository) FindByOrderIndex(ctx context.Context, courseID string, orderIndex int) (*courseModels.CourseModule, error) {
	var module courseModels.CourseModule
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND order_index = ?", courseID, orderIndex).
		Take(&module).Error
	if err != nil {
		return nil, translateError(err, "module")
	}
	return &module, nil
}

func (r *GormRepository) Create(ctx context.Context, module *courseModels.CourseModule) error {
	if err := r.db.WithContext(ctx).Create(module).Error; err != nil {
		return translateError(err, "module")
	}
	return nil
}

func (r *GormRepository) Update(ctx context.Context, moduleID string, patch ModulePatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&courseModels.CourseModule{}).
		Where("id = ?", moduleID).
		Updates(cols)
	if res.Error != nil {
		return translateError(res.Error, "module")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("module %s: %w", moduleID, ErrNotFound)
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, moduleID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", moduleID).
		Delete(&courseModels.CourseModule{})
	if res.Error != nil {
		return translateError(res.Error, "module")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("module %s: %w", moduleID, ErrNotFound)
	}
	return nil
}

func (r *GormRepository) WithTransaction(ctx context.Context, fn func(repo ModuleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func translateError(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", entity, ErrOrderIndexTaken)
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}
