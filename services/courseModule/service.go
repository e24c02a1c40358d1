package courseModule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	courseModels "trainhub/models/course"

	"go.uber.org/zap"
)

// CreateModuleInput is a validated module creation request
type CreateModuleInput struct {
	CourseID        string
	Title           string
	Description     *string
	OrderIndex      int
	DurationMinutes *int
	ModuleType      courseModels.ModuleType
	IsMandatory     *bool
	PassingScore    *float64
}

// Service manages course modules on behalf of the course owner.
// Every operation checks ownership and keeps order_index unique per course.
type Service struct {
	repo   ModuleRepository
	logger *zap.Logger
}

func NewService(repo ModuleRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger.Named("course_module")}
}

// Create inserts a module into a course owned by ownerID
func (s *Service) Create(ctx context.Context, in CreateModuleInput, ownerID string) (*CourseModuleResponse, error) {
	if in.OrderIndex < 0 {
		return nil, fmt.Errorf("%w: order_index must be >= 0", ErrInvalidInput)
	}
	if !in.ModuleType.Valid() {
		return nil, fmt.Errorf("%w: unknown module_type %q", ErrInvalidInput, in.ModuleType)
	}

	isMandatory := true
	if in.IsMandatory != nil {
		isMandatory = *in.IsMandatory
	}
	module := &courseModels.CourseModule{
		CourseID:        in.CourseID,
		Title:           in.Title,
		Description:     in.Description,
		OrderIndex:      in.OrderIndex,
		DurationMinutes: in.DurationMinutes,
		ModuleType:      in.ModuleType,
		IsMandatory:     isMandatory,
		PassingScore:    in.PassingScore,
	}

	err := s.repo.WithTransaction(ctx, func(repo ModuleRepository) error {
		if _, err := repo.FindOwnedCourse(ctx, in.CourseID, ownerID); err != nil {
			return err
		}
		if err := ensureOrderIndexFree(ctx, repo, in.CourseID, in.OrderIndex, ""); err != nil {
			return err
		}
		return repo.Create(ctx, module)
	})
	if err != nil {
		return nil, s.fail("create module", err, zap.String("course_id", in.CourseID), zap.String("owner_id", ownerID))
	}

	s.logger.Info("module created",
		zap.String("course_id", module.CourseID),
		zap.String("module_id", module.ID),
		zap.Int("order_index", module.OrderIndex),
		zap.String("owner_id", ownerID),
	)
	return NewCourseModuleResponse(module), nil
}

// ListByCourse returns the course's modules ordered by order_index
func (s *Service) ListByCourse(ctx context.Context, courseID, ownerID string) ([]CourseModuleResponse, error) {
	if _, err := s.repo.FindOwnedCourse(ctx, courseID, ownerID); err != nil {
		return nil, s.fail("list modules", err, zap.String("course_id", courseID), zap.String("owner_id", ownerID))
	}
	return s.list(ctx, courseID)
}

// GetOne returns a module with its quiz and exam questions
func (s *Service) GetOne(ctx context.Context, moduleID, ownerID string) (*CourseModuleResponse, error) {
	module, err := s.findOwnedModule(ctx, s.repo, moduleID, ownerID, true)
	if err != nil {
		return nil, s.fail("get module", err, zap.String("module_id", moduleID), zap.String("owner_id", ownerID))
	}
	return NewCourseModuleResponse(module), nil
}

// Update applies a merge-patch to a module
func (s *Service) Update(ctx context.Context, moduleID string, patch ModulePatch, ownerID string) (*CourseModuleResponse, error) {
	if patch.OrderIndex != nil && *patch.OrderIndex < 0 {
		return nil, fmt.Errorf("%w: order_index must be >= 0", ErrInvalidInput)
	}
	if patch.ModuleType != nil && !patch.ModuleType.Valid() {
		return nil, fmt.Errorf("%w: unknown module_type %q", ErrInvalidInput, *patch.ModuleType)
	}

	err := s.repo.WithTransaction(ctx, func(repo ModuleRepository) error {
		current, err := s.findOwnedModule(ctx, repo, moduleID, ownerID, false)
		if err != nil {
			return err
		}
		if patch.OrderIndex != nil && *patch.OrderIndex != current.OrderIndex {
			if err := ensureOrderIndexFree(ctx, repo, current.CourseID, *patch.OrderIndex, current.ID); err != nil {
				return err
			}
		}
		return repo.Update(ctx, moduleID, patch)
	})
	if err != nil {
		return nil, s.fail("update module", err, zap.String("module_id", moduleID), zap.String("owner_id", ownerID))
	}

	module, err := s.repo.FindOne(ctx, moduleID, false)
	if err != nil {
		return nil, s.fail("reload module", err, zap.String("module_id", moduleID))
	}
	s.logger.Info("module updated",
		zap.String("course_id", module.CourseID),
		zap.String("module_id", module.ID),
		zap.Strings("fields", patchFields(patch)),
		zap.String("owner_id", ownerID),
	)
	return NewCourseModuleResponse(module), nil
}

// Remove deletes a module. Remaining order_index values are not compacted.
func (s *Service) Remove(ctx context.Context, moduleID, ownerID string) error {
	var courseID string
	err := s.repo.WithTransaction(ctx, func(repo ModuleRepository) error {
		module, err := s.findOwnedModule(ctx, repo, moduleID, ownerID, false)
		if err != nil {
			return err
		}
		courseID = module.CourseID
		return repo.Delete(ctx, moduleID)
	})
	if err != nil {
		return s.fail("remove module", err, zap.String("module_id", moduleID), zap.String("owner_id", ownerID))
	}

	s.logger.Info("module removed",
		zap.String("course_id", courseID),
		zap.String("module_id", moduleID),
		zap.String("owner_id", ownerID),
	)
	return nil
}

// Reorder sets order_index to each id's position in moduleIDs.
// moduleIDs must be a permutation of the course's current module ids.
// All writes happen in one transaction: every module is first parked on a
// distinct negative index, then given its final position, so no two rows
// share an index at any statement boundary.
func (s *Service) Reorder(ctx context.Context, courseID string, moduleIDs []string, ownerID string) ([]CourseModuleResponse, error) {
	err := s.repo.WithTransaction(ctx, func(repo ModuleRepository) error {
		if _, err := repo.FindOwnedCourse(ctx, courseID, ownerID); err != nil {
			return err
		}

		current, err := repo.FindMany(ctx, courseID)
		if err != nil {
			return err
		}
		if err := checkPermutation(current, moduleIDs); err != nil {
			return err
		}

		for i, m := range current {
			parked := -(i + 1)
			if err := repo.Update(ctx, m.ID, ModulePatch{OrderIndex: &parked}); err != nil {
				return fmt.Errorf("park module %s: %w", m.ID, err)
			}
		}
		for i, id := range moduleIDs {
			position := i
			if err := repo.Update(ctx, id, ModulePatch{OrderIndex: &position}); err != nil {
				return fmt.Errorf("place module %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.fail("reorder modules", err, zap.String("course_id", courseID), zap.String("owner_id", ownerID))
	}

	s.logger.Info("modules reordered",
		zap.String("course_id", courseID),
		zap.Int("count", len(moduleIDs)),
		zap.String("owner_id", ownerID),
	)
	return s.list(ctx, courseID)
}

func (s *Service) list(ctx context.Context, courseID string) ([]CourseModuleResponse, error) {
	modules, err := s.repo.FindMany(ctx, courseID)
	if err != nil {
		return nil, s.fail("list modules", err, zap.String("course_id", courseID))
	}
	out := make([]CourseModuleResponse, 0, len(modules))
	for i := range modules {
		out = append(out, *NewCourseModuleResponse(&modules[i]))
	}
	return out, nil
}

// findOwnedModule reports a module of someone else's course as ErrNotFound
func (s *Service) findOwnedModule(ctx context.Context, repo ModuleRepository, moduleID, ownerID string, full bool) (*courseModels.CourseModule, error) {
	module, err := repo.FindOne(ctx, moduleID, full)
	if err != nil {
		return nil, err
	}
	if _, err := repo.FindOwnedCourse(ctx, module.CourseID, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("module: %w", ErrNotFound)
		}
		return nil, err
	}
	return module, nil
}

// fail logs unexpected errors; client errors pass through quietly
func (s *Service) fail(op string, err error, fields ...zap.Field) error {
	if isClientError(err) {
		s.logger.Debug(op+" rejected", append(fields, zap.Error(err))...)
		return err
	}
	s.logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", op, err)
}

func isClientError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrOrderIndexTaken) ||
		errors.Is(err, ErrInvalidReorder) ||
		errors.Is(err, ErrInvalidInput)
}

func ensureOrderIndexFree(ctx context.Context, repo ModuleRepository, courseID string, orderIndex int, exceptID string) error {
	existing, err := repo.FindByOrderIndex(ctx, courseID, orderIndex)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == exceptID {
		return nil
	}
	return fmt.Errorf("order_index %d: %w", orderIndex, ErrOrderIndexTaken)
}

func checkPermutation(current []courseModels.CourseModule, moduleIDs []string) error {
	if len(moduleIDs) != len(current) {
		return fmt.Errorf("%w: got %d ids for %d modules", ErrInvalidReorder, len(moduleIDs), len(current))
	}
	known := make(map[string]bool, len(current))
	for _, m := range current {
		known[m.ID] = false
	}
	for _, id := range moduleIDs {
		seen, ok := known[id]
		if !ok {
			return fmt.Errorf("%w: %s is not a module of this course", ErrInvalidReorder, id)
		}
		if seen {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidReorder, id)
		}
		known[id] = true
	}
	return nil
}

func patchFields(p ModulePatch) []string {
	fields := make([]string, 0, 7)
	for col := range p.Columns() {
		fields = append(fields, col)
	}
	sort.Strings(fields)
	return fields
}
