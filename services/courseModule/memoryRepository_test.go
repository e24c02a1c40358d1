package courseModule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	courseModels "trainhub/models/course"

	"github.com/google/uuid"
)

var errSimulatedWrite = errors.New("simulated write failure")

// memoryDB is the committed state shared by every memoryRepository handle.
type memoryDB struct {
	mu        sync.Mutex
	courses   map[string]courseModels.Course
	providers map[string]courseModels.Provider
	modules   map[string]courseModels.CourseModule

	// failUpdateAt makes the Nth Update call (1-based) fail; 0 disables it.
	failUpdateAt int
	updateCalls  int
}

// memoryRepository is an in-memory ModuleRepository. Like a unique index,
// it rejects any write that would give two modules of a course the same
// order_index.
type memoryRepository struct {
	db *memoryDB
	tx map[string]courseModels.CourseModule // non-nil inside WithTransaction
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{db: &memoryDB{
		courses:   make(map[string]courseModels.Course),
		providers: make(map[string]courseModels.Provider),
		modules:   make(map[string]courseModels.CourseModule),
	}}
}

func (r *memoryRepository) addProvider(id, userID string) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p := courseModels.Provider{UserID: userID, Name: "provider " + id}
	p.ID = id
	r.db.providers[id] = p
}

func (r *memoryRepository) addCourse(id, providerID string, ownerID *string) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := courseModels.Course{ProviderID: providerID, OwnerID: ownerID, Title: "course " + id}
	c.ID = id
	r.db.courses[id] = c
}

func (r *memoryRepository) failOnUpdate(n int) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.failUpdateAt = n
	r.db.updateCalls = 0
}

// snapshot returns course_id -> order_index per module id of the committed state
func (r *memoryRepository) snapshot(courseID string) map[string]int {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make(map[string]int)
	for id, m := range r.db.modules {
		if m.CourseID == courseID {
			out[id] = m.OrderIndex
		}
	}
	return out
}

func (r *memoryRepository) view(fn func(modules map[string]courseModels.CourseModule) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return fn(r.db.modules)
}

func (r *memoryRepository) FindOwnedCourse(ctx context.Context, courseID, ownerID string) (*courseModels.Course, error) {
	var found *courseModels.Course
	err := r.view(func(map[string]courseModels.CourseModule) error {
		c, ok := r.db.courses[courseID]
		if !ok {
			return fmt.Errorf("course: %w", ErrNotFound)
		}
		if c.OwnerID != nil && *c.OwnerID == ownerID {
			found = &c
			return nil
		}
		if p, ok := r.db.providers[c.ProviderID]; ok && p.UserID == ownerID {
			found = &c
			return nil
		}
		return fmt.Errorf("course: %w", ErrNotFound)
	})
	return found, err
}

func (r *memoryRepository) FindMany(ctx context.Context, courseID string) ([]courseModels.CourseModule, error) {
	var out []courseModels.CourseModule
	err := r.view(func(modules map[string]courseModels.CourseModule) error {
		for _, m := range modules {
			if m.CourseID == courseID {
				out = append(out, m)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, err
}

func (r *memoryRepository) FindOne(ctx context.Context, moduleID string, full bool) (*courseModels.CourseModule, error) {
	var found *courseModels.CourseModule
	err := r.view(func(modules map[string]courseModels.CourseModule) error {
		m, ok := modules[moduleID]
		if !ok {
			return fmt.Errorf("module: %w", ErrNotFound)
		}
		found = &m
		return nil
	})
	return found, err
}

func (r *memoryRepository) FindByOrderIndex(ctx context.Context, courseID string, orderIndex int) (*courseModels.CourseModule, error) {
	var found *courseModels.CourseModule
	err := r.view(func(modules map[string]courseModels.CourseModule) error {
		for _, m := range modules {
			if m.CourseID == courseID && m.OrderIndex == orderIndex {
				found = &m
				return nil
			}
		}
		return fmt.Errorf("module: %w", ErrNotFound)
	})
	return found, err
}

func (r *memoryRepository) Create(ctx context.Context, module *courseModels.CourseModule) error {
	return r.view(func(modules map[string]courseModels.CourseModule) error {
		if collides(modules, module.CourseID, module.OrderIndex, "") {
			return fmt.Errorf("module: %w", ErrOrderIndexTaken)
		}
		if module.ID == "" {
			module.ID = uuid.NewString()
		}
		now := time.Now()
		module.CreatedAt, module.UpdatedAt = now, now
		modules[module.ID] = *module
		return nil
	})
}

func (r *memoryRepository) Update(ctx context.Context, moduleID string, patch ModulePatch) error {
	return r.view(func(modules map[string]courseModels.CourseModule) error {
		r.db.updateCalls++
		if r.db.failUpdateAt > 0 && r.db.updateCalls == r.db.failUpdateAt {
			return errSimulatedWrite
		}
		m, ok := modules[moduleID]
		if !ok {
			return fmt.Errorf("module %s: %w", moduleID, ErrNotFound)
		}
		applyPatch(&m, patch)
		if collides(modules, m.CourseID, m.OrderIndex, m.ID) {
			return fmt.Errorf("module: %w", ErrOrderIndexTaken)
		}
		m.UpdatedAt = time.Now()
		modules[moduleID] = m
		return nil
	})
}

func (r *memoryRepository) Delete(ctx context.Context, moduleID string) error {
	return r.view(func(modules map[string]courseModels.CourseModule) error {
		if _, ok := modules[moduleID]; !ok {
			return fmt.Errorf("module %s: %w", moduleID, ErrNotFound)
		}
		delete(modules, moduleID)
		return nil
	})
}

// WithTransaction holds the lock for the whole callback and works on a copy
// that replaces the committed modules only when fn succeeds.
func (r *memoryRepository) WithTransaction(ctx context.Context, fn func(repo ModuleRepository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	work := make(map[string]courseModels.CourseModule, len(r.db.modules))
	for id, m := range r.db.modules {
		work[id] = m
	}
	if err := fn(&memoryRepository{db: r.db, tx: work}); err != nil {
		return err
	}
	r.db.modules = work
	return nil
}

func collides(modules map[string]courseModels.CourseModule, courseID string, orderIndex int, exceptID string) bool {
	for id, m := range modules {
		if id != exceptID && m.CourseID == courseID && m.OrderIndex == orderIndex {
			return true
		}
	}
	return false
}

func applyPatch(m *courseModels.CourseModule, p ModulePatch) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		m.Description = &d
	}
	if p.OrderIndex != nil {
		m.OrderIndex = *p.OrderIndex
	}
	if p.DurationMinutes != nil {
		d := *p.DurationMinutes
		m.DurationMinutes = &d
	}
	if p.ModuleType != nil {
		m.ModuleType = *p.ModuleType
	}
	if p.IsMandatory != nil {
		m.IsMandatory = *p.IsMandatory
	}
	if p.PassingScore != nil {
		s := *p.PassingScore
		m.PassingScore = &s
	}
}
