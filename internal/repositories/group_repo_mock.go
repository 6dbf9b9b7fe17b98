package repositories

import (
	"context"
	"sync"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockGroupRepository is an in-memory implementation of GroupRepository.
type MockGroupRepository struct {
	groups map[primitive.ObjectID]models.ProductGroup
	mu     sync.RWMutex
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{groups: make(map[primitive.ObjectID]models.ProductGroup)}
}

func (m *MockGroupRepository) Create(_ context.Context, group *models.ProductGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if group.ID.IsZero() {
		group.ID = primitive.NewObjectID()
	}
	m.groups[group.ID] = *group
	return nil
}

func (m *MockGroupRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.ProductGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	group, ok := m.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &group, nil
}

func (m *MockGroupRepository) List(_ context.Context) ([]models.ProductGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := []models.ProductGroup{}
	for _, g := range m.groups {
		groups = append(groups, g)
	}
	return groups, nil
}

func (m *MockGroupRepository) FindByTag(_ context.Context, tag string) ([]models.ProductGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := []models.ProductGroup{}
	for _, g := range m.groups {
		for _, t := range g.Tags {
			if t == tag {
				groups = append(groups, g)
				break
			}
		}
	}
	return groups, nil
}

func (m *MockGroupRepository) Update(_ context.Context, id primitive.ObjectID, patch models.GroupPatch) (*models.ProductGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	group, ok := m.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		group.Name = *patch.Name
	}
	if patch.Tags != nil {
		group.Tags = patch.Tags
	}
	if patch.Products != nil {
		group.Products = patch.Products
	}
	if patch.Photo != nil {
		group.Photo = *patch.Photo
	}
	m.groups[id] = group
	return &group, nil
}

func (m *MockGroupRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groups[id]; !ok {
		return ErrNotFound
	}
	delete(m.groups, id)
	return nil
}
