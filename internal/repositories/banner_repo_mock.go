package repositories

import (
	"context"
	"sort"
	"sync"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBannerRepository is an in-memory implementation of BannerRepository.
type MockBannerRepository struct {
	banners map[primitive.ObjectID]models.Banner
	mu      sync.RWMutex
}

func NewMockBannerRepository() *MockBannerRepository {
	return &MockBannerRepository{banners: make(map[primitive.ObjectID]models.Banner)}
}

func (m *MockBannerRepository) Create(_ context.Context, banner *models.Banner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if banner.ID.IsZero() {
		banner.ID = primitive.NewObjectID()
	}
	m.banners[banner.ID] = *banner
	return nil
}

func (m *MockBannerRepository) ListActive(_ context.Context) ([]models.Banner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	banners := []models.Banner{}
	for _, b := range m.banners {
		if b.IsActive {
			banners = append(banners, b)
		}
	}
	sort.Slice(banners, func(i, j int) bool {
		return banners[i].CreatedAt.After(banners[j].CreatedAt)
	})
	return banners, nil
}

func (m *MockBannerRepository) Update(_ context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	banner, ok := m.banners[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Image != nil {
		banner.Image = *patch.Image
	}
	if patch.IsActive != nil {
		banner.IsActive = *patch.IsActive
	}
	m.banners[id] = banner
	return &banner, nil
}

func (m *MockBannerRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.banners[id]; !ok {
		return ErrNotFound
	}
	delete(m.banners, id)
	return nil
}
