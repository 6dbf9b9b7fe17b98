package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[primitive.ObjectID]models.Product
	mu       sync.RWMutex
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[primitive.ObjectID]models.Product)}
}

func (m *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products[product.ID] = *product
	return nil
}

func (m *MockProductRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (m *MockProductRepository) List(_ context.Context, size string, limit int64) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []models.Product{}
	for _, p := range m.products {
		if size != "" && p.AvailableSizes != size {
			continue
		}
		// Summary projection: full-text fields are not part of the listing.
		p.Description = ""
		p.Tags = nil
		p.CreatedBy = ""
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if limit > 0 && int64(len(products)) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (m *MockProductRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []models.Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *MockProductRepository) FindByTag(_ context.Context, tag string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []models.Product{}
	for _, p := range m.products {
		for _, t := range p.Tags {
			if t == tag {
				products = append(products, p)
				break
			}
		}
	}
	return products, nil
}

func (m *MockProductRepository) Search(_ context.Context, q string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q = strings.ToLower(q)
	products := []models.Product{}
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.ModelName), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			anyTagContains(p.Tags, q) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *MockProductRepository) Update(_ context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.ModelName != nil {
		product.ModelName = *patch.ModelName
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Discount != nil {
		product.Discount = *patch.Discount
	}
	if patch.SpecialDiscount != nil {
		product.SpecialDiscount = *patch.SpecialDiscount
	}
	if patch.FinalPrice != nil {
		product.FinalPrice = *patch.FinalPrice
	}
	if patch.FinalSpecialPrice != nil {
		product.FinalSpecialPrice = *patch.FinalSpecialPrice
	}
	if patch.StockCount != nil {
		product.StockCount = *patch.StockCount
	}
	if patch.AvailableSizes != nil {
		product.AvailableSizes = *patch.AvailableSizes
	}
	if patch.Tags != nil {
		product.Tags = patch.Tags
	}
	if patch.Hot != nil {
		product.Hot = *patch.Hot
	}
	if patch.Photos != nil {
		product.Photos = patch.Photos
	}
	m.products[id] = product
	return &product, nil
}

func (m *MockProductRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func anyTagContains(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
