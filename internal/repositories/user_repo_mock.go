package repositories

import (
	"context"
	"sync"
	"time"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User // keyed by email
	mu    sync.RWMutex
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]models.User)}
}

func (m *MockUserRepository) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[*user.Email] = *user
	return nil
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *MockUserRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.users[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *MockUserRepository) UpdateTokens(_ context.Context, userID, token, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, user := range m.users {
		if user.UserID == userID {
			user.Token = &token
			user.RefreshToken = &refreshToken
			user.UpdatedAt = time.Now()
			m.users[email] = user
			return nil
		}
	}
	return ErrNotFound
}
