package repositories

import (
	"context"

	"luxemart/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	UpdateTokens(ctx context.Context, userID, token, refreshToken string) error
}
