package repositories

import (
	"context"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	// ListActive returns only banners with isActive set, newest first.
	ListActive(ctx context.Context) ([]models.Banner, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
