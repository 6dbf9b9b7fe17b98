package repositories

import (
	"context"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.ProductGroup) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductGroup, error)
	List(ctx context.Context) ([]models.ProductGroup, error)
	FindByTag(ctx context.Context, tag string) ([]models.ProductGroup, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.GroupPatch) (*models.ProductGroup, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
