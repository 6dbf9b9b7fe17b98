package repositories

import (
	"context"
	"errors"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an id does not resolve to a document.
var ErrNotFound = errors.New("not found")

// ProductRepository abstracts product persistence so services can be tested
// against the in-memory implementation.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// List returns the summary projection, newest first, optionally filtered
	// by exact availableSizes match.
	List(ctx context.Context, size string, limit int64) ([]models.Product, error)
	// FindByIDs resolves an id list to the products that exist; ids that do
	// not resolve are silently absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	FindByTag(ctx context.Context, tag string) ([]models.Product, error)
	// Search matches q case-insensitively against modelName, description and
	// tags.
	Search(ctx context.Context, q string) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
