package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUploader records uploads and mints deterministic photo references.
type fakeUploader struct {
	mu      sync.Mutex
	uploads int
	failAt  int // 1-based upload index that fails; 0 = never
}

func (f *fakeUploader) Upload(_ context.Context, r io.Reader, folder string) (models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.failAt != 0 && f.uploads >= f.failAt {
		return models.Photo{}, errors.New("gateway unavailable")
	}
	body, _ := io.ReadAll(r)
	name := string(body)
	return models.Photo{
		URL:      fmt.Sprintf("https://cdn.example.com/%s/%s", folder, name),
		PublicID: fmt.Sprintf("%s/%s", folder, name),
	}, nil
}

func readers(names ...string) []io.Reader {
	rs := make([]io.Reader, len(names))
	for i, n := range names {
		rs[i] = strings.NewReader(n)
	}
	return rs
}

func newProductService() (*services.ProductService, *repositories.MockProductRepository, *repositories.MockGroupRepository, *fakeUploader) {
	products := repositories.NewMockProductRepository()
	groups := repositories.NewMockGroupRepository()
	up := &fakeUploader{}
	return services.NewProductService(products, groups, up), products, groups, up
}

func TestProductService_Create(t *testing.T) {
	service, _, _, up := newProductService()

	product, err := service.Create(context.Background(), "admin-1", models.ProductInput{
		ModelName:       "Aviator Classic",
		Price:           1000,
		Discount:        10,
		SpecialDiscount: 0,
		Tags:            []string{"Sunglasses"},
	}, readers("a", "b"))

	require.NoError(t, err)
	assert.Equal(t, 900.0, product.FinalPrice)
	assert.Equal(t, 1000.0, product.FinalSpecialPrice)
	assert.Len(t, product.Photos, 2)
	assert.Equal(t, 2, up.uploads)
	assert.Equal(t, "free size", product.AvailableSizes)
	assert.Equal(t, "admin-1", product.CreatedBy)
	assert.False(t, product.ID.IsZero())
}

func TestProductService_Create_UploadOrderPreserved(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{
		ModelName: "Chrono X", Price: 250,
	}, readers("first", "second", "third"))

	require.NoError(t, err)
	require.Len(t, product.Photos, 3)
	assert.Equal(t, "products/first", product.Photos[0].PublicID)
	assert.Equal(t, "products/second", product.Photos[1].PublicID)
	assert.Equal(t, "products/third", product.Photos[2].PublicID)
}

func TestProductService_Create_RequiresPhotos(t *testing.T) {
	service, _, _, up := newProductService()

	_, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10}, nil)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a", "b", "c", "d", "e", "f"))
	assert.ErrorIs(t, err, services.ErrValidation)

	// Rejections happen before any upload is attempted.
	assert.Equal(t, 0, up.uploads)
}

func TestProductService_Create_InvalidTags(t *testing.T) {
	service, _, _, up := newProductService()

	_, err := service.Create(context.Background(), "", models.ProductInput{
		ModelName: "X", Price: 10, Tags: []string{"Hat"},
	}, readers("a"))
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Create(context.Background(), "", models.ProductInput{
		ModelName: "X", Price: 10,
		Tags: []string{"Watches", "Perfume", "Belt & Wallet", "Sunglasses", "Shoes", "Formal Shoes"},
	}, readers("a"))
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, 0, up.uploads)
}

func TestProductService_Create_MissingRequiredFields(t *testing.T) {
	service, _, _, _ := newProductService()

	_, err := service.Create(context.Background(), "", models.ProductInput{Price: 10}, readers("a"))
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Create(context.Background(), "", models.ProductInput{ModelName: "X"}, readers("a"))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProductService_Create_UploadFailureFailsWhole(t *testing.T) {
	products := repositories.NewMockProductRepository()
	service := services.NewProductService(products, repositories.NewMockGroupRepository(), &fakeUploader{failAt: 2})

	_, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a", "b", "c"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrValidation)

	// Nothing persisted.
	list, err := products.List(context.Background(), "", 20)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductService_Update_PhotoMerge(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a", "b", "c"))
	require.NoError(t, err)

	// Keep two of the three, add two new: 4 total, within the ceiling.
	keep := []models.Photo{product.Photos[0], product.Photos[2]}
	updated, err := service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		ExistingPhotos: keep,
	}, readers("d", "e"))
	require.NoError(t, err)

	require.Len(t, updated.Photos, 4)
	assert.Equal(t, "products/a", updated.Photos[0].PublicID)
	assert.Equal(t, "products/c", updated.Photos[1].PublicID)
	assert.Equal(t, "products/d", updated.Photos[2].PublicID)
	assert.Equal(t, "products/e", updated.Photos[3].PublicID)
}

func TestProductService_Update_PhotoCeiling(t *testing.T) {
	service, _, _, up := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a", "b", "c"))
	require.NoError(t, err)
	uploadsAfterCreate := up.uploads

	_, err = service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		ExistingPhotos: product.Photos,
	}, readers("d", "e", "f"))
	assert.ErrorIs(t, err, services.ErrValidation)
	// Rejected before the new files were uploaded.
	assert.Equal(t, uploadsAfterCreate, up.uploads)

	// Photos unchanged.
	got, err := service.Get(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, got.Photos, 3)
}

func TestProductService_Update_InvalidKeepEntriesDropped(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a"))
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		ExistingPhotos: []models.Photo{
			product.Photos[0],
			{URL: "https://cdn.example.com/orphan"}, // no public_id, dropped
		},
	}, readers("b"))
	require.NoError(t, err)
	require.Len(t, updated.Photos, 2)
	assert.Equal(t, "products/a", updated.Photos[0].PublicID)
	assert.Equal(t, "products/b", updated.Photos[1].PublicID)
}

func TestProductService_Update_NoPhotosLeavesPhotosUntouched(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a", "b"))
	require.NoError(t, err)

	stock := 7
	updated, err := service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		StockCount: &stock,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StockCount)
	assert.Len(t, updated.Photos, 2)
}

func TestProductService_Update_PricingRecomputed(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{
		ModelName: "X", Price: 1000, Discount: 10,
	}, readers("a"))
	require.NoError(t, err)
	require.Equal(t, 900.0, product.FinalPrice)

	// Change only the discount: finalPrice follows the stored price.
	discount := 50.0
	updated, err := service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		Discount: &discount,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.FinalPrice)
	assert.Equal(t, 1000.0, updated.FinalSpecialPrice)

	// Change only the price: both derived fields follow.
	price := 200.0
	updated, err = service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{
		Price: &price,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.FinalPrice)
	assert.Equal(t, 200.0, updated.FinalSpecialPrice)
}

func TestProductService_Update_NotFound(t *testing.T) {
	service, _, _, _ := newProductService()

	_, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), models.ProductUpdate{}, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductService_Update_FieldRanges(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a"))
	require.NoError(t, err)

	bad := -5.0
	_, err = service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{Price: &bad}, nil)
	assert.ErrorIs(t, err, services.ErrValidation)

	over := 150.0
	_, err = service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{Discount: &over}, nil)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Update(context.Background(), product.ID.Hex(), models.ProductUpdate{Tags: []string{"Hat"}}, nil)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProductService_Delete(t *testing.T) {
	service, _, _, _ := newProductService()

	product, err := service.Create(context.Background(), "", models.ProductInput{ModelName: "X", Price: 10},
		readers("a"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), product.ID.Hex()))
	assert.ErrorIs(t, service.Delete(context.Background(), product.ID.Hex()), repositories.ErrNotFound)

	_, err = service.Get(context.Background(), product.ID.Hex())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductService_List(t *testing.T) {
	service, products, _, _ := newProductService()

	base := time.Now()
	for i := 0; i < 3; i++ {
		p := models.Product{
			ID:             primitive.NewObjectID(),
			ModelName:      fmt.Sprintf("Model %d", i),
			Price:          100,
			AvailableSizes: "free size",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, products.Create(context.Background(), &p))
	}

	list, err := service.List(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "Model 2", list[0].ModelName)
	assert.Equal(t, "Model 1", list[1].ModelName)

	// Size filter with no matches is an empty success.
	list, err = service.List(context.Background(), "XL", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductService_ByTag(t *testing.T) {
	service, _, _, _ := newProductService()

	_, err := service.Create(context.Background(), "", models.ProductInput{
		ModelName: "Aviator", Price: 100, Tags: []string{"Sunglasses"},
	}, readers("a"))
	require.NoError(t, err)

	found, err := service.ByTag(context.Background(), "Sunglasses")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// Valid tag, zero matches: empty result, not an error.
	found, err = service.ByTag(context.Background(), "Perfume")
	require.NoError(t, err)
	assert.Empty(t, found)

	// Tag outside the enumeration: validation error before querying.
	_, err = service.ByTag(context.Background(), "Hat")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProductService_Search(t *testing.T) {
	service, _, _, _ := newProductService()

	_, err := service.Create(context.Background(), "", models.ProductInput{
		ModelName: "Royal Watch", Price: 100,
	}, readers("a"))
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "", models.ProductInput{
		ModelName: "Leather Belt", Description: "Brown belt with watch-style buckle", Price: 50,
	}, readers("b"))
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "", models.ProductInput{
		ModelName: "Classic Frame", Price: 80, Tags: []string{"Watches"},
	}, readers("c"))
	require.NoError(t, err)

	// Case-insensitive, OR-ed across modelName, description and tags.
	found, err := service.Search(context.Background(), "watch")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = service.Search(context.Background(), "perfume")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = service.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProductService_ByGroup(t *testing.T) {
	service, products, groups, _ := newProductService()

	p1 := models.Product{ID: primitive.NewObjectID(), ModelName: "A", Price: 1}
	p2 := models.Product{ID: primitive.NewObjectID(), ModelName: "B", Price: 2}
	require.NoError(t, products.Create(context.Background(), &p1))
	require.NoError(t, products.Create(context.Background(), &p2))

	group := models.ProductGroup{
		ID:       primitive.NewObjectID(),
		Name:     "Wrist Picks",
		Products: []primitive.ObjectID{p1.ID, p2.ID},
	}
	require.NoError(t, groups.Create(context.Background(), &group))

	view, err := service.ByGroup(context.Background(), group.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Wrist Picks", view.Name)
	assert.Len(t, view.Products, 2)

	// A deleted member disappears from the view without an error.
	require.NoError(t, products.Delete(context.Background(), p1.ID))
	view, err = service.ByGroup(context.Background(), group.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, view.Products, 1)
	assert.Equal(t, "B", view.Products[0].ModelName)

	// Missing group is a not-found outcome, distinct from an empty group.
	_, err = service.ByGroup(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	empty := models.ProductGroup{ID: primitive.NewObjectID(), Name: "Empty"}
	require.NoError(t, groups.Create(context.Background(), &empty))
	view, err = service.ByGroup(context.Background(), empty.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, view.Products)
}
