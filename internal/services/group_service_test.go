package services_test

import (
	"context"
	"strings"
	"testing"

	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newGroupService() (*services.GroupService, *repositories.MockGroupRepository, *repositories.MockProductRepository) {
	groups := repositories.NewMockGroupRepository()
	products := repositories.NewMockProductRepository()
	return services.NewGroupService(groups, products, &fakeUploader{}), groups, products
}

func seedProduct(t *testing.T, products *repositories.MockProductRepository, name string) models.Product {
	t.Helper()
	p := models.Product{ID: primitive.NewObjectID(), ModelName: name, Price: 10}
	require.NoError(t, products.Create(context.Background(), &p))
	return p
}

func TestGroupService_Create_FiltersUnresolvableMembers(t *testing.T) {
	service, _, products := newGroupService()

	p1 := seedProduct(t, products, "A")
	p2 := seedProduct(t, products, "B")

	group, err := service.Create(context.Background(), "admin-1", "Men's Collection",
		[]string{"Watches"},
		[]string{
			p1.ID.Hex(),
			primitive.NewObjectID().Hex(), // nonexistent, silently dropped
			p2.ID.Hex(),
			"not-an-id", // malformed, silently dropped
		},
		strings.NewReader("cover"))

	require.NoError(t, err)
	assert.ElementsMatch(t, []primitive.ObjectID{p1.ID, p2.ID}, group.Products)
	assert.Equal(t, "productGroups/cover", group.Photo.PublicID)
	assert.Equal(t, "admin-1", group.CreatedBy)
}

func TestGroupService_Create_Validation(t *testing.T) {
	service, _, _ := newGroupService()

	_, err := service.Create(context.Background(), "", "", nil, nil, strings.NewReader("cover"))
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Create(context.Background(), "", "G", nil, nil, nil)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Create(context.Background(), "", "G", []string{"Hat"}, nil, strings.NewReader("cover"))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestGroupService_Update_Membership(t *testing.T) {
	service, _, products := newGroupService()

	p1 := seedProduct(t, products, "A")
	p2 := seedProduct(t, products, "B")

	group, err := service.Create(context.Background(), "", "G", nil,
		[]string{p1.ID.Hex()}, strings.NewReader("cover"))
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), group.ID.Hex(), models.GroupUpdate{
		ProductIDs: []string{p2.ID.Hex(), primitive.NewObjectID().Hex()},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{p2.ID}, updated.Products)
	// Photo untouched.
	assert.Equal(t, "productGroups/cover", updated.Photo.PublicID)
}

func TestGroupService_Update_PhotoKeepOrReplace(t *testing.T) {
	service, _, _ := newGroupService()

	group, err := service.Create(context.Background(), "", "G", nil, nil, strings.NewReader("old"))
	require.NoError(t, err)

	// Keep the existing photo explicitly.
	updated, err := service.Update(context.Background(), group.ID.Hex(), models.GroupUpdate{
		ExistingPhoto: &group.Photo,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, group.Photo, updated.Photo)

	// Replace with a new upload.
	updated, err = service.Update(context.Background(), group.ID.Hex(), models.GroupUpdate{}, strings.NewReader("new"))
	require.NoError(t, err)
	assert.Equal(t, "productGroups/new", updated.Photo.PublicID)
}

func TestGroupService_Get_ResolvesDanglingMembers(t *testing.T) {
	service, _, products := newGroupService()

	p1 := seedProduct(t, products, "A")
	p2 := seedProduct(t, products, "B")

	group, err := service.Create(context.Background(), "", "G", nil,
		[]string{p1.ID.Hex(), p2.ID.Hex()}, strings.NewReader("cover"))
	require.NoError(t, err)

	require.NoError(t, products.Delete(context.Background(), p1.ID))

	view, err := service.Get(context.Background(), group.ID.Hex())
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "B", view.Products[0].ModelName)
}

func TestGroupService_ByTag(t *testing.T) {
	service, _, _ := newGroupService()

	_, err := service.Create(context.Background(), "", "Wrist", []string{"Watches"}, nil, strings.NewReader("a"))
	require.NoError(t, err)

	views, err := service.ByTag(context.Background(), "Watches")
	require.NoError(t, err)
	assert.Len(t, views, 1)

	views, err = service.ByTag(context.Background(), "Shoes")
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = service.ByTag(context.Background(), "Hat")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestGroupService_TagsAndImages(t *testing.T) {
	service, _, _ := newGroupService()

	assert.Len(t, service.Tags(), 8)
	assert.Contains(t, service.Tags(), "Belt & Wallet")

	_, err := service.Create(context.Background(), "", "G1", nil, nil, strings.NewReader("one"))
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "", "G2", nil, nil, strings.NewReader("two"))
	require.NoError(t, err)

	images, err := service.Images(context.Background())
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestGroupService_Delete(t *testing.T) {
	service, _, _ := newGroupService()

	group, err := service.Create(context.Background(), "", "G", nil, nil, strings.NewReader("a"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), group.ID.Hex()))
	assert.ErrorIs(t, service.Delete(context.Background(), group.ID.Hex()), repositories.ErrNotFound)
}
