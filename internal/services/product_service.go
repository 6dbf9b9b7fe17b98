package services

import (
	"context"
	"io"
	"strings"
	"time"

	"luxemart/internal/catalog"
	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/uploader"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultListLimit      = 20
	productPhotoFolder    = "products"
	defaultAvailableSizes = "free size"
)

// ProductService owns the product write pipeline (validate, upload, price,
// persist) and the product query surface.
type ProductService struct {
	products repositories.ProductRepository
	groups   repositories.GroupRepository
	uploader uploader.Uploader
	validate *validator.Validate
}

func NewProductService(products repositories.ProductRepository, groups repositories.GroupRepository, up uploader.Uploader) *ProductService {
	return &ProductService{
		products: products,
		groups:   groups,
		uploader: up,
		validate: validator.New(),
	}
}

// Create runs the full create pipeline. All validation happens before any
// upload is attempted; between 1 and 5 images are required.
func (s *ProductService) Create(ctx context.Context, createdBy string, in models.ProductInput, images []io.Reader) (*models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("model name and price are required: %v", err)
	}
	if err := catalog.ValidateTags(in.Tags); err != nil {
		return nil, validationErrorf("%v", err)
	}
	if len(images) == 0 {
		return nil, validationErrorf("at least one product photo is required")
	}
	if len(images) > catalog.MaxPhotos {
		return nil, validationErrorf("you can upload up to %d photos only", catalog.MaxPhotos)
	}

	photos, err := uploadAll(ctx, s.uploader, images, productPhotoFolder)
	if err != nil {
		return nil, err
	}

	finalPrice, finalSpecialPrice := catalog.ApplyPricing(in.Price, in.Discount, in.SpecialDiscount)

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	sizes := in.AvailableSizes
	if sizes == "" {
		sizes = defaultAvailableSizes
	}

	product := &models.Product{
		ID:                primitive.NewObjectID(),
		ModelName:         in.ModelName,
		Description:       in.Description,
		Price:             in.Price,
		Discount:          in.Discount,
		SpecialDiscount:   in.SpecialDiscount,
		FinalPrice:        finalPrice,
		FinalSpecialPrice: finalSpecialPrice,
		Hot:               in.Hot,
		StockCount:        in.StockCount,
		Tags:              tags,
		Photos:            photos,
		AvailableSizes:    sizes,
		CreatedBy:         createdBy,
		CreatedAt:         time.Now(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update. Kept existing photos plus new uploads are
// merged under the photo ceiling; the derived prices are recomputed from the
// effective inputs before the document is written.
func (s *ProductService) Update(ctx context.Context, id string, upd models.ProductUpdate, images []io.Reader) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateUpdate(upd); err != nil {
		return nil, err
	}

	current, err := s.products.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	kept := catalog.FilterValidPhotos(upd.ExistingPhotos)
	if len(kept) > 0 || len(images) > 0 {
		// Whole update rejected before any upload happens.
		if err := catalog.CheckPhotoBudget(len(kept), len(images)); err != nil {
			return nil, validationErrorf("%v", err)
		}
	}
	if len(images) > 0 {
		uploaded, err := uploadAll(ctx, s.uploader, images, productPhotoFolder)
		if err != nil {
			return nil, err
		}
		kept = catalog.MergePhotos(kept, uploaded)
	}

	patch := models.ProductPatch{
		ModelName:       upd.ModelName,
		Description:     upd.Description,
		Price:           upd.Price,
		Discount:        upd.Discount,
		SpecialDiscount: upd.SpecialDiscount,
		StockCount:      upd.StockCount,
		AvailableSizes:  upd.AvailableSizes,
		Tags:            upd.Tags,
		Hot:             upd.Hot,
	}
	if len(kept) > 0 {
		patch.Photos = kept
	}

	// Derived prices follow the effective inputs, whether the input changed
	// in this request or was already stored.
	price := current.Price
	if upd.Price != nil {
		price = *upd.Price
	}
	discount := current.Discount
	if upd.Discount != nil {
		discount = *upd.Discount
	}
	specialDiscount := current.SpecialDiscount
	if upd.SpecialDiscount != nil {
		specialDiscount = *upd.SpecialDiscount
	}
	finalPrice, finalSpecialPrice := catalog.ApplyPricing(price, discount, specialDiscount)
	patch.FinalPrice = &finalPrice
	patch.FinalSpecialPrice = &finalSpecialPrice

	return s.products.Update(ctx, oid, patch)
}

func (s *ProductService) validateUpdate(upd models.ProductUpdate) error {
	if upd.ModelName != nil && strings.TrimSpace(*upd.ModelName) == "" {
		return validationErrorf("model name cannot be empty")
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return validationErrorf("price must be positive")
	}
	if upd.Discount != nil && (*upd.Discount < 0 || *upd.Discount > 100) {
		return validationErrorf("discount must be between 0 and 100")
	}
	if upd.SpecialDiscount != nil && (*upd.SpecialDiscount < 0 || *upd.SpecialDiscount > 100) {
		return validationErrorf("special discount must be between 0 and 100")
	}
	if upd.StockCount != nil && *upd.StockCount < 0 {
		return validationErrorf("stock count cannot be negative")
	}
	if upd.Tags != nil {
		if err := catalog.ValidateTags(upd.Tags); err != nil {
			return validationErrorf("%v", err)
		}
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.products.Delete(ctx, oid)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, oid)
}

func (s *ProductService) List(ctx context.Context, size string, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.products.List(ctx, size, limit)
}

// ByTag rejects tags outside the enumeration before querying; a valid tag
// with no products is an empty result, not an error.
func (s *ProductService) ByTag(ctx context.Context, tag string) ([]models.Product, error) {
	if !catalog.IsAllowedTag(tag) {
		return nil, validationErrorf("invalid tag. Allowed tags: %s", strings.Join(catalog.ProductTags, ", "))
	}
	return s.products.FindByTag(ctx, tag)
}

// ByGroup resolves the group first (missing group is a not-found outcome),
// then its membership. Ids whose product has since been deleted are dropped
// from the view.
func (s *ProductService) ByGroup(ctx context.Context, groupID string) (*models.GroupView, error) {
	oid, err := parseObjectID(groupID)
	if err != nil {
		return nil, err
	}
	group, err := s.groups.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindByIDs(ctx, group.Products)
	if err != nil {
		return nil, err
	}
	return &models.GroupView{
		ID:        group.ID,
		Name:      group.Name,
		Photo:     group.Photo,
		Tags:      group.Tags,
		Products:  products,
		CreatedAt: group.CreatedAt,
	}, nil
}

// Search matches q case-insensitively against modelName, description and
// tags. A blank query is a validation error, not an empty result.
func (s *ProductService) Search(ctx context.Context, q string) ([]models.Product, error) {
	if strings.TrimSpace(q) == "" {
		return nil, validationErrorf("search query (q) is required")
	}
	return s.products.Search(ctx, q)
}
