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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const groupPhotoFolder = "productGroups"

// GroupService owns product-group writes and reads. Membership is resolved
// against live products on every write, and again on every read so that ids
// left dangling by a product delete never surface.
type GroupService struct {
	groups   repositories.GroupRepository
	products repositories.ProductRepository
	uploader uploader.Uploader
}

func NewGroupService(groups repositories.GroupRepository, products repositories.ProductRepository, up uploader.Uploader) *GroupService {
	return &GroupService{groups: groups, products: products, uploader: up}
}

func (s *GroupService) Create(ctx context.Context, createdBy, name string, tags []string, productIDs []string, photo io.Reader) (*models.ProductGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("group name is required")
	}
	if err := catalog.ValidateTags(tags); err != nil {
		return nil, validationErrorf("%v", err)
	}
	if photo == nil {
		return nil, validationErrorf("group photo is required")
	}

	members, err := s.resolveMembers(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.Upload(ctx, photo, groupPhotoFolder)
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []string{}
	}
	group := &models.ProductGroup{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Photo:     uploaded,
		Tags:      tags,
		Products:  members,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) Update(ctx context.Context, id string, upd models.GroupUpdate, photo io.Reader) (*models.ProductGroup, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, validationErrorf("group name cannot be empty")
	}
	if upd.Tags != nil {
		if err := catalog.ValidateTags(upd.Tags); err != nil {
			return nil, validationErrorf("%v", err)
		}
	}

	patch := models.GroupPatch{
		Name: upd.Name,
		Tags: upd.Tags,
	}
	if upd.ProductIDs != nil {
		members, err := s.resolveMembers(ctx, upd.ProductIDs)
		if err != nil {
			return nil, err
		}
		patch.Products = members
	}

	// Keep the supplied existing photo, or replace it with a fresh upload.
	// A new upload wins when both are present.
	if upd.ExistingPhoto != nil && upd.ExistingPhoto.URL != "" && upd.ExistingPhoto.PublicID != "" {
		patch.Photo = upd.ExistingPhoto
	}
	if photo != nil {
		uploaded, err := s.uploader.Upload(ctx, photo, groupPhotoFolder)
		if err != nil {
			return nil, err
		}
		patch.Photo = &uploaded
	}

	return s.groups.Update(ctx, oid, patch)
}

// resolveMembers filters the requested ids down to products that exist.
// Malformed and unresolvable ids are silently dropped; the stored order is
// the lookup result's order.
func (s *GroupService) resolveMembers(ctx context.Context, productIDs []string) ([]primitive.ObjectID, error) {
	requested := make([]primitive.ObjectID, 0, len(productIDs))
	for _, id := range productIDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			requested = append(requested, oid)
		}
	}

	members := []primitive.ObjectID{}
	if len(requested) > 0 {
		resolved, err := s.products.FindByIDs(ctx, requested)
		if err != nil {
			return nil, err
		}
		for _, p := range resolved {
			members = append(members, p.ID)
		}
	}
	return members, nil
}

func (s *GroupService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.groups.Delete(ctx, oid)
}

func (s *GroupService) Get(ctx context.Context, id string) (*models.GroupView, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	group, err := s.groups.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, group)
}

func (s *GroupService) List(ctx context.Context) ([]models.GroupView, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, groups)
}

func (s *GroupService) ByTag(ctx context.Context, tag string) ([]models.GroupView, error) {
	if !catalog.IsAllowedTag(tag) {
		return nil, validationErrorf("invalid tag. Allowed tags: %s", strings.Join(catalog.ProductTags, ", "))
	}
	groups, err := s.groups.FindByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, groups)
}

// Tags returns the fixed enumeration.
func (s *GroupService) Tags() []string {
	return catalog.ProductTags
}

// Images returns just the photo of every group.
func (s *GroupService) Images(ctx context.Context) ([]models.Photo, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	images := []models.Photo{}
	for _, g := range groups {
		images = append(images, g.Photo)
	}
	return images, nil
}

func (s *GroupService) view(ctx context.Context, group *models.ProductGroup) (*models.GroupView, error) {
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

func (s *GroupService) views(ctx context.Context, groups []models.ProductGroup) ([]models.GroupView, error) {
	views := []models.GroupView{}
	for i := range groups {
		v, err := s.view(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}
