package services

import (
	"context"
	"io"
	"time"

	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/uploader"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const bannerImageFolder = "banners"

type BannerService struct {
	banners  repositories.BannerRepository
	uploader uploader.Uploader
}

func NewBannerService(banners repositories.BannerRepository, up uploader.Uploader) *BannerService {
	return &BannerService{banners: banners, uploader: up}
}

func (s *BannerService) Create(ctx context.Context, image io.Reader) (*models.Banner, error) {
	if image == nil {
		return nil, validationErrorf("banner image is required")
	}
	uploaded, err := s.uploader.Upload(ctx, image, bannerImageFolder)
	if err != nil {
		return nil, err
	}

	banner := &models.Banner{
		ID:        primitive.NewObjectID(),
		Image:     uploaded,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	return s.banners.ListActive(ctx)
}

// Update replaces the image when a new one is supplied and/or toggles
// isActive; a nil image leaves the stored image untouched.
func (s *BannerService) Update(ctx context.Context, id string, isActive *bool, image io.Reader) (*models.Banner, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	patch := models.BannerPatch{IsActive: isActive}
	if image != nil {
		uploaded, err := s.uploader.Upload(ctx, image, bannerImageFolder)
		if err != nil {
			return nil, err
		}
		patch.Image = &uploaded
	}
	return s.banners.Update(ctx, oid, patch)
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.banners.Delete(ctx, oid)
}
