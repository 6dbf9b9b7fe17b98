package catalog

import (
	"fmt"

	"luxemart/internal/models"
)

// MaxPhotos is the ceiling on photos per product, counted across kept and
// newly uploaded entries together.
const MaxPhotos = 5

// FilterValidPhotos drops keep-list entries missing either field.
func FilterValidPhotos(photos []models.Photo) []models.Photo {
	kept := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		if p.URL != "" && p.PublicID != "" {
			kept = append(kept, p)
		}
	}
	return kept
}

// CheckPhotoBudget rejects an update before any upload is attempted when the
// kept photos plus the pending uploads would exceed the ceiling.
func CheckPhotoBudget(kept, pendingUploads int) error {
	if kept+pendingUploads > MaxPhotos {
		return fmt.Errorf("you can have up to %d photos in total", MaxPhotos)
	}
	return nil
}

// MergePhotos concatenates kept existing photos with newly uploaded ones,
// existing first, order preserved on both sides.
func MergePhotos(existing, uploaded []models.Photo) []models.Photo {
	merged := make([]models.Photo, 0, len(existing)+len(uploaded))
	merged = append(merged, existing...)
	merged = append(merged, uploaded...)
	return merged
}
