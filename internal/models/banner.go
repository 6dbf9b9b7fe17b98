package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Banner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Image     Photo              `json:"image" bson:"image"`
	IsActive  bool               `json:"isActive" bson:"is_active"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// BannerPatch: nil fields are left untouched.
type BannerPatch struct {
	Image    *Photo
	IsActive *bool
}
