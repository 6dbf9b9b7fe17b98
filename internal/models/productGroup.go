package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductGroup is a curated collection of products ("Men's Collection" etc).
// Membership is referential: ids are checked against existing products when
// written, and deleting a product does not rewrite the groups that mention it.
type ProductGroup struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name" validate:"required"`
	Photo     Photo                `json:"photo" bson:"photo"`
	Tags      []string             `json:"tags" bson:"tags"`
	Products  []primitive.ObjectID `json:"products" bson:"products"`
	CreatedBy string               `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time            `json:"createdAt" bson:"created_at"`
}

// GroupUpdate is the partial-update payload for a product group.
type GroupUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ProductIDs    []string `json:"productIds,omitempty"`
	ExistingPhoto *Photo   `json:"existingPhoto,omitempty"`
}

// GroupPatch mirrors ProductPatch for group writes.
type GroupPatch struct {
	Name     *string
	Tags     []string
	Products []primitive.ObjectID
	Photo    *Photo
}

// GroupView is a group with its membership resolved to live products.
type GroupView struct {
	ID        primitive.ObjectID `json:"groupId"`
	Name      string             `json:"groupName"`
	Photo     Photo              `json:"photo"`
	Tags      []string           `json:"tags"`
	Products  []Product          `json:"products"`
	CreatedAt time.Time          `json:"createdAt"`
}
