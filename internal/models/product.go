package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is a stored reference to an uploaded image.
type Photo struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"public_id" bson:"public_id"`
}

type Product struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ModelName         string             `json:"modelName" bson:"model_name" validate:"required"`
	Description       string             `json:"description" bson:"description"`
	Price             float64            `json:"price" bson:"price" validate:"required,gt=0"`
	Discount          float64            `json:"discount" bson:"discount" validate:"gte=0,lte=100"`
	SpecialDiscount   float64            `json:"specialDiscount" bson:"special_discount" validate:"gte=0,lte=100"`
	FinalPrice        float64            `json:"finalPrice" bson:"final_price"`
	FinalSpecialPrice float64            `json:"finalSpecialPrice" bson:"final_special_price"`
	Hot               bool               `json:"Hot" bson:"hot"`
	StockCount        int                `json:"stockCount" bson:"stock_count" validate:"gte=0"`
	Tags              []string           `json:"tags" bson:"tags"`
	Photos            []Photo            `json:"photos" bson:"photos"`
	AvailableSizes    string             `json:"availableSizes" bson:"available_sizes"`
	CreatedBy         string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
}

// ProductInput is the JSON payload carried in the "data" form value of the
// multipart create request. Photos arrive as separate file parts.
type ProductInput struct {
	ModelName       string   `json:"modelName" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Discount        float64  `json:"discount" validate:"gte=0,lte=100"`
	SpecialDiscount float64  `json:"specialDiscount" validate:"gte=0,lte=100"`
	StockCount      int      `json:"stockCount" validate:"gte=0"`
	Tags            []string `json:"tags"`
	AvailableSizes  string   `json:"availableSizes"`
	Hot             bool     `json:"Hot"`
}

// ProductUpdate is the partial-update payload. Nil means "leave untouched".
type ProductUpdate struct {
	ModelName       *string  `json:"modelName,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Discount        *float64 `json:"discount,omitempty"`
	SpecialDiscount *float64 `json:"specialDiscount,omitempty"`
	StockCount      *int     `json:"stockCount,omitempty"`
	AvailableSizes  *string  `json:"availableSizes,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Hot             *bool    `json:"Hot,omitempty"`
	ExistingPhotos  []Photo  `json:"existingPhotos,omitempty"`
}

// ProductPatch is what the write path hands to the repository after the
// pipeline (photo merge, pricing) has run. Only non-nil fields are written.
type ProductPatch struct {
	ModelName         *string
	Description       *string
	Price             *float64
	Discount          *float64
	SpecialDiscount   *float64
	FinalPrice        *float64
	FinalSpecialPrice *float64
	StockCount        *int
	AvailableSizes    *string
	Tags              []string
	Hot               *bool
	Photos            []Photo
}
