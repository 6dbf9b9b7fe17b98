package repositories

import (
	"context"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBannerRepository struct {
	collection *mongo.Collection
}

func NewMongoBannerRepository(collection *mongo.Collection) *MongoBannerRepository {
	return &MongoBannerRepository{collection: collection}
}

func (r *MongoBannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	_, err := r.collection.InsertOne(ctx, banner)
	return err
}

func (r *MongoBannerRepository) ListActive(ctx context.Context) ([]models.Banner, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.collection.Find(ctx, bson.M{"is_active": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	banners := []models.Banner{}
	if err := cur.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *MongoBannerRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error) {
	set := bson.M{}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}

	if len(set) > 0 {
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}

	var banner models.Banner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *MongoBannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
