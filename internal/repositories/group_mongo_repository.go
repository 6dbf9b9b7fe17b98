package repositories

import (
	"context"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoGroupRepository struct {
	collection *mongo.Collection
}

func NewMongoGroupRepository(collection *mongo.Collection) *MongoGroupRepository {
	return &MongoGroupRepository{collection: collection}
}

func (r *MongoGroupRepository) Create(ctx context.Context, group *models.ProductGroup) error {
	_, err := r.collection.InsertOne(ctx, group)
	return err
}

func (r *MongoGroupRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductGroup, error) {
	var group models.ProductGroup
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *MongoGroupRepository) List(ctx context.Context) ([]models.ProductGroup, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoGroupRepository) FindByTag(ctx context.Context, tag string) ([]models.ProductGroup, error) {
	return r.findMany(ctx, bson.M{"tags": tag})
}

func (r *MongoGroupRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.GroupPatch) (*models.ProductGroup, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	if patch.Products != nil {
		set["products"] = patch.Products
	}
	if patch.Photo != nil {
		set["photo"] = *patch.Photo
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
	return r.GetByID(ctx, id)
}

func (r *MongoGroupRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoGroupRepository) findMany(ctx context.Context, filter bson.M) ([]models.ProductGroup, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.ProductGroup{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
