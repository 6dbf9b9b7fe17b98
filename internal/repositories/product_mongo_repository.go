package repositories

import (
	"context"

	"luxemart/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listProjection matches the summary fields the list endpoint exposes; the
// full document is available through GetByID.
var listProjection = bson.M{
	"model_name":          1,
	"price":               1,
	"final_price":         1,
	"final_special_price": 1,
	"discount":            1,
	"special_discount":    1,
	"stock_count":         1,
	"photos":              1,
	"created_at":          1,
	"hot":                 1,
	"available_sizes":     1,
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{collection: collection}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) List(ctx context.Context, size string, limit int64) ([]models.Product, error) {
	filter := bson.M{}
	if size != "" {
		filter["available_sizes"] = size
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit).
		SetProjection(listProjection)

	return r.findMany(ctx, filter, findOptions)
}

func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *MongoProductRepository) FindByTag(ctx context.Context, tag string) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{"tags": tag}, nil)
}

func (r *MongoProductRepository) Search(ctx context.Context, q string) ([]models.Product, error) {
	regex := bson.M{"$regex": q, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"model_name": regex},
		{"description": regex},
		{"tags": regex},
	}}
	return r.findMany(ctx, filter, nil)
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error) {
	set := bson.M{}
	if patch.ModelName != nil {
		set["model_name"] = *patch.ModelName
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Discount != nil {
		set["discount"] = *patch.Discount
	}
	if patch.SpecialDiscount != nil {
		set["special_discount"] = *patch.SpecialDiscount
	}
	if patch.FinalPrice != nil {
		set["final_price"] = *patch.FinalPrice
	}
	if patch.FinalSpecialPrice != nil {
		set["final_special_price"] = *patch.FinalSpecialPrice
	}
	if patch.StockCount != nil {
		set["stock_count"] = *patch.StockCount
	}
	if patch.AvailableSizes != nil {
		set["available_sizes"] = *patch.AvailableSizes
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	if patch.Hot != nil {
		set["hot"] = *patch.Hot
	}
	if patch.Photos != nil {
		set["photos"] = patch.Photos
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

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) findMany(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Product, error) {
	var opts []*options.FindOptions
	if findOptions != nil {
		opts = append(opts, findOptions)
	}
	cur, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
