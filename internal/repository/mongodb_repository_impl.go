package repository

import (
	"context"

	"github.com/pos-labs/product-catalog-service/internal/domain"
	"github.com/pos-labs/product-catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBProductRepositoryImpl struct {
	db         *mongo.Database
	collection string
}

func CreateNewMongoDBRepository(db *mongo.Database, collection string) MongoDBProductRepository {
	return &MongoDBProductRepositoryImpl{db: db, collection: collection}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(r.collection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(r.collection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

// ReplaceProduct reports whether the write was acknowledged, not whether it
// matched a document. A replace against an absent id still acknowledges.
func (r *MongoDBProductRepositoryImpl) ReplaceProduct(ctx context.Context, id primitive.ObjectID, data domain.Product) (acknowledged bool, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	data.ID = id
	_, err = r.db.Collection(r.collection).ReplaceOne(ctx, filter, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceProduct").Msg("")
		return false, err
	}

	return true, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (acknowledged bool, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection(r.collection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return false, err
	}

	return true, nil
}
