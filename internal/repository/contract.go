package repository

import (
	"context"

	"github.com/pos-labs/product-catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoDBProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	ReplaceProduct(ctx context.Context, id primitive.ObjectID, data domain.Product) (acknowledged bool, err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (acknowledged bool, err error)
}
