package service

import (
	"context"

	"github.com/pos-labs/product-catalog-service/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (acknowledged bool, err error)
	DeleteProduct(ctx context.Context, id string) (acknowledged bool, err error)
}
