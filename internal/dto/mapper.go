package dto

import (
	"github.com/pos-labs/product-catalog-service/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToProduct and ToProductResponse are pure field-for-field conversions
// between the wire shape and the stored document shape. Both directions
// round-trip losslessly for any valid input; a malformed id or price is a
// caller bug, not an error path. An empty id maps to the nil ObjectID so
// the database assigns one on insert.

func ToProduct(data ProductRequest) domain.Product {
	id, _ := primitive.ObjectIDFromHex(data.ID)
	price, _ := primitive.ParseDecimal128(data.Price.String())

	return domain.Product{
		ID:          id,
		Name:        data.Name,
		Price:       price,
		Category:    data.Category,
		Description: data.Description,
	}
}

func ToProductResponse(data domain.Product) ProductResponse {
	price, _ := decimal.NewFromString(data.Price.String())

	return ProductResponse{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Price:       price,
		Category:    data.Category,
		Description: data.Description,
	}
}
