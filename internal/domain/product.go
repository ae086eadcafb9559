package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product mirrors the stored document. Price is kept as Decimal128 so
// monetary values never pass through binary floating point.
type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Price       primitive.Decimal128 `bson:"price" json:"price"`
	Category    string               `bson:"category" json:"category"`
	Description string               `bson:"description" json:"description"`
}
