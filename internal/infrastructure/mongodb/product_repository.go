package mongodb

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository reads the externally owned catalog collection. Nothing
// in this core writes to it.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection("products")}
}

type productDoc struct {
	ID     string   `bson:"_id"`
	Name   string   `bson:"name"`
	Price  string   `bson:"price"`
	Images []string `bson:"images"`
}

func (r *ProductRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("product repository: find: %w", err)
	}

	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return nil, fmt.Errorf("product repository: price %q: %w", doc.Price, err)
	}
	return &domain.Product{
		ID:     doc.ID,
		Name:   doc.Name,
		Price:  price,
		Images: doc.Images,
	}, nil
}
