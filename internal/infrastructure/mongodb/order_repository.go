package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

type orderDoc struct {
	ID              string    `bson:"_id"`
	ExternalOrderID string    `bson:"external_order_id"`
	UserID          string    `bson:"user"`
	PaymentStatus   string    `bson:"payment_status"`
	Items           []itemDoc `bson:"items"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

type itemDoc struct {
	ProductID string `bson:"product"`
	Quantity  int    `bson:"quantity"`
}

func (r *OrderRepository) FindByExternalID(ctx context.Context, externalOrderID string) (*domain.Order, error) {
	if externalOrderID == "" {
		return nil, domain.ErrNotFound
	}

	var doc orderDoc
	err := r.coll.FindOne(ctx, bson.M{"external_order_id": externalOrderID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("order repository: find: %w", err)
	}
	return orderFromDoc(doc), nil
}

func (r *OrderRepository) Save(ctx context.Context, ord *domain.Order) error {
	if ord == nil || ord.ID == "" {
		return fmt.Errorf("order repository: id is required")
	}

	doc := orderToDoc(ord)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ord.ID}, doc, opts); err != nil {
		return fmt.Errorf("order repository: save: %w", err)
	}
	return nil
}

func orderToDoc(o *domain.Order) orderDoc {
	items := make([]itemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemDoc{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return orderDoc{
		ID:              o.ID,
		ExternalOrderID: o.ExternalOrderID,
		UserID:          o.UserID,
		PaymentStatus:   string(o.PaymentStatus),
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func orderFromDoc(doc orderDoc) *domain.Order {
	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, domain.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &domain.Order{
		ID:              doc.ID,
		ExternalOrderID: doc.ExternalOrderID,
		UserID:          doc.UserID,
		PaymentStatus:   domain.PaymentStatus(doc.PaymentStatus),
		Items:           items,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
