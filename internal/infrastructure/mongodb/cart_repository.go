package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IDGenerator interface {
	NewID() string
}

type CartRepository struct {
	coll  *mongo.Collection
	idGen IDGenerator
}

func NewCartRepository(db *mongo.Database, idGen IDGenerator) *CartRepository {
	return &CartRepository{
		coll:  db.Collection("carts"),
		idGen: idGen,
	}
}

type cartDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user"`
	Status      string    `bson:"status"`
	Lines       []lineDoc `bson:"products"`
	TotalAmount string    `bson:"total_amount"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type lineDoc struct {
	ProductID string `bson:"product"`
	Quantity  int    `bson:"quantity"`
}

// FindOrCreateActiveByUser relies on a single atomic find-and-update with
// upsert, so two concurrent first adds for the same user cannot create two
// active carts.
func (r *CartRepository) FindOrCreateActiveByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("cart repository: user id is required")
	}

	now := time.Now().UTC()
	filter := bson.M{"user": userID, "status": string(domain.StatusActive)}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":          r.idGen.NewID(),
			"user":         userID,
			"status":       string(domain.StatusActive),
			"products":     []lineDoc{},
			"total_amount": decimal.Zero.String(),
			"created_at":   now,
		},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc cartDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cart repository: find or create: %w", err)
	}
	return cartFromDoc(doc)
}

func (r *CartRepository) FindActiveByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return r.findOne(ctx, bson.M{"user": userID, "status": string(domain.StatusActive)})
}

func (r *CartRepository) FindAnyByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *CartRepository) Save(ctx context.Context, c *domain.Cart) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("cart repository: id is required")
	}

	doc := cartToDoc(c)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, doc, opts); err != nil {
		return fmt.Errorf("cart repository: save: %w", err)
	}
	return nil
}

func (r *CartRepository) findOne(ctx context.Context, filter bson.M) (*domain.Cart, error) {
	var doc cartDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cart repository: find: %w", err)
	}
	return cartFromDoc(doc)
}

func cartToDoc(c *domain.Cart) cartDoc {
	lines := make([]lineDoc, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, lineDoc{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return cartDoc{
		ID:          c.ID,
		UserID:      c.UserID,
		Status:      string(c.Status),
		Lines:       lines,
		TotalAmount: c.TotalAmount.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func cartFromDoc(doc cartDoc) (*domain.Cart, error) {
	total, err := decimal.NewFromString(doc.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("cart repository: total amount %q: %w", doc.TotalAmount, err)
	}
	lines := make([]domain.Line, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, domain.Line{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return &domain.Cart{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Status:      domain.Status(doc.Status),
		Lines:       lines,
		TotalAmount: total,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}
