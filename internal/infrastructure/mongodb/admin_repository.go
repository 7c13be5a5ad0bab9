package mongodb

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/admin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection("admin_users")}
}

type adminDoc struct {
	Username string `bson:"_id"`
	Password string `bson:"password"`
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc adminDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("admin repository: find: %w", err)
	}
	return &domain.User{Username: doc.Username, Password: doc.Password}, nil
}

func (r *AdminRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil || user.Username == "" {
		return fmt.Errorf("admin repository: username is required")
	}

	doc := adminDoc{Username: user.Username, Password: user.Password}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.Username}, doc, opts); err != nil {
		return fmt.Errorf("admin repository: save: %w", err)
	}
	return nil
}
