package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

const collectionMedia = "media"

type MediaRepository struct {
	col *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{col: db.Collection(collectionMedia)}
}

// List returns media ordered by upload date. When clientID is non-empty only
// that client's media are returned.
func (r *MediaRepository) List(ctx context.Context, clientID string) ([]domain.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "upload_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}

	out := []domain.Media{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode media: %w", err)
	}
	return out, nil
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.Media) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}
