package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

const collectionClients = "clients"

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}

	out := []domain.Client{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// MarkPaid updates the payment fields atomically and returns the new document.
func (r *ClientRepository) MarkPaid(ctx context.Context, id string, at time.Time) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment_status":    domain.PaymentPaid,
		"last_payment_date": at.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.Client
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("mark client paid: %w", err)
	}
	return &c, nil
}
