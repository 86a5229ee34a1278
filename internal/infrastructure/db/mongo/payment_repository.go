package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}

	out := []domain.Payment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
