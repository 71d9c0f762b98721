package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorshouse/backend/internal/model"
)

var ErrNameRequired = errors.New("reviewer name is required")

type Service interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) (*primitive.ObjectID, error)
}

type reviewCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type reviewService struct {
	col reviewCollection
}

func New(col reviewCollection) Service {
	return &reviewService{col: col}
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, r model.Review) (*primitive.ObjectID, error) {
	if r.Name == "" {
		return nil, ErrNameRequired
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	res, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &id, nil
}
