package doctor

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorshouse/backend/internal/model"
)

// CreateResult mirrors the wire shape of POST /expertDoctors: InsertedID is
// nil when a doctor with the same name is already listed.
type CreateResult struct {
	Message    string              `json:"message"`
	InsertedID *primitive.ObjectID `json:"insertedId"`
}

type Service interface {
	List(ctx context.Context) ([]model.Doctor, error)
	GetByID(ctx context.Context, id string) (*model.Doctor, error)
	Create(ctx context.Context, d model.Doctor) (*CreateResult, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type doctorCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type doctorService struct {
	col doctorCollection
}

func New(col doctorCollection) Service {
	return &doctorService{col: col}
}

func (s *doctorService) List(ctx context.Context) ([]model.Doctor, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	doctors := []model.Doctor{}
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *doctorService) GetByID(ctx context.Context, id string) (*model.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var d model.Doctor
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &d, nil
}

// Create lists a doctor unless one with the same name already exists. The
// name check is advisory only; nothing enforces it at the store.
func (s *doctorService) Create(ctx context.Context, d model.Doctor) (*CreateResult, error) {
	if d.Name == "" {
		return nil, ErrNameRequired
	}

	err := s.col.FindOne(ctx, bson.M{"name": d.Name}).Err()
	if err == nil {
		return &CreateResult{Message: "doctor is already in the list", InsertedID: nil}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	res, err := s.col.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &CreateResult{Message: "doctor added successfully", InsertedID: &id}, nil
}

// Update applies a partial document update. Arbitrary fields are accepted;
// the _id is never overwritten.
func (s *doctorService) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	delete(fields, "_id")
	if len(fields) == 0 {
		return ErrNoFields
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
