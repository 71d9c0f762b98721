package user

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

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// RegisterResult mirrors the wire shape of POST /users: InsertedID is nil
// when the email was already registered and no write happened.
type RegisterResult struct {
	Message    string              `json:"message"`
	InsertedID *primitive.ObjectID `json:"insertedId"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, u model.User) (*RegisterResult, error)
	PromoteAdmin(ctx context.Context, id string) error
}

// userCollection is the subset of mongo.Collection behavior the service
// relies on, narrow enough to stub in tests.
type userCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	col userCollection
}

func New(col userCollection) Service {
	return &userService{col: col}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// IsAdmin reports the stored role for the email. An unknown email is simply
// not an admin, not an error.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// Register inserts the user unless the email is already present. Duplicate
// registration is reported to the caller, never treated as a failure.
func (s *userService) Register(ctx context.Context, u model.User) (*RegisterResult, error) {
	if u.Email == "" {
		return nil, ErrEmailRequired
	}

	_, err := s.GetByEmail(ctx, u.Email)
	if err == nil {
		return &RegisterResult{Message: "user already exists", InsertedID: nil}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &RegisterResult{Message: "user created successfully", InsertedID: &id}, nil
}

// PromoteAdmin flips the target's role to admin. Roles are never demoted
// through this surface.
func (s *userService) PromoteAdmin(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
