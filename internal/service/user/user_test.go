package user

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorshouse/backend/internal/model"
)

// fakeCollection stubs the narrow collection surface the service uses.
type fakeCollection struct {
	findDocs   []interface{}
	findErr    error
	findOneDoc interface{}
	findOneErr error
	insertErr  error
	inserted   []interface{}
	updateRes  *mongo.UpdateResult
	updateErr  error
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return mongo.NewCursorFromDocuments(f.findDocs, nil, nil)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	if f.findOneErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.findOneErr, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findOneDoc, nil, nil)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, document)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateRes, nil
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		input       model.User
		col         *fakeCollection
		wantErr     error
		wantMessage string
		wantInsert  bool
	}{
		{
			name:        "new user is inserted",
			input:       model.User{Name: "Sara", Email: "sara@example.com"},
			col:         &fakeCollection{findOneErr: mongo.ErrNoDocuments},
			wantMessage: "user created successfully",
			wantInsert:  true,
		},
		{
			name:        "duplicate email writes nothing",
			input:       model.User{Name: "Sara", Email: "sara@example.com"},
			col:         &fakeCollection{findOneDoc: model.User{Email: "sara@example.com"}},
			wantMessage: "user already exists",
			wantInsert:  false,
		},
		{
			name:    "missing email",
			input:   model.User{Name: "Sara"},
			col:     &fakeCollection{},
			wantErr: ErrEmailRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.col)

			got, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}

			if got.Message != tt.wantMessage {
				t.Errorf("Register() message = %q, want %q", got.Message, tt.wantMessage)
			}
			if tt.wantInsert {
				if got.InsertedID == nil {
					t.Error("Register() InsertedID = nil, want id")
				}
				if len(tt.col.inserted) != 1 {
					t.Fatalf("inserted %d documents, want 1", len(tt.col.inserted))
				}
			} else {
				if got.InsertedID != nil {
					t.Errorf("Register() InsertedID = %v, want nil", got.InsertedID)
				}
				if len(tt.col.inserted) != 0 {
					t.Errorf("inserted %d documents, want 0", len(tt.col.inserted))
				}
			}
		})
	}
}

func TestRegisterDefaultsRole(t *testing.T) {
	col := &fakeCollection{findOneErr: mongo.ErrNoDocuments}
	svc := New(col)

	_, err := svc.Register(context.Background(), model.User{Email: "u@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	u, ok := col.inserted[0].(model.User)
	if !ok {
		t.Fatalf("inserted document is %T, want model.User", col.inserted[0])
	}
	if u.Role != model.RoleUser {
		t.Errorf("inserted role = %q, want %q", u.Role, model.RoleUser)
	}
	if u.CreatedAt.IsZero() {
		t.Error("inserted CreatedAt is zero")
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		col  *fakeCollection
		want bool
	}{
		{
			name: "admin role",
			col:  &fakeCollection{findOneDoc: model.User{Email: "a@example.com", Role: model.RoleAdmin}},
			want: true,
		},
		{
			name: "plain user",
			col:  &fakeCollection{findOneDoc: model.User{Email: "u@example.com", Role: model.RoleUser}},
			want: false,
		},
		{
			name: "unknown email is not an error",
			col:  &fakeCollection{findOneErr: mongo.ErrNoDocuments},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.col)
			got, err := svc.IsAdmin(context.Background(), "whoever@example.com")
			if err != nil {
				t.Fatalf("IsAdmin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromoteAdmin(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	tests := []struct {
		name    string
		id      string
		col     *fakeCollection
		wantErr error
	}{
		{
			name: "success",
			id:   validID,
			col:  &fakeCollection{updateRes: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}},
		},
		{
			name:    "malformed id",
			id:      "not-an-object-id",
			col:     &fakeCollection{},
			wantErr: ErrInvalidID,
		},
		{
			name:    "unknown id",
			id:      validID,
			col:     &fakeCollection{updateRes: &mongo.UpdateResult{MatchedCount: 0}},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.col)
			err := svc.PromoteAdmin(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PromoteAdmin() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	col := &fakeCollection{findDocs: []interface{}{
		model.User{Name: "A", Email: "a@example.com"},
		model.User{Name: "B", Email: "b@example.com"},
	}}
	svc := New(col)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("List() returned %d users, want 2", len(users))
	}
}

func TestListStorageFailure(t *testing.T) {
	svc := New(&fakeCollection{findErr: errors.New("connection reset")})

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("List() expected error, got nil")
	}
}
