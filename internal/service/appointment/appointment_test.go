package appointment

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/pkg/email"
)

// fakeCollection keeps at most one stored appointment, enough to drive the
// toggle through its book and cancel branches.
type fakeCollection struct {
	stored     *model.Appointment
	findOneErr error
	insertErr  error
	deleteErr  error
	deletes    int
	inserts    int
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.stored == nil {
		return mongo.NewCursorFromDocuments([]interface{}{}, nil, nil)
	}
	return mongo.NewCursorFromDocuments([]interface{}{*f.stored}, nil, nil)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	if f.findOneErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.findOneErr, nil)
	}
	if f.stored == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(*f.stored, nil, nil)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserts++
	appt := document.(model.Appointment)
	appt.ID = primitive.NewObjectID()
	f.stored = &appt
	return &mongo.InsertOneResult{InsertedID: appt.ID}, nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deletes++
	f.stored = nil
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// fakeMailer records every message handed to it.
type fakeMailer struct {
	sent []email.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, m email.Message) error {
	f.sent = append(f.sent, m)
	return f.err
}

func validRequest() ToggleRequest {
	return ToggleRequest{
		Name:  "Sara",
		Email: "sara@example.com",
		Date:  "2026-09-01",
		Time:  "10:00",
	}
}

func TestToggleMissingFields(t *testing.T) {
	svc := New(&fakeCollection{}, nil, "Doctors House")

	tests := []struct {
		name string
		req  ToggleRequest
	}{
		{"no name", ToggleRequest{Email: "a@b.c", Date: "d", Time: "t"}},
		{"no email", ToggleRequest{Name: "n", Date: "d", Time: "t"}},
		{"no date", ToggleRequest{Name: "n", Email: "a@b.c", Time: "t"}},
		{"no time", ToggleRequest{Name: "n", Email: "a@b.c", Date: "d"}},
		{"empty", ToggleRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Toggle(context.Background(), tt.req)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("Toggle() error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestToggleBooksWhenSlotFree(t *testing.T) {
	col := &fakeCollection{}
	svc := New(col, nil, "Doctors House")

	res, err := svc.Toggle(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if res.Created == nil {
		t.Fatal("Toggle() Created = nil, want booked appointment")
	}
	if res.Cancelled != nil {
		t.Error("Toggle() Cancelled set on a booking")
	}
	if res.Created.ID.IsZero() {
		t.Error("booked appointment has zero id")
	}
	if res.Created.CreatedAt.IsZero() {
		t.Error("booked appointment has zero CreatedAt")
	}
	if col.inserts != 1 || col.deletes != 0 {
		t.Errorf("inserts = %d, deletes = %d, want 1, 0", col.inserts, col.deletes)
	}
}

func TestToggleCancelsWhenSlotTaken(t *testing.T) {
	existing := model.Appointment{
		ID:    primitive.NewObjectID(),
		Name:  "Sara",
		Email: "sara@example.com",
		Date:  "2026-09-01",
		Time:  "10:00",
	}
	col := &fakeCollection{stored: &existing}
	svc := New(col, nil, "Doctors House")

	res, err := svc.Toggle(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if res.Cancelled == nil {
		t.Fatal("Toggle() Cancelled = nil, want prior appointment")
	}
	if res.Created != nil {
		t.Error("Toggle() Created set on a cancellation")
	}
	if res.Cancelled.ID != existing.ID {
		t.Errorf("cancelled id = %v, want %v", res.Cancelled.ID, existing.ID)
	}
	if col.deletes != 1 || col.inserts != 0 {
		t.Errorf("inserts = %d, deletes = %d, want 0, 1", col.inserts, col.deletes)
	}
}

// The same tuple must alternate book, cancel, book indefinitely, and each
// booking gets a fresh identity.
//
// The alternation holds for sequential submissions only. Two concurrent
// submissions of one tuple can both observe "no match" and both insert; the
// check-then-act is not serialized here. The unique slot index created by
// `system init` rejects the second insert at the storage boundary.
func TestToggleAlternates(t *testing.T) {
	col := &fakeCollection{}
	svc := New(col, nil, "Doctors House")
	req := validRequest()

	first, err := svc.Toggle(context.Background(), req)
	if err != nil {
		t.Fatalf("first Toggle() error = %v", err)
	}
	if first.Created == nil {
		t.Fatal("first Toggle() should book")
	}

	second, err := svc.Toggle(context.Background(), req)
	if err != nil {
		t.Fatalf("second Toggle() error = %v", err)
	}
	if second.Cancelled == nil {
		t.Fatal("second Toggle() should cancel")
	}
	if second.Cancelled.ID != first.Created.ID {
		t.Error("second Toggle() cancelled a different appointment")
	}

	third, err := svc.Toggle(context.Background(), req)
	if err != nil {
		t.Fatalf("third Toggle() error = %v", err)
	}
	if third.Created == nil {
		t.Fatal("third Toggle() should book again")
	}
	if third.Created.ID == first.Created.ID {
		t.Error("rebooking reused the old identity")
	}
}

func TestToggleStorageFailure(t *testing.T) {
	svc := New(&fakeCollection{findOneErr: errors.New("connection reset")}, nil, "Doctors House")

	if _, err := svc.Toggle(context.Background(), validRequest()); err == nil {
		t.Error("Toggle() expected error, got nil")
	}
}

func TestToggleSendsBookingNotices(t *testing.T) {
	col := &fakeCollection{}
	mailer := &fakeMailer{}
	svc := New(col, mailer, "Doctors House")
	req := validRequest()

	if _, err := svc.Toggle(context.Background(), req); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if _, err := svc.Toggle(context.Background(), req); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d notices, want 2", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != req.Email {
		t.Errorf("notice sent to %q, want %q", mailer.sent[0].To[0], req.Email)
	}
	if mailer.sent[0].Subject == mailer.sent[1].Subject {
		t.Error("booking and cancellation notices share a subject")
	}
}

func TestToggleSurvivesMailerFailure(t *testing.T) {
	col := &fakeCollection{}
	mailer := &fakeMailer{err: errors.New("smtp timeout")}
	svc := New(col, mailer, "Doctors House")

	res, err := svc.Toggle(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if res.Created == nil {
		t.Error("booking should succeed despite mailer failure")
	}
}

func TestList(t *testing.T) {
	existing := model.Appointment{
		ID:    primitive.NewObjectID(),
		Name:  "Sara",
		Email: "sara@example.com",
		Date:  "2026-09-01",
		Time:  "10:00",
	}
	svc := New(&fakeCollection{stored: &existing}, nil, "Doctors House")

	appts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("List() returned %d appointments, want 1", len(appts))
	}
	if appts[0].Email != existing.Email {
		t.Errorf("List() email = %q, want %q", appts[0].Email, existing.Email)
	}
}
