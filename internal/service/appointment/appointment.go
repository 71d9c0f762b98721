package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ToggleRequest struct {
	Name     string
	Email    string
	Date     string
	Time     string
	DoctorID string // optional reference, not enforced
}

// ToggleResult carries exactly one of Created or Cancelled.
type ToggleResult struct {
	Created   *model.Appointment
	Cancelled *model.Appointment
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]model.Appointment, error)
	// Toggle books the slot identified by (email, date, time), or cancels it
	// when the identical tuple is already stored. Resubmitting after a
	// cancellation books again with a new identity.
	Toggle(ctx context.Context, req ToggleRequest) (*ToggleResult, error)
}

type appointmentCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Mailer sends booking notices. Satisfied by *email.Client.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	col     appointmentCollection
	mailer  Mailer
	appName string
}

func New(col appointmentCollection, mailer Mailer, appName string) Service {
	return &appointmentService{col: col, mailer: mailer, appName: appName}
}

func (s *appointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	appts := []model.Appointment{}
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Toggle(ctx context.Context, req ToggleRequest) (*ToggleResult, error) {
	if req.Name == "" || req.Email == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}

	filter := bson.M{"email": req.Email, "date": req.Date, "time": req.Time}

	var existing model.Appointment
	err := s.col.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == nil:
		return s.cancel(ctx, &existing)
	case errors.Is(err, mongo.ErrNoDocuments):
		return s.book(ctx, req)
	default:
		return nil, fmt.Errorf("find appointment: %w", err)
	}
}

func (s *appointmentService) cancel(ctx context.Context, existing *model.Appointment) (*ToggleResult, error) {
	// A concurrent cancel may have removed the document already; deleting
	// nothing is a no-op against the store.
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
		return nil, fmt.Errorf("delete appointment: %w", err)
	}

	s.notify(ctx, existing, email.BuildBookingCancellationEmail)

	return &ToggleResult{Cancelled: existing}, nil
}

func (s *appointmentService) book(ctx context.Context, req ToggleRequest) (*ToggleResult, error) {
	appt := model.Appointment{
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		DoctorID:  req.DoctorID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.col.InsertOne(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		appt.ID = id
	}

	s.notify(ctx, &appt, email.BuildBookingConfirmationEmail)

	return &ToggleResult{Created: &appt}, nil
}

// notify sends a booking notice when a mailer is configured. Delivery
// failures are logged and never fail the request.
func (s *appointmentService) notify(ctx context.Context, appt *model.Appointment, build func(email.BookingEmailData) email.Message) {
	if s.mailer == nil {
		return
	}

	msg := build(email.BookingEmailData{
		Name:    appt.Name,
		Email:   appt.Email,
		Date:    appt.Date,
		Time:    appt.Time,
		AppName: s.appName,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			return
		}
		slog.Warn("booking notice not sent", "email", appt.Email, "error", err)
	}
}
