package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is one booked slot. The (email, date, time) tuple identifies
// the slot request: submitting the same tuple again cancels the booking.
type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	DoctorID  string             `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
