package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a listed practitioner. Name is treated as a soft uniqueness key:
// creation refuses a duplicate name but nothing enforces it at the store.
type Doctor struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Specialty  string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Fee        int64              `bson:"fee,omitempty" json:"fee,omitempty"`
}
