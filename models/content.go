package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storefront content collections managed from the back office. Plain field
// storage, no behavior beyond CRUD.

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type Slide struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image     string             `bson:"image" json:"image"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle  string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Position  int                `bson:"position" json:"position"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Location struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	MapURL    string             `bson:"mapUrl,omitempty" json:"mapUrl,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
