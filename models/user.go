package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address belongs to exactly one user. Orders embed a full copy of the
// chosen address, never a reference, so later edits or deletes do not
// rewrite order history.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Address   string             `bson:"address" json:"address"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Zip       string             `bson:"zip" json:"zip"`
	Phone     string             `bson:"phone" json:"phone"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Addresses []Address          `bson:"addresses" json:"addresses"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
