package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationReceived ApplicationStatus = "Received"
	ApplicationReviewed ApplicationStatus = "Reviewed"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// KCCApplication is a Kisan Credit Card scheme application submitted from
// the public storefront.
type KCCApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	FatherName  string             `bson:"fatherName" json:"fatherName"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Village     string             `bson:"village" json:"village"`
	District    string             `bson:"district" json:"district"`
	State       string             `bson:"state" json:"state"`
	LandArea    string             `bson:"landArea" json:"landArea"`
	CropType    string             `bson:"cropType" json:"cropType"`
	BankName    string             `bson:"bankName" json:"bankName"`
	BankAccount string             `bson:"bankAccount" json:"bankAccount"`
	Status      ApplicationStatus  `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// JaivikCardApplication is a Kisan Jaivik (organic certification) Card
// application.
type JaivikCardApplication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Village      string             `bson:"village" json:"village"`
	District     string             `bson:"district" json:"district"`
	State        string             `bson:"state" json:"state"`
	LandArea     string             `bson:"landArea" json:"landArea"`
	FarmingSince string             `bson:"farmingSince,omitempty" json:"farmingSince,omitempty"`
	Crops        string             `bson:"crops,omitempty" json:"crops,omitempty"`
	Status       ApplicationStatus  `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// CoordinatorApplication is an application to become a regional coordinator.
type CoordinatorApplication struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Phone      string             `bson:"phone" json:"phone"`
	Email      string             `bson:"email" json:"email"`
	District   string             `bson:"district" json:"district"`
	State      string             `bson:"state" json:"state"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Message    string             `bson:"message,omitempty" json:"message,omitempty"`
	Status     ApplicationStatus  `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
