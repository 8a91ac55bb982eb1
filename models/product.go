package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductStatusActive ProductStatus = "Active"
	ProductStatusDraft  ProductStatus = "Draft"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"` // category slug
	CategoryName string             `bson:"categoryName" json:"categoryName"`
	MRP          Price              `bson:"mrp" json:"mrp"` // list price, price <= mrp
	Price        Price              `bson:"price" json:"price"`
	Image        string             `bson:"image" json:"image"`
	ImageHover   string             `bson:"imageHover" json:"imageHover"`
	Image2       string             `bson:"image2" json:"image2"`
	Image3       string             `bson:"image3" json:"image3"`
	Description  string             `bson:"description" json:"description"`
	Ingredients  string             `bson:"ingredients" json:"ingredients"`
	ProductInfo  string             `bson:"productInfo" json:"productInfo"`
	ProductType  string             `bson:"productType" json:"productType"`
	Stock        int                `bson:"stock" json:"stock"`
	Status       ProductStatus      `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
