package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// allowedTransitions is the one-way order workflow. Rejected and Delivered
// are terminal; there is no path back to an earlier status.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusAccepted: true, OrderStatusRejected: true},
	OrderStatusAccepted:  {OrderStatusShipped: true},
	OrderStatusShipped:   {OrderStatusDelivered: true},
	OrderStatusDelivered: {},
	OrderStatusRejected:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return allowedTransitions[from][to]
}

func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Fee is an admin-configured flat charge (tax, packaging) applied to every
// order. Orders embed the fee set current at placement time.
type Fee struct {
	Name  string `bson:"name" json:"name"`
	Value Price  `bson:"value" json:"value"`
}

// OrderItem is a snapshot of a product line at placement time, immune to
// later product edits.
type OrderItem struct {
	ProductID string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Price     Price  `bson:"price" json:"price"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"userId" json:"userId"` // ObjectID hex or "guest"
	CustomerName    string             `bson:"customerName" json:"customerName"`
	Email           string             `bson:"email" json:"email"`
	ShippingAddress Address            `bson:"shippingAddress" json:"shippingAddress"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        Price              `bson:"subtotal" json:"subtotal"`
	Shipping        Price              `bson:"shipping" json:"shipping"`
	Fees            []Fee              `bson:"fees" json:"fees"`
	Total           Price              `bson:"total" json:"total"`
	Status          OrderStatus        `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Date            time.Time          `bson:"date" json:"date"`
	TrackingID      string             `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	ShippingURL     string             `bson:"shippingUrl,omitempty" json:"shippingUrl,omitempty"`
}
