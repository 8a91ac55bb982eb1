package models

// ShippingSettings is the single global flat shipping charge
// (settings/shipping). Checkout snapshots it into each order.
type ShippingSettings struct {
	Charge Price `bson:"charge" json:"charge"`
}

// FeeSettings is the admin-managed fee list (settings/fees).
type FeeSettings struct {
	Charges []Fee `bson:"charges" json:"charges"`
}
