package models

// CartItem is ephemeral: carts live on the client for the duration of a
// shopping session and are never persisted. They only cross the wire at
// checkout, where each line becomes an OrderItem snapshot.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     Price  `json:"price"`
	Quantity  int    `json:"quantity"`
}
