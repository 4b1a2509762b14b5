package models

type CartItem struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}

type CartLine struct {
	Item           CartItem `json:"item"`
	Product        Product  `json:"product"`
	UnitPrice      string   `json:"unitPrice"`
	DiscountFactor string   `json:"discountFactor"`
	LineTotal      string   `json:"lineTotal"`
}

type CartSummary struct {
	SessionID string     `json:"sessionId"`
	Currency  string     `json:"currency"`
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
	Total     string     `json:"total"`
}
