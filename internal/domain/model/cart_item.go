package model

// カートの明細。
// Priceは追加時点の単価スナップショットを必ず保存。
// Quantityが0の明細は持たない（0になる前に明細ごと削除する）。
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}
