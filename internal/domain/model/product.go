package model

// 商品。IDはリモートストアが採番するキー。
// Priceは作成後に変更不可（更新時は既存の値を必ず引き継ぐ）。
type Product struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
