package model

import "time"

// 注文。IDはリモートストアが採番するキー。
// Itemsは確定時点のカート明細のコピー（後からカートや商品を変えても影響しない）。
// 作成後は変更も削除もしない。
type Order struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	SubmittedAt time.Time  `json:"submitted_at"`
}
