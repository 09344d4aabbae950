package state

// スライス間イベント。種類はこのパッケージで閉じる。
// 発火は各スライスの操作が成功した時だけ（失敗時は何も流れない）。
type Event interface {
	isEvent()
}

// 注文確定。カートはこれを受けて無条件に空へ戻る。
type OrderSubmitted struct {
	OrderID string
}

// 商品削除。カートに残っていれば明細ごと落とす。
type ProductDeleted struct {
	ProductID string
}

func (OrderSubmitted) isEvent() {}
func (ProductDeleted) isEvent() {}
