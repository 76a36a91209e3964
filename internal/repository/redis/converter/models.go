package converter

// CartRedisModel — JSON-представление корзины сессии в Redis.
type CartRedisModel struct {
	Entries []EntryRedisModel `json:"entries"`
}

type EntryRedisModel struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}
