package domain

// CartEventKind — тип изменения корзины
type CartEventKind string

const (
	CartEventAdded           CartEventKind = "added"
	CartEventQuantityChanged CartEventKind = "quantity_changed"
	CartEventRemoved         CartEventKind = "removed"
)

// CartEvent сообщает наблюдателям о фактическом изменении корзины.
// Quantity — количество после изменения (0 для removed).
type CartEvent struct {
	Kind      CartEventKind
	ProductID int64
	Quantity  int
}

func NewCartEvent(kind CartEventKind, productID int64, quantity int) CartEvent {
	return CartEvent{
		Kind:      kind,
		ProductID: productID,
		Quantity:  quantity,
	}
}
