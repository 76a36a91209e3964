package domain

import (
	"fmt"
	"slices"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// CartEntry — снимок товара на момент первого добавления и его количество.
type CartEntry struct {
	Product  Product
	Quantity int
}

// Subtotal возвращает стоимость позиции по замороженной цене.
func (c CartEntry) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type cartObserver struct {
	id int
	fn func(CartEvent)
}

// Cart хранит позиции корзины в порядке первого добавления.
// Инварианты: не больше одной позиции на товар, количество всегда >= 1.
// Cart не потокобезопасна, владельцем является одна сессия.
type Cart struct {
	entries   []CartEntry
	observers []cartObserver
	nextObsID int
}

func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart восстанавливает корзину из сохранённых позиций, проверяя инварианты.
func RestoreCart(entries []CartEntry) (*Cart, error) {
	seen := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Quantity < 1 {
			return nil, e.Wrap(fmt.Sprintf("product %d: quantity %d", entry.Product.ID, entry.Quantity), e.ErrCorruptedCart)
		}
		if _, ok := seen[entry.Product.ID]; ok {
			return nil, e.Wrap(fmt.Sprintf("product %d: duplicate entry", entry.Product.ID), e.ErrCorruptedCart)
		}
		seen[entry.Product.ID] = struct{}{}
	}

	return &Cart{entries: slices.Clone(entries)}, nil
}

// AddToCart увеличивает количество товара на 1 либо добавляет новую позицию в конец.
// Снимок товара в существующей позиции не обновляется.
func (c *Cart) AddToCart(product Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.entries[i].Quantity++
		c.notify(NewCartEvent(CartEventQuantityChanged, product.ID, c.entries[i].Quantity))
		return
	}

	c.entries = append(c.entries, CartEntry{Product: product, Quantity: 1})
	c.notify(NewCartEvent(CartEventAdded, product.ID, 1))
}

// RemoveFromCart удаляет позицию, отсутствующий товар игнорируется.
func (c *Cart) RemoveFromCart(productID int64) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	c.entries = slices.Delete(c.entries, i, i+1)
	c.notify(NewCartEvent(CartEventRemoved, productID, 0))
}

// UpdateQuantity меняет количество на delta, но не ниже 1.
// Убрать позицию можно только через RemoveFromCart.
func (c *Cart) UpdateQuantity(productID int64, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	current := c.entries[i].Quantity
	next := max(1, clampAdd(current, delta))
	if next == current {
		return
	}

	c.entries[i].Quantity = next
	c.notify(NewCartEvent(CartEventQuantityChanged, productID, next))
}

// TotalItems возвращает сумму количеств по всем позициям.
func (c *Cart) TotalItems() int {
	total := 0
	for _, entry := range c.entries {
		total += entry.Quantity
	}

	return total
}

// TotalPrice возвращает сумму цена*количество по всем позициям.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.entries {
		total = total.Add(entry.Subtotal())
	}

	return total
}

// Entries возвращает копию позиций в порядке добавления.
func (c *Cart) Entries() []CartEntry {
	return slices.Clone(c.entries)
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Clone возвращает копию позиций без наблюдателей.
func (c *Cart) Clone() *Cart {
	return &Cart{entries: slices.Clone(c.entries)}
}

// Subscribe регистрирует наблюдателя, вызываемого синхронно после каждого
// фактического изменения корзины. Возвращает функцию отписки.
func (c *Cart) Subscribe(fn func(CartEvent)) func() {
	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, cartObserver{id: id, fn: fn})

	return func() {
		c.observers = slices.DeleteFunc(c.observers, func(o cartObserver) bool {
			return o.id == id
		})
	}
}

func (c *Cart) notify(ev CartEvent) {
	for _, o := range slices.Clone(c.observers) {
		o.fn(ev)
	}
}

func (c *Cart) indexOf(productID int64) int {
	return slices.IndexFunc(c.entries, func(entry CartEntry) bool {
		return entry.Product.ID == productID
	})
}

// clampAdd складывает без переполнения int.
func clampAdd(a, b int) int {
	const (
		maxInt = int(^uint(0) >> 1)
		minInt = -maxInt - 1
	)

	if b > 0 && a > maxInt-b {
		return maxInt
	}
	if b < 0 && a < minInt-b {
		return minInt
	}

	return a + b
}
