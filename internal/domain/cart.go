package domain

import "github.com/shopspring/decimal"

// CartNamespace: фиксированный префикс ключей, под которыми хранится корзина.
const CartNamespace = "cart-storage"

// CartItem: позиция корзины. Количество всегда >= 1.
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal возвращает цену позиции: цена продажи * количество.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.SalePrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart: набор товаров, которые покупатель собирается заказать.
// Операции не возвращают ошибок: границы по остатку проверяет вызывающая сторона.
type Cart struct {
	Items []CartItem
}

func NewCart() *Cart {
	return &Cart{Items: make([]CartItem, 0)}
}

// Add увеличивает количество уже добавленного товара или добавляет новую позицию.
func (c *Cart) Add(product Product, quantity int) {
	if quantity <= 0 {
		return
	}

	if idx := c.indexOf(product.ID); idx >= 0 {
		c.Items[idx].Quantity += quantity
		return
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
}

// Remove удаляет позицию; отсутствие товара: не ошибка.
func (c *Cart) Remove(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// SetQuantity перезаписывает количество, при quantity <= 0 удаляет позицию.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.Items = make([]CartItem, 0)
}

// Total: сумма цена * количество по всем позициям, для пустой корзины 0.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount: суммарное количество единиц (для бейджа).
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

func (c *Cart) Find(productID string) (CartItem, bool) {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Items[idx], true
	}

	return CartItem{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// HasBackorderItems сообщает, есть ли в корзине товары под заказ (остаток 0, заказ разрешен).
func (c *Cart) HasBackorderItems() bool {
	for _, item := range c.Items {
		if item.Product.IsBackorder() {
			return true
		}
	}

	return false
}

// Clone возвращает независимую копию корзины.
func (c *Cart) Clone() *Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return &Cart{Items: items}
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}

	return -1
}
