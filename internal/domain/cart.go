package domain

import "time"

// Cart — корзина одной браузерной сессии.
// Брошенные корзины не удаляются.
type Cart struct {
	ID        int64
	CreatedAt time.Time
}

// CartItem — одна позиция корзины.
// Цена фиксируется в момент добавления и не перечитывается из каталога.
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Price     int64
}

func NewCartItem(cartID, productID, price int64) *CartItem {
	return &CartItem{
		CartID:    cartID,
		ProductID: productID,
		Price:     price,
	}
}
