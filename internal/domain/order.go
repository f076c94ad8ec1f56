package domain

import "time"

// Order — оформленный заказ. Неизменяем после создания.
type Order struct {
	ID              int64
	CartID          int64
	Name            string
	CreditCard      string
	ShippingAddress string
	CreatedAt       time.Time
}

func NewOrder(cartID int64, name, creditCard, shippingAddress string) *Order {
	return &Order{
		CartID:          cartID,
		Name:            name,
		CreditCard:      creditCard,
		ShippingAddress: shippingAddress,
	}
}
