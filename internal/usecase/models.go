package usecase

import "time"

// HEALTH USECASE

// HealthRes — ответ проверки живости (сообщение от хранилища).
type HealthRes struct {
	Message string
}

// CATALOG USECASE

// ProductSummary — публичные поля позиции каталога для списка.
type ProductSummary struct {
	ID               int64
	Name             string
	Price            int64
	Image            string
	ShortDescription string
	BandName         string
}

// CART USECASE

// CartItemInfo — позиция корзины, обогащённая полями продукта.
type CartItemInfo struct {
	CartItemID       int64
	Price            int64
	ProductID        int64
	Image            string
	Name             string
	ShortDescription string
	BandName         string
	Genre            string
	Year             int32
}

// ORDER USECASE

// CheckoutReq — данные покупателя из тела запроса оформления заказа.
type CheckoutReq struct {
	Name            string
	CreditCard      string
	ShippingAddress string
}

// CheckoutRes — поля созданного заказа.
type CheckoutRes struct {
	OrderID         int64
	CreatedAt       time.Time
	Name            string
	CreditCard      string
	ShippingAddress string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated OutboxEventType = "order.created"
)

// OutboxEvent — событие, записываемое в одной транзакции с заказом
// и асинхронно публикуемое в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderCreatedPayload — тело события order.created.
type OrderCreatedPayload struct {
	EventID   string `json:"eventId"`
	OrderID   int64  `json:"orderId"`
	CartID    int64  `json:"cartId"`
	CreatedAt int64  `json:"createdAt"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewHealthRes(message string) *HealthRes {
	return &HealthRes{Message: message}
}

func NewProductSummary(id int64, name string, price int64, image, shortDescription, bandName string) ProductSummary {
	return ProductSummary{
		ID:               id,
		Name:             name,
		Price:            price,
		Image:            image,
		ShortDescription: shortDescription,
		BandName:         bandName,
	}
}

func NewCheckoutReq(name, creditCard, shippingAddress string) *CheckoutReq {
	return &CheckoutReq{
		Name:            name,
		CreditCard:      creditCard,
		ShippingAddress: shippingAddress,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
