package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID               int64     `db:"product_id"`
	Name             string    `db:"name"`
	Price            int64     `db:"price"`
	Image            string    `db:"image"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	BandName         string    `db:"band_name"`
	Genre            string    `db:"genre"`
	Year             int32     `db:"year"`
	CreatedAt        time.Time `db:"created_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              int64     `db:"order_id"`
	CartID          int64     `db:"cart_id"`
	Name            string    `db:"name"`
	CreditCard      string    `db:"credit_card"`
	ShippingAddress string    `db:"shipping_address"`
	CreatedAt       time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
