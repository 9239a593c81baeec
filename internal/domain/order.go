package domain

import "time"

// OrderItem представляет одну позицию заказа.
// В таблице orders позиции хранятся сериализованными в колонке items.
type OrderItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order представляет модель заказа,
// соответствует таблице orders в бд.
// RawItems — сериализованное содержимое колонки items; наружу отдаётся
// уже разобранный срез Items, который заполняет слой бизнес-логики.
type Order struct {
	ID        int64       `json:"id" db:"id"`
	Username  string      `json:"username" db:"username"`
	RawItems  string      `json:"-" db:"items"`
	Items     []OrderItem `json:"items" db:"-"`
	Total     float64     `json:"total" db:"total"`
	OrderDate time.Time   `json:"order_date" db:"order_date"`
}

// CartHistoryEntry представляет одну строку истории корзины,
// соответствует таблице cart_history в бд.
// На каждый заказ из k позиций создаётся ровно k таких строк с тем же
// username; связи с конкретным order id в схеме нет.
type CartHistoryEntry struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	ItemID    int64     `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
	AddedDate time.Time `json:"added_date" db:"added_date"`
}
