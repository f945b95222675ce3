package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table: one header row per placed order.
//
// The (UserID, OrderReceipt) unique index turns the client-generated receipt
// code into an idempotency key: a resubmitted placeOrder request cannot create
// a second order for the same receipt.
type OrderModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	UserID       int64           `gorm:"not null;uniqueIndex:idx_orders_user_receipt"`
	OrderReceipt int64           `gorm:"not null;uniqueIndex:idx_orders_user_receipt"`
	LocationID   int64           `gorm:"not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OrderStatus  string          `gorm:"type:varchar(50);not null"`
	ChangeFor    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	SpecialReq   string          `gorm:"type:text"`
	OrderDate    time.Time       `gorm:"autoCreateTime"`

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: exactly one row per order,
// holding the complete cart snapshot as a JSONB document. Once written the
// row is never updated; it is the permanent record of what was ordered,
// decoupled from the live catalog.
type OrderItemModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderID         int64  `gorm:"not null;uniqueIndex"`
	OrderedProducts string `gorm:"type:jsonb;not null"`

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
