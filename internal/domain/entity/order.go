// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses observed in the fulfillment flow. The column is free text so
// the fulfillment side can introduce new statuses without a schema change.
const (
	OrderStatusInProgress = "In progress"
	OrderStatusCompleted  = "Completed"

	// OrderStatusFilterAll is the read-side filter value meaning "no filter".
	OrderStatusFilterAll = "all"
)

// Order is the order header: one row per placed order, carrying the totals,
// status and delivery metadata. The line items live in a separate snapshot
// (see OrderLine) written atomically with the header.
//
// TotalAmount is frozen at placement time; later catalog price changes never
// alter a placed order's total.
type Order struct {
	ID            int64
	UserID        int64           // The account that placed the order.
	LocationID    int64           // Resolved delivery location.
	OrderReceipt  int64           // Client-generated receipt code; unique per user.
	TotalAmount   decimal.Decimal // Items plus delivery fee, 2-decimal money.
	OrderStatus   string          // OrderStatusInProgress at placement.
	ChangeFor     decimal.Decimal // Cash tendered for change; zero means none requested.
	SpecialReq    string          // Optional free-text note for the courier.
	OrderDate     time.Time
}

// OrderLine is one line of the cart snapshot persisted with an order. The full
// snapshot is stored as a single serialized document so it stays intact even
// when the underlying products are later edited or deleted from the catalog.
type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	ImagePath string          `json:"image_path"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
