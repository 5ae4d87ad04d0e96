// model/order.go
package model

import (
	"fmt"
	"time"
)

// OrderBookStatus is the lifecycle state of one book inside one order.
type OrderBookStatus string

const (
	StatusCreated     OrderBookStatus = "CREATED"
	StatusPrepared    OrderBookStatus = "PREPARED"
	StatusRented      OrderBookStatus = "RENTED"
	StatusReturned    OrderBookStatus = "RETURNED"
	StatusLossLibrary OrderBookStatus = "LOSSLIBRARY"
	StatusLossUser    OrderBookStatus = "LOSSUSER"
	StatusCancelled   OrderBookStatus = "CANCELLED"
)

// ParseOrderBookStatus validates client input against the known statuses.
func ParseOrderBookStatus(s string) (OrderBookStatus, error) {
	switch st := OrderBookStatus(s); st {
	case StatusCreated, StatusPrepared, StatusRented, StatusReturned,
		StatusLossLibrary, StatusLossUser, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order book status %q", s)
}

// Terminal reports whether no transition is defined out of the status.
func (s OrderBookStatus) Terminal() bool {
	switch s {
	case StatusReturned, StatusLossLibrary, StatusLossUser, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        int64       `db:"id" json:"id"`
	UserID    int64       `db:"user_id" json:"user_id"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	Books     []OrderBook `db:"-" json:"books,omitempty"`
}

// OrderBook is one line item: one physical copy of one book promised to the
// order's user. Dates fill in progressively as the status advances.
type OrderBook struct {
	ID              int64           `db:"id" json:"id"`
	OrderID         int64           `db:"order_id" json:"order_id"`
	BookID          int64           `db:"book_id" json:"book_id"`
	Status          OrderBookStatus `db:"status" json:"status"`
	DateStartRented *time.Time      `db:"date_start_rented" json:"date_start_rented,omitempty"`
	DateReturnDue   *time.Time      `db:"date_return_due" json:"date_return_due,omitempty"`
	DateReturned    *time.Time      `db:"date_returned" json:"date_returned,omitempty"`
}
