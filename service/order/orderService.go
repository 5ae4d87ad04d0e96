package ordersvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/config"
	"github.com/OlympusNSP/Library2/model"
	"github.com/OlympusNSP/Library2/service/inventory"
	"github.com/OlympusNSP/Library2/util/database"
)

type OrderStore interface {
	InsertOrder(ctx context.Context, tx *sqlx.Tx, userID int64) (*model.Order, error)
	InsertOrderBook(ctx context.Context, tx *sqlx.Tx, orderID, bookID int64) (*model.OrderBook, error)
	ByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]model.Order, error)
	OrderBookForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.OrderBook, int64, error)
	OrderBooksForUpdate(ctx context.Context, tx *sqlx.Tx, orderID int64) ([]model.OrderBook, int64, error)
	UpdateOrderBook(ctx context.Context, tx *sqlx.Tx, ob *model.OrderBook) error
}

type BookStore interface {
	ExistsTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
}

type UserStore interface {
	ByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.User, error)
	AddViolation(ctx context.Context, tx *sqlx.Tx, id int64, threshold int) (int, bool, error)
	AdjustBooksHeld(ctx context.Context, tx *sqlx.Tx, id int64, delta int) (bool, error)
}

type Service interface {
	// Create reserves one copy of every requested book and persists the order
	// with its line items in CREATED, all or nothing.
	Create(ctx context.Context, userID int64, bookIDs []int64) (*model.Order, error)

	// Transition advances one line item through the status table.
	Transition(ctx context.Context, orderBookID int64, to model.OrderBookStatus) (*model.OrderBook, error)

	// Start hands an order out: every PREPARED line item goes to RENTED.
	Start(ctx context.Context, orderID int64) ([]model.OrderBook, error)

	ByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, page, size int) ([]model.Order, error)
}

type service struct {
	orders OrderStore
	books  BookStore
	ledger *inventory.Ledger
	pol    *Policy

	runTx func(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	now   func() time.Time

	maxBooksPerOrder int
	rentalDays       int
	log              *slog.Logger
}

func New(db *sqlx.DB, orders OrderStore, books BookStore, users UserStore, ledger *inventory.Ledger, cfg config.App, log *slog.Logger) Service {
	return &service{
		orders: orders,
		books:  books,
		ledger: ledger,
		pol:    NewPolicy(users, cfg.MaxRentalBooks, cfg.MaxViolations, log),
		runTx: func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return database.WithTx(ctx, db, fn)
		},
		now:              time.Now,
		maxBooksPerOrder: cfg.MaxBooksPerOrder,
		rentalDays:       cfg.RentalDays,
		log:              log,
	}
}

func (s *service) Create(ctx context.Context, userID int64, bookIDs []int64) (*model.Order, error) {
	s.log.Info("create order", "user_id", userID, "books", len(bookIDs))

	var out *model.Order
	err := s.runTx(ctx, func(tx *sqlx.Tx) error {
		u, err := s.pol.users.ByIDForUpdate(ctx, tx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrUserNotFound, fmt.Sprintf("user %d not found", userID))
		}
		if err != nil {
			return err
		}

		if err := s.pol.CheckEligible(u, len(bookIDs)); err != nil {
			return err
		}
		if len(bookIDs) > s.maxBooksPerOrder {
			return makeErr(ErrRentalLimit, fmt.Sprintf(
				"order of %d books exceeds the per-order limit of %d",
				len(bookIDs), s.maxBooksPerOrder))
		}

		o, err := s.orders.InsertOrder(ctx, tx, userID)
		if err != nil {
			return err
		}

		// One reservation per book; the first failure aborts the transaction
		// and the rollback releases every copy taken so far.
		for _, bookID := range bookIDs {
			exists, err := s.books.ExistsTx(ctx, tx, bookID)
			if err != nil {
				return err
			}
			if !exists {
				return makeErr(ErrBookNotFound, fmt.Sprintf("book %d not found", bookID))
			}
			held, err := s.ledger.Reserve(ctx, tx, bookID)
			if err != nil {
				return err
			}
			if !held {
				s.log.Warn("book out of stock", "book_id", bookID, "user_id", userID)
				return makeErr(ErrBookUnavailable, fmt.Sprintf("book %d has no available copy", bookID))
			}
			ob, err := s.orders.InsertOrderBook(ctx, tx, o.ID, bookID)
			if err != nil {
				return err
			}
			o.Books = append(o.Books, *ob)
		}

		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Transition(ctx context.Context, orderBookID int64, to model.OrderBookStatus) (*model.OrderBook, error) {
	var out *model.OrderBook
	err := s.runTx(ctx, func(tx *sqlx.Tx) error {
		ob, userID, err := s.orders.OrderBookForUpdate(ctx, tx, orderBookID)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrLineItemNotFound, fmt.Sprintf("order line item %d not found", orderBookID))
		}
		if err != nil {
			return err
		}

		// Requesting the current status is a no-op, nothing is touched.
		if ob.Status == to {
			out = ob
			return nil
		}

		if err := s.applyTransition(ctx, tx, ob, userID, to); err != nil {
			return err
		}
		if err := s.orders.UpdateOrderBook(ctx, tx, ob); err != nil {
			return err
		}
		s.log.Info("line item advanced", "order_book_id", ob.ID, "book_id", ob.BookID, "status", ob.Status)
		out = ob
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Start(ctx context.Context, orderID int64) ([]model.OrderBook, error) {
	var out []model.OrderBook
	err := s.runTx(ctx, func(tx *sqlx.Tx) error {
		items, userID, err := s.orders.OrderBooksForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return makeErr(ErrOrderNotFound, fmt.Sprintf("order %d not found", orderID))
		}

		started := 0
		for i := range items {
			if items[i].Status != model.StatusPrepared {
				continue
			}
			if err := s.applyTransition(ctx, tx, &items[i], userID, model.StatusRented); err != nil {
				return err
			}
			if err := s.orders.UpdateOrderBook(ctx, tx, &items[i]); err != nil {
				return err
			}
			started++
		}
		if started == 0 {
			return makeErr(ErrUnsupportedTransition, fmt.Sprintf("order %d has no prepared items to hand out", orderID))
		}

		s.log.Info("order handed out", "order_id", orderID, "items", started)
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.Order, error) {
	o, err := s.orders.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrOrderNotFound, fmt.Sprintf("order %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) List(ctx context.Context, page, size int) ([]model.Order, error) {
	if size <= 0 || size > 100 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return s.orders.List(ctx, size, page*size)
}
