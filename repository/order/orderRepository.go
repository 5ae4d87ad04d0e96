// repository/order/repo.go
package orderrepo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	InsertOrder(ctx context.Context, tx *sqlx.Tx, userID int64) (*model.Order, error)
	InsertOrderBook(ctx context.Context, tx *sqlx.Tx, orderID, bookID int64) (*model.OrderBook, error)

	ByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]model.Order, error)

	// OrderBookForUpdate locks one line item and reports the owning user.
	OrderBookForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.OrderBook, int64, error)
	// OrderBooksForUpdate locks every line item of an order, id order, and
	// reports the owning user.
	OrderBooksForUpdate(ctx context.Context, tx *sqlx.Tx, orderID int64) ([]model.OrderBook, int64, error)
	UpdateOrderBook(ctx context.Context, tx *sqlx.Tx, ob *model.OrderBook) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) InsertOrder(ctx context.Context, tx *sqlx.Tx, userID int64) (*model.Order, error) {
	o := &model.Order{UserID: userID}
	const q = `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, created_at`
	if err := tx.QueryRowContext(ctx, q, userID).Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) InsertOrderBook(ctx context.Context, tx *sqlx.Tx, orderID, bookID int64) (*model.OrderBook, error) {
	ob := &model.OrderBook{OrderID: orderID, BookID: bookID, Status: model.StatusCreated}
	const q = `
		INSERT INTO order_books (order_id, book_id, status)
		VALUES ($1,$2,$3)
		RETURNING id`
	if err := tx.QueryRowContext(ctx, q, orderID, bookID, ob.Status).Scan(&ob.ID); err != nil {
		return nil, err
	}
	return ob, nil
}

const orderBookCols = `id, order_id, book_id, status, date_start_rented, date_return_due, date_returned`

func (r *repo) ByID(ctx context.Context, id int64) (*model.Order, error) {
	o := &model.Order{}
	const q = `SELECT id, user_id, created_at FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, o, q, id); err != nil {
		return nil, err
	}
	const qb = `SELECT ` + orderBookCols + ` FROM order_books WHERE order_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &o.Books, qb, id); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	const q = `
		SELECT id, user_id, created_at
		FROM orders
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`
	var out []model.Order
	if err := r.db.SelectContext(ctx, &out, q, limit, offset); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) OrderBookForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.OrderBook, int64, error) {
	const q = `
		SELECT ob.id, ob.order_id, ob.book_id, ob.status,
			ob.date_start_rented, ob.date_return_due, ob.date_returned,
			o.user_id
		FROM order_books ob
		JOIN orders o ON o.id = ob.order_id
		WHERE ob.id = $1
		FOR UPDATE OF ob`
	ob := &model.OrderBook{}
	var userID int64
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&ob.ID, &ob.OrderID, &ob.BookID, &ob.Status,
		&ob.DateStartRented, &ob.DateReturnDue, &ob.DateReturned,
		&userID,
	)
	if err != nil {
		return nil, 0, err
	}
	return ob, userID, nil
}

func (r *repo) OrderBooksForUpdate(ctx context.Context, tx *sqlx.Tx, orderID int64) ([]model.OrderBook, int64, error) {
	const q = `
		SELECT ob.id, ob.order_id, ob.book_id, ob.status,
			ob.date_start_rented, ob.date_return_due, ob.date_returned,
			o.user_id
		FROM order_books ob
		JOIN orders o ON o.id = ob.order_id
		WHERE ob.order_id = $1
		ORDER BY ob.id
		FOR UPDATE OF ob`
	rows, err := tx.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		out    []model.OrderBook
		userID int64
	)
	for rows.Next() {
		var ob model.OrderBook
		if err := rows.Scan(
			&ob.ID, &ob.OrderID, &ob.BookID, &ob.Status,
			&ob.DateStartRented, &ob.DateReturnDue, &ob.DateReturned,
			&userID,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, ob)
	}
	return out, userID, rows.Err()
}

func (r *repo) UpdateOrderBook(ctx context.Context, tx *sqlx.Tx, ob *model.OrderBook) error {
	const q = `
		UPDATE order_books
		SET status = $2,
			date_start_rented = $3,
			date_return_due = $4,
			date_returned = $5
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, ob.ID, ob.Status, ob.DateStartRented, ob.DateReturnDue, ob.DateReturned)
	return err
}
