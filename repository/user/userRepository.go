// repository/user/repo.go
package userrepo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
	// ByIDForUpdate locks the user row for the rest of the transaction.
	ByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.User, error)
	// AddViolation bumps the violation count and flips blocked once the new
	// count reaches threshold. Returns the updated count and blocked flag.
	AddViolation(ctx context.Context, tx *sqlx.Tx, id int64, threshold int) (int, bool, error)
	// AdjustBooksHeld moves the concurrent-holdings counter by delta; the
	// guard refuses to drive it negative.
	AdjustBooksHeld(ctx context.Context, tx *sqlx.Tx, id int64, delta int) (bool, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

const userCols = `id, username, email, blocked, violations, books_held`

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	if err := r.db.GetContext(ctx, u, `SELECT `+userCols+` FROM users WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.User, error) {
	u := &model.User{}
	const q = `SELECT ` + userCols + ` FROM users WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, u, q, id); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) AddViolation(ctx context.Context, tx *sqlx.Tx, id int64, threshold int) (int, bool, error) {
	const q = `
		UPDATE users
		SET violations = violations + 1,
			blocked = blocked OR (violations + 1 >= $2)
		WHERE id = $1
		RETURNING violations, blocked`
	var (
		violations int
		blocked    bool
	)
	if err := tx.QueryRowContext(ctx, q, id, threshold).Scan(&violations, &blocked); err != nil {
		return 0, false, err
	}
	return violations, blocked, nil
}

func (r *repo) AdjustBooksHeld(ctx context.Context, tx *sqlx.Tx, id int64, delta int) (bool, error) {
	const q = `
		UPDATE users
		SET books_held = books_held + $2
		WHERE id = $1
		AND books_held + $2 >= 0`
	res, err := tx.ExecContext(ctx, q, id, delta)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}
