// repository/author/repo.go
package authorrepo

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Author) error
	ByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context, limit, offset int) ([]model.Author, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, a *model.Author) error {
	const q = `INSERT INTO authors (fullname) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, q, a.Fullname).Scan(&a.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Author, error) {
	a := &model.Author{}
	if err := r.db.GetContext(ctx, a, `SELECT id, fullname FROM authors WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]model.Author, error) {
	const q = `SELECT id, fullname FROM authors ORDER BY id LIMIT $1 OFFSET $2`
	var out []model.Author
	if err := r.db.SelectContext(ctx, &out, q, limit, offset); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
