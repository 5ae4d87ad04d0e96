// repository/genre/repo.go
package genrerepo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	Create(ctx context.Context, g *model.Genre) error
	ByID(ctx context.Context, id int64) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, g *model.Genre) error {
	const q = `INSERT INTO genres (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, q, g.Name).Scan(&g.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Genre, error) {
	g := &model.Genre{}
	if err := r.db.GetContext(ctx, g, `SELECT id, name FROM genres WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) List(ctx context.Context) ([]model.Genre, error) {
	var out []model.Genre
	if err := r.db.SelectContext(ctx, &out, `SELECT id, name FROM genres ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}
