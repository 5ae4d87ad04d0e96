// repository/book/repo.go
package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error
	ByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, limit, offset int) ([]model.Book, error)
	Delete(ctx context.Context, id int64) error

	// Counter writes. Every method is a single guarded UPDATE and must run
	// inside the caller's transaction; a false return means the guard did not
	// hold (row missing or counter at its bound) and nothing changed.
	ExistsTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	TakeAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	PutAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	StageReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	DropReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	UnstageToShelf(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	RetireCopy(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `
		INSERT INTO books (title, year, description, total, available, reserved)
		VALUES ($1,$2,$3,$4,$4,0)
		RETURNING id`
	if err = tx.QueryRowContext(ctx, q, b.Title, b.Year, b.Description, b.Total).Scan(&b.ID); err != nil {
		return err
	}
	b.Available = b.Total
	b.Reserved = 0

	const insAuthor = `INSERT INTO author_books (author_id, book_id) VALUES ($1,$2)`
	for _, aid := range authorIDs {
		if _, err = tx.ExecContext(ctx, insAuthor, aid, b.ID); err != nil {
			return err
		}
	}
	const insGenre = `INSERT INTO genre_books (genre_id, book_id) VALUES ($1,$2)`
	for _, gid := range genreIDs {
		if _, err = tx.ExecContext(ctx, insGenre, gid, b.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	b := &model.Book{}
	const q = `
		SELECT id, title, year, description, total, available, reserved
		FROM books
		WHERE id = $1`
	if err := r.db.GetContext(ctx, b, q, id); err != nil {
		return nil, err
	}

	const qa = `
		SELECT a.id, a.fullname
		FROM authors a
		JOIN author_books ab ON ab.author_id = a.id
		WHERE ab.book_id = $1
		ORDER BY a.id`
	if err := r.db.SelectContext(ctx, &b.Authors, qa, id); err != nil {
		return nil, err
	}

	const qg = `
		SELECT g.id, g.name
		FROM genres g
		JOIN genre_books gb ON gb.genre_id = g.id
		WHERE gb.book_id = $1
		ORDER BY g.id`
	if err := r.db.SelectContext(ctx, &b.Genres, qg, id); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]model.Book, error) {
	const q = `
		SELECT id, title, year, description, total, available, reserved
		FROM books
		ORDER BY id
		LIMIT $1 OFFSET $2`
	var out []model.Book
	if err := r.db.SelectContext(ctx, &out, q, limit, offset); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- counter writes ---

func (r *repo) ExistsTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM books WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func guarded(ctx context.Context, tx *sqlx.Tx, q string, id int64) (bool, error) {
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

// TakeAvailable pulls one copy off the shelf for a freshly created line item.
func (r *repo) TakeAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET available = available - 1
		WHERE id = $1
		AND available > 0`
	return guarded(ctx, tx, q, id)
}

// PutAvailable returns one outstanding copy to the shelf.
func (r *repo) PutAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET available = available + 1
		WHERE id = $1
		AND available + reserved < total`
	return guarded(ctx, tx, q, id)
}

// StageReserve moves an already-held copy into the reserved (staged) pool.
func (r *repo) StageReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET reserved = reserved + 1
		WHERE id = $1
		AND available + reserved < total`
	return guarded(ctx, tx, q, id)
}

// DropReserve removes one copy from the reserved pool (it is leaving on loan).
func (r *repo) DropReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET reserved = reserved - 1
		WHERE id = $1
		AND reserved > 0`
	return guarded(ctx, tx, q, id)
}

// UnstageToShelf cancels a staged copy: out of reserved, back to available.
func (r *repo) UnstageToShelf(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET reserved = reserved - 1,
			available = available + 1
		WHERE id = $1
		AND reserved > 0`
	return guarded(ctx, tx, q, id)
}

// RetireCopy pins available to total-1 after a copy is declared lost.
// Total is never mutated; the missing copy stays visible as the deficit.
func (r *repo) RetireCopy(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	const q = `
		UPDATE books
		SET available = total - 1
		WHERE id = $1`
	return guarded(ctx, tx, q, id)
}
