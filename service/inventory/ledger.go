// Package inventory owns the three per-book counters: total copies, copies
// available on the shelf, and copies reserved for staged orders. Every method
// applies exactly one counter adjustment through a guarded UPDATE in the
// caller's transaction, so two callers racing on the last copy cannot both
// win. A guard that should be impossible to trip (releasing with nothing out,
// draining an empty reserve) panics: that is a bookkeeping bug, not a state
// the caller can recover from.
package inventory

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Store interface {
	TakeAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	PutAvailable(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	StageReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	DropReserve(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	UnstageToShelf(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	RetireCopy(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
}

type Ledger struct{ s Store }

func New(s Store) *Ledger { return &Ledger{s: s} }

// Reserve takes one copy off the shelf for a freshly created line item.
// Returns false, without mutation, when no copy is available.
func (l *Ledger) Reserve(ctx context.Context, tx *sqlx.Tx, bookID int64) (bool, error) {
	return l.s.TakeAvailable(ctx, tx, bookID)
}

// Release undoes a Reserve: the copy goes back on the shelf. Only valid while
// at least one copy is outstanding.
func (l *Ledger) Release(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.PutAvailable(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: release of book %d with no copy outstanding", bookID))
	}
	return nil
}

// Stage marks a held copy as pulled aside for pickup (reserved pool).
func (l *Ledger) Stage(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.StageReserve(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: staging book %d with no copy outstanding", bookID))
	}
	return nil
}

// CommitLoan hands a staged copy out: it leaves the reserved pool and is now
// accounted for only by the total deficit.
func (l *Ledger) CommitLoan(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.DropReserve(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: loan commit for book %d with empty reserve", bookID))
	}
	return nil
}

// Unstage cancels a staged copy: out of the reserved pool, back on the shelf.
func (l *Ledger) Unstage(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.UnstageToShelf(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: unstaging book %d with empty reserve", bookID))
	}
	return nil
}

// CommitReturn puts a returned copy back on the shelf.
func (l *Ledger) CommitReturn(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.PutAvailable(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: return of book %d with no copy on loan", bookID))
	}
	return nil
}

// Retire records a permanently lost copy by pinning available to total-1.
// Total itself is never rewritten, the lost copy stays visible as deficit.
func (l *Ledger) Retire(ctx context.Context, tx *sqlx.Tx, bookID int64) error {
	ok, err := l.s.RetireCopy(ctx, tx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("inventory: retiring copy of unknown book %d", bookID))
	}
	return nil
}
