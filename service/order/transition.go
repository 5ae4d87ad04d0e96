package ordersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

// applyTransition advances one line item and applies exactly one counter
// adjustment for it. The caller holds row locks on the line item (and, via
// the guarded updates, on the book) and persists the mutated item afterwards.
//
//	CREATED  -> PREPARED | LOSSLIBRARY | CANCELLED
//	PREPARED -> RENTED | CANCELLED
//	RENTED   -> RETURNED | LOSSUSER
//
// RETURNED, LOSSLIBRARY, LOSSUSER and CANCELLED are terminal. Everything not
// listed, including RENTED->CANCELLED, is rejected as unsupported.
func (s *service) applyTransition(ctx context.Context, tx *sqlx.Tx, ob *model.OrderBook, userID int64, to model.OrderBookStatus) error {
	switch from := ob.Status; from {
	case model.StatusCreated:
		switch to {
		case model.StatusPrepared:
			if err := s.ledger.Stage(ctx, tx, ob.BookID); err != nil {
				return err
			}
		case model.StatusLossLibrary:
			if err := s.ledger.Retire(ctx, tx, ob.BookID); err != nil {
				return err
			}
		case model.StatusCancelled:
			if err := s.ledger.Release(ctx, tx, ob.BookID); err != nil {
				return err
			}
		default:
			return unsupported(from, to)
		}

	case model.StatusPrepared:
		switch to {
		case model.StatusRented:
			if err := s.ledger.CommitLoan(ctx, tx, ob.BookID); err != nil {
				return err
			}
			start := s.now()
			due := start.AddDate(0, 0, s.rentalDays)
			ob.DateStartRented = &start
			ob.DateReturnDue = &due
			if err := s.pol.RentalStarted(ctx, tx, userID); err != nil {
				return err
			}
		case model.StatusCancelled:
			if err := s.ledger.Unstage(ctx, tx, ob.BookID); err != nil {
				return err
			}
		default:
			return unsupported(from, to)
		}

	case model.StatusRented:
		switch to {
		case model.StatusReturned:
			if err := s.ledger.CommitReturn(ctx, tx, ob.BookID); err != nil {
				return err
			}
			returned := s.now()
			ob.DateReturned = &returned
			if overdue(ob.DateReturnDue, returned) {
				if err := s.pol.AddViolation(ctx, tx, userID); err != nil {
					return err
				}
			}
			if err := s.pol.RentalEnded(ctx, tx, userID); err != nil {
				return err
			}
		case model.StatusLossUser:
			if err := s.ledger.Retire(ctx, tx, ob.BookID); err != nil {
				return err
			}
			if err := s.pol.AddViolation(ctx, tx, userID); err != nil {
				return err
			}
			if err := s.pol.RentalEnded(ctx, tx, userID); err != nil {
				return err
			}
		default:
			// A rented book cannot be cancelled: it has to come back as
			// RETURNED or be written off as LOSSUSER.
			return unsupported(from, to)
		}

	case model.StatusReturned, model.StatusLossLibrary, model.StatusLossUser, model.StatusCancelled:
		return unsupported(from, to)

	default:
		panic(fmt.Sprintf("order: line item %d has unknown status %q", ob.ID, ob.Status))
	}

	ob.Status = to
	return nil
}

func unsupported(from, to model.OrderBookStatus) error {
	return makeErr(ErrUnsupportedTransition,
		fmt.Sprintf("transition from %s to %s is not supported", from, to))
}

// overdue reports whether a return at ts missed the due date.
func overdue(due *time.Time, ts time.Time) bool {
	return due != nil && ts.After(*due)
}
