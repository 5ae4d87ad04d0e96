package ordersvc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/OlympusNSP/Library2/model"
)

// Policy is the sole writer of a user's eligibility fields: the violation
// count, the blocked flag, and the number of books currently held.
type Policy struct {
	users          UserStore
	maxRentalBooks int
	maxViolations  int
	log            *slog.Logger
}

func NewPolicy(users UserStore, maxRentalBooks, maxViolations int, log *slog.Logger) *Policy {
	return &Policy{users: users, maxRentalBooks: maxRentalBooks, maxViolations: maxViolations, log: log}
}

// CheckEligible rejects blocked users and users whose holdings would exceed
// the concurrent-rental cap if requested more books were handed to them.
func (p *Policy) CheckEligible(u *model.User, requested int) error {
	if u.Blocked {
		return makeErr(ErrUserBlocked, fmt.Sprintf("user %d is blocked", u.ID))
	}
	if u.BooksHeld+requested > p.maxRentalBooks {
		return makeErr(ErrRentalLimit, fmt.Sprintf(
			"user %d holds %d books; %d more exceeds the rental limit of %d",
			u.ID, u.BooksHeld, requested, p.maxRentalBooks))
	}
	return nil
}

// AddViolation records one overdue or loss incident. Not idempotent: each
// call increments, so a transition must call it at most once per incident.
func (p *Policy) AddViolation(ctx context.Context, tx *sqlx.Tx, userID int64) error {
	violations, blocked, err := p.users.AddViolation(ctx, tx, userID, p.maxViolations)
	if err != nil {
		return err
	}
	if blocked {
		p.log.Warn("user blocked by violation threshold", "user_id", userID, "violations", violations)
	} else {
		p.log.Info("violation recorded", "user_id", userID, "violations", violations)
	}
	return nil
}

// RentalStarted bumps the user's concurrent-holdings count.
func (p *Policy) RentalStarted(ctx context.Context, tx *sqlx.Tx, userID int64) error {
	ok, err := p.users.AdjustBooksHeld(ctx, tx, userID, 1)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("policy: held-count increment for unknown user %d", userID))
	}
	return nil
}

// RentalEnded drops the user's concurrent-holdings count.
func (p *Policy) RentalEnded(ctx context.Context, tx *sqlx.Tx, userID int64) error {
	ok, err := p.users.AdjustBooksHeld(ctx, tx, userID, -1)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("policy: held-count underflow for user %d", userID))
	}
	return nil
}
