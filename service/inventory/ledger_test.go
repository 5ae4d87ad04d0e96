package inventory

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type memBook struct{ total, available, reserved int }

type memStore struct{ books map[int64]*memBook }

func newMemStore() *memStore { return &memStore{books: map[int64]*memBook{}} }

func (m *memStore) TakeAvailable(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil || b.available <= 0 {
		return false, nil
	}
	b.available--
	return true, nil
}

func (m *memStore) PutAvailable(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil || b.available+b.reserved >= b.total {
		return false, nil
	}
	b.available++
	return true, nil
}

func (m *memStore) StageReserve(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil || b.available+b.reserved >= b.total {
		return false, nil
	}
	b.reserved++
	return true, nil
}

func (m *memStore) DropReserve(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil || b.reserved <= 0 {
		return false, nil
	}
	b.reserved--
	return true, nil
}

func (m *memStore) UnstageToShelf(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil || b.reserved <= 0 {
		return false, nil
	}
	b.reserved--
	b.available++
	return true, nil
}

func (m *memStore) RetireCopy(_ context.Context, _ *sqlx.Tx, id int64) (bool, error) {
	b := m.books[id]
	if b == nil {
		return false, nil
	}
	b.available = b.total - 1
	return true, nil
}

func TestReserve_LastCopy(t *testing.T) {
	m := newMemStore()
	m.books[1] = &memBook{total: 1, available: 1}
	l := New(m)
	ctx := context.Background()

	ok, err := l.Reserve(ctx, nil, 1)
	require.NoError(t, err)
	require.True(t, ok)

	// second taker loses without touching the counters
	ok, err = l.Reserve(ctx, nil, 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, m.books[1].available)
}

func TestLoanRoundTrip(t *testing.T) {
	m := newMemStore()
	m.books[1] = &memBook{total: 2, available: 2}
	l := New(m)
	ctx := context.Background()

	ok, err := l.Reserve(ctx, nil, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l.Stage(ctx, nil, 1))
	require.Equal(t, 1, m.books[1].reserved)

	require.NoError(t, l.CommitLoan(ctx, nil, 1))
	require.Equal(t, 0, m.books[1].reserved)
	require.Equal(t, 1, m.books[1].available)

	require.NoError(t, l.CommitReturn(ctx, nil, 1))
	require.Equal(t, 2, m.books[1].available)
}

func TestRelease_WithNothingOutstandingPanics(t *testing.T) {
	m := newMemStore()
	m.books[1] = &memBook{total: 2, available: 2}
	l := New(m)

	require.Panics(t, func() {
		_ = l.Release(context.Background(), nil, 1)
	})
}

func TestCommitLoan_EmptyReservePanics(t *testing.T) {
	m := newMemStore()
	m.books[1] = &memBook{total: 2, available: 2}
	l := New(m)

	require.Panics(t, func() {
		_ = l.CommitLoan(context.Background(), nil, 1)
	})
}

func TestRetire_PinsAvailable(t *testing.T) {
	m := newMemStore()
	m.books[1] = &memBook{total: 3, available: 1}
	l := New(m)

	require.NoError(t, l.Retire(context.Background(), nil, 1))
	require.Equal(t, 2, m.books[1].available)
}
