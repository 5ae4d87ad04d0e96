package ordersvc

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OlympusNSP/Library2/model"
)

func newTestPolicy(f *fakeStore) *Policy {
	return NewPolicy(f, 7, 3, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCheckEligible_OK(t *testing.T) {
	p := newTestPolicy(newFakeStore())
	u := &model.User{ID: 1, BooksHeld: 3}
	require.NoError(t, p.CheckEligible(u, 4)) // exactly at the cap of 7
}

func TestCheckEligible_Blocked(t *testing.T) {
	p := newTestPolicy(newFakeStore())
	u := &model.User{ID: 1, Blocked: true}
	err := p.CheckEligible(u, 1)
	require.Equal(t, ErrUserBlocked, Code(err))
}

func TestCheckEligible_OverCap(t *testing.T) {
	p := newTestPolicy(newFakeStore())
	u := &model.User{ID: 1, BooksHeld: 5}
	err := p.CheckEligible(u, 3)
	require.Equal(t, ErrRentalLimit, Code(err))
}

func TestAddViolation_BlocksAtThreshold(t *testing.T) {
	f := newFakeStore()
	p := newTestPolicy(f)
	seedUser(f, 1).Violations = 1

	require.NoError(t, p.AddViolation(context.Background(), nil, 1))
	require.Equal(t, 2, f.users[1].Violations)
	require.False(t, f.users[1].Blocked)

	require.NoError(t, p.AddViolation(context.Background(), nil, 1))
	require.Equal(t, 3, f.users[1].Violations)
	require.True(t, f.users[1].Blocked)
}

func TestRentalEnded_UnderflowPanics(t *testing.T) {
	f := newFakeStore()
	p := newTestPolicy(f)
	seedUser(f, 1) // holds nothing

	require.Panics(t, func() {
		_ = p.RentalEnded(context.Background(), nil, 1)
	})
}
