// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/OlympusNSP/Library2/model"
	metadatarepo "github.com/OlympusNSP/Library2/repository/metadata"
	booksvc "github.com/OlympusNSP/Library2/service/book"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error
	byIDFn   func(ctx context.Context, id int64) (*model.Book, error)
	listFn   func(ctx context.Context, limit, offset int) ([]model.Book, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) Create(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error {
	return m.createFn(ctx, b, authorIDs, genreIDs)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, limit, offset int) ([]model.Book, error) {
	return m.listFn(ctx, limit, offset)
}
func (m *repoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

type metaMock struct {
	lookupFn func(title string) (*metadatarepo.BookFacts, error)
}

func (m *metaMock) Lookup(title string) (*metadatarepo.BookFacts, error) { return m.lookupFn(title) }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{}, nil, discard())
	if _, err := s.Create(context.Background(), "", 2001, "desc", 3, nil, nil); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := s.Create(context.Background(), "title", 2001, "desc", 0, nil, nil); err == nil {
		t.Fatal("expected error for zero count")
	}
}

func TestCreate_InitializesCounters(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error {
			b.ID = 7
			return nil
		},
	}
	s := booksvc.New(m, nil, discard())
	b, err := s.Create(context.Background(), "Dune", 1965, "sand", 4, []int64{1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Total != 4 || b.Available != 4 || b.Reserved != 0 {
		t.Fatalf("counters got total=%d available=%d reserved=%d; want 4 4 0", b.Total, b.Available, b.Reserved)
	}
}

func TestCreate_EnrichesMissingFacts(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error { return nil },
	}
	meta := &metaMock{
		lookupFn: func(title string) (*metadatarepo.BookFacts, error) {
			return &metadatarepo.BookFacts{Title: "Dune", Author: "Frank Herbert", Year: 1965}, nil
		},
	}
	s := booksvc.New(m, meta, discard())
	b, err := s.Create(context.Background(), "Dune", 0, "", 2, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Year != 1965 {
		t.Fatalf("year got %d; want 1965", b.Year)
	}
	if b.Description == "" {
		t.Fatal("description not backfilled")
	}
}

func TestCreate_LookupFailureDoesNotBlockSave(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error { return nil },
	}
	meta := &metaMock{
		lookupFn: func(title string) (*metadatarepo.BookFacts, error) {
			return nil, errors.New("upstream down")
		},
	}
	s := booksvc.New(m, meta, discard())
	if _, err := s.Create(context.Background(), "Dune", 0, "", 2, nil, nil); err != nil {
		t.Fatalf("save should survive lookup failure, got %v", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id int64) (*model.Book, error) { return &model.Book{ID: id}, nil },
		listFn:   func(ctx context.Context, limit, offset int) ([]model.Book, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := booksvc.New(m, nil, discard())

	if _, err := s.ByID(context.Background(), 9); err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if _, err := s.List(context.Background(), 0, 20); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if err := s.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
