package booksvc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/OlympusNSP/Library2/model"
	metadatarepo "github.com/OlympusNSP/Library2/repository/metadata"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book, authorIDs, genreIDs []int64) error
	ByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, limit, offset int) ([]model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, title string, year int16, description string, count int, authorIDs, genreIDs []int64) (*model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, page, size int) ([]model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r    Repo
	meta metadatarepo.Repo // nil when no API key is configured
	log  *slog.Logger
}

func New(r Repo, meta metadatarepo.Repo, log *slog.Logger) Service {
	return &service{r: r, meta: meta, log: log}
}

func (s *service) Create(ctx context.Context, title string, year int16, description string, count int, authorIDs, genreIDs []int64) (*model.Book, error) {
	if title == "" || count < 1 {
		return nil, errors.New("invalid payload")
	}

	// Best-effort enrichment: a failed lookup never blocks the save.
	if s.meta != nil && (description == "" || year == 0) {
		facts, err := s.meta.Lookup(title)
		if err != nil {
			s.log.Warn("book facts lookup failed", "title", title, "err", err)
		} else if facts != nil {
			if description == "" && facts.Author != "" {
				description = facts.Title + " by " + facts.Author
			}
			if year == 0 {
				year = facts.Year
			}
		}
	}

	b := &model.Book{Title: title, Year: year, Description: description, Total: count}
	if err := s.r.Create(ctx, b, authorIDs, genreIDs); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) List(ctx context.Context, page, size int) ([]model.Book, error) {
	if size <= 0 || size > 100 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return s.r.List(ctx, size, page*size)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}
