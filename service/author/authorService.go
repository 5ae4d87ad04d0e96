package authorsvc

import (
	"context"
	"errors"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Author) error
	ByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context, limit, offset int) ([]model.Author, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, fullname string) (*model.Author, error)
	ByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context, page, size int) ([]model.Author, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, fullname string) (*model.Author, error) {
	if fullname == "" {
		return nil, errors.New("invalid payload")
	}
	a := &model.Author{Fullname: fullname}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.Author, error) { return s.r.ByID(ctx, id) }

func (s *service) List(ctx context.Context, page, size int) ([]model.Author, error) {
	if size <= 0 || size > 100 {
		size = 100
	}
	if page < 0 {
		page = 0
	}
	return s.r.List(ctx, size, page*size)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
