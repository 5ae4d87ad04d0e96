package genresvc

import (
	"context"
	"errors"

	"github.com/OlympusNSP/Library2/model"
)

type Repo interface {
	Create(ctx context.Context, g *model.Genre) error
	ByID(ctx context.Context, id int64) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}

type Service interface {
	Create(ctx context.Context, name string) (*model.Genre, error)
	ByID(ctx context.Context, id int64) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string) (*model.Genre, error) {
	if name == "" {
		return nil, errors.New("invalid payload")
	}
	g := &model.Genre{Name: name}
	if err := s.r.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.Genre, error) { return s.r.ByID(ctx, id) }
func (s *service) List(ctx context.Context) ([]model.Genre, error)          { return s.r.List(ctx) }
