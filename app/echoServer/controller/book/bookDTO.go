package book

type CreateBookReq struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Year        int16   `json:"year"`
	Description string  `json:"description"`
	Count       int     `json:"count" validate:"required,gte=1"`
	AuthorIDs   []int64 `json:"author_ids" validate:"required,min=1,dive,gt=0"`
	GenreIDs    []int64 `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}
