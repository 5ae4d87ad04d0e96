package order

type CreateOrderReq struct {
	UserID  int64   `json:"user_id" validate:"required,gt=0"`
	BookIDs []int64 `json:"book_ids" validate:"required,min=1,dive,gt=0"`
}

type ChangeStatusReq struct {
	Status string `json:"status" validate:"required"`
}
