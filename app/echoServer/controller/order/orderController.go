package order

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/OlympusNSP/Library2/model"
	osvc "github.com/OlympusNSP/Library2/service/order"
)

type Controller struct {
	Svc osvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/orders
func (h *Controller) Create(c echo.Context) error {
	var req CreateOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), req.UserID, req.BookIDs)
	if err != nil {
		h.Log.Error("order create", "err", err)
		switch osvc.Code(err) {
		case osvc.ErrUserNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case osvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case osvc.ErrUserBlocked, osvc.ErrRentalLimit, osvc.ErrBookUnavailable:
			return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /v1/orders/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	out, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		if osvc.Code(err) == osvc.ErrOrderNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		}
		h.Log.Error("order by id", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /v1/orders?page=&size=
func (h *Controller) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	out, err := h.Svc.List(c.Request().Context(), page, size)
	if err != nil {
		h.Log.Error("order list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/orders/:id/start
func (h *Controller) Start(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	items, err := h.Svc.Start(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("order start", "err", err)
		switch osvc.Code(err) {
		case osvc.ErrOrderNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case osvc.ErrUnsupportedTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"order_id": id, "books": items})
}

// POST /v1/orders/books/:id/status
func (h *Controller) ChangeStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req ChangeStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	status, err := model.ParseOrderBookStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	out, err := h.Svc.Transition(c.Request().Context(), id, status)
	if err != nil {
		h.Log.Error("line item transition", "err", err)
		switch osvc.Code(err) {
		case osvc.ErrLineItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case osvc.ErrUnsupportedTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}
