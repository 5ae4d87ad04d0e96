package genre

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	genresvc "github.com/OlympusNSP/Library2/service/genre"
)

type CreateGenreReq struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type Controller struct {
	Svc genresvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/genres
func (h *Controller) Create(c echo.Context) error {
	var req CreateGenreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	g, err := h.Svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		h.Log.Error("genre create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, g)
}

// GET /v1/genres/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	g, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "genre not found"})
		}
		h.Log.Error("genre by id", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}

// GET /v1/genres
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("genre list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
