package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/OlympusNSP/Library2/app/echoServer/controller/author"
	"github.com/OlympusNSP/Library2/app/echoServer/controller/book"
	"github.com/OlympusNSP/Library2/app/echoServer/controller/genre"
	"github.com/OlympusNSP/Library2/app/echoServer/controller/order"
)

type C struct {
	Book   *book.Controller
	Author *author.Controller
	Genre  *genre.Controller
	Order  *order.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Catalog
	v1.GET("/books", c.Book.List)
	v1.GET("/books/:id", c.Book.Detail)
	v1.POST("/books", c.Book.Create)
	v1.DELETE("/books/:id", c.Book.Delete)

	v1.GET("/authors", c.Author.List)
	v1.GET("/authors/:id", c.Author.ByID)
	v1.POST("/authors", c.Author.Create)
	v1.DELETE("/authors/:id", c.Author.Delete)

	v1.GET("/genres", c.Genre.List)
	v1.GET("/genres/:id", c.Genre.ByID)
	v1.POST("/genres", c.Genre.Create)

	// Orders & lending lifecycle
	v1.POST("/orders", c.Order.Create)
	v1.GET("/orders", c.Order.List)
	v1.GET("/orders/:id", c.Order.ByID)
	v1.POST("/orders/:id/start", c.Order.Start)
	v1.POST("/orders/books/:id/status", c.Order.ChangeStatus)
}
