// Package main library lending API.
//
// @title           Library2 API
// @version         1.0
// @description     Library service: catalog (books, authors, genres) and the
// @description     order lifecycle for reserving, lending and reclaiming copies.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/OlympusNSP/Library2/app/echoServer"
	authorctrl "github.com/OlympusNSP/Library2/app/echoServer/controller/author"
	bookctrl "github.com/OlympusNSP/Library2/app/echoServer/controller/book"
	genrectrl "github.com/OlympusNSP/Library2/app/echoServer/controller/genre"
	orderctrl "github.com/OlympusNSP/Library2/app/echoServer/controller/order"
	"github.com/OlympusNSP/Library2/app/echoServer/validation"
	"github.com/OlympusNSP/Library2/config"
	authorrepo "github.com/OlympusNSP/Library2/repository/author"
	bookrepo "github.com/OlympusNSP/Library2/repository/book"
	genrerepo "github.com/OlympusNSP/Library2/repository/genre"
	metadatarepo "github.com/OlympusNSP/Library2/repository/metadata"
	orderrepo "github.com/OlympusNSP/Library2/repository/order"
	userrepo "github.com/OlympusNSP/Library2/repository/user"
	authorsvc "github.com/OlympusNSP/Library2/service/author"
	booksvc "github.com/OlympusNSP/Library2/service/book"
	genresvc "github.com/OlympusNSP/Library2/service/genre"
	"github.com/OlympusNSP/Library2/service/inventory"
	ordersvc "github.com/OlympusNSP/Library2/service/order"
	"github.com/OlympusNSP/Library2/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	ar := authorrepo.New(db)
	gr := genrerepo.New(db)
	or := orderrepo.New(db)
	ur := userrepo.New(db)

	var mr metadatarepo.Repo
	if cfg.ApiNinjasKey != "" {
		mr = metadatarepo.NewHTTP(cfg.ApiNinjasKey)
	}

	// services
	bs := booksvc.New(br, mr, log)
	as := authorsvc.New(ar)
	gs := genresvc.New(gr)
	led := inventory.New(br)
	osvc := ordersvc.New(db, or, br, ur, led, cfg, log)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	authorC := &authorctrl.Controller{Svc: as, V: v, Log: log}
	genreC := &genrectrl.Controller{Svc: gs, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: osvc, V: v, Log: log}

	// echo
	e := echo.New()
	e.JSONSerializer = echoServer.JSONSerializer{}
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Book:   bookC,
		Author: authorC,
		Genre:  genreC,
		Order:  orderC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
