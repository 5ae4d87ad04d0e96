package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:         getenv("APP_PORT", "8080"),
		DatabaseURL:  must("DATABASE_URL"),
		ApiNinjasKey: os.Getenv("API_NINJAS_KEY"),
		Env:          getenv("APP_ENV", "dev"),

		MaxBooksPerOrder: getint("MAX_BOOKS_PER_ORDER", 5),
		MaxRentalBooks:   getint("MAX_RENTAL_BOOKS", 7),
		RentalDays:       getint("RENTAL_DAYS", 14),
		MaxViolations:    getint("MAX_VIOLATIONS", 3),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
