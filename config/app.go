package config

type App struct {
	Port         string `env:"APP_PORT" default:"8080"`
	DatabaseURL  string `env:"DATABASE_URL,required"`
	ApiNinjasKey string `env:"API_NINJAS_KEY"`
	Env          string `env:"APP_ENV" default:"dev"`

	// lending policy
	MaxBooksPerOrder int `env:"MAX_BOOKS_PER_ORDER" default:"5"`
	MaxRentalBooks   int `env:"MAX_RENTAL_BOOKS" default:"7"`
	RentalDays       int `env:"RENTAL_DAYS" default:"14"`
	MaxViolations    int `env:"MAX_VIOLATIONS" default:"3"`
}
