// model/user.go
package model

// User holds the rental-eligibility state. Account credentials live in the
// identity service that fronts this one, so only lending fields are kept here.
type User struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	Email      string `db:"email" json:"email"`
	Blocked    bool   `db:"blocked" json:"blocked"`
	Violations int    `db:"violations" json:"violations"`
	BooksHeld  int    `db:"books_held" json:"books_held"`
}
