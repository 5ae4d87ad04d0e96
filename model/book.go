// model/book.go
package model

// Book carries the catalog fields plus the three inventory counters.
// Total is fixed once the book is created; Available and Reserved move as
// order line items walk through their lifecycle. Copies on loan or lost are
// the deficit Total - Available - Reserved.
type Book struct {
	ID          int64    `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Year        int16    `db:"year" json:"year"`
	Description string   `db:"description" json:"description"`
	Total       int      `db:"total" json:"total"`
	Available   int      `db:"available" json:"available"`
	Reserved    int      `db:"reserved" json:"reserved"`
	Authors     []Author `db:"-" json:"authors,omitempty"`
	Genres      []Genre  `db:"-" json:"genres,omitempty"`
}
