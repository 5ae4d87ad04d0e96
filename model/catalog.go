// model/catalog.go
package model

type Author struct {
	ID       int64  `db:"id" json:"id"`
	Fullname string `db:"fullname" json:"fullname"`
}

type Genre struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
