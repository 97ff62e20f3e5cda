package entity

type Movie struct {
	Base
	Title       string  `db:"title"` // unique
	Description string  `db:"description"`
	PosterURL   *string `db:"poster_url"`
}
