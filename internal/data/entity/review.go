package entity

type Review struct {
	Base
	UserID     int64   `db:"user_id"`
	MovieID    int64   `db:"movie_id"`
	Rating     int     `db:"rating"` // 1-5
	ReviewText *string `db:"review_text"`

	// Populated by queries that join the author and movie
	Username   string `db:"-"`
	MovieTitle string `db:"-"`
}
