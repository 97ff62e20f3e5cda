package entity

// MovieInfo holds extended metadata for a movie. Modeled one-to-many but
// zero-or-one per movie in practice.
type MovieInfo struct {
	BaseSimple
	MovieID  int64  `db:"movie_id"`
	Director string `db:"director"`
	Actor1   string `db:"actor1"`
	Actor2   string `db:"actor2"`
	Actor3   string `db:"actor3"`
	Actor4   string `db:"actor4"`
	Year     int    `db:"year"`

	// MovieTitle is populated by queries that join the movie
	MovieTitle string `db:"-"`
}

// Actors returns the non-empty cast names in billing order
func (mi *MovieInfo) Actors() []string {
	var actors []string
	for _, a := range []string{mi.Actor1, mi.Actor2, mi.Actor3, mi.Actor4} {
		if a != "" {
			actors = append(actors, a)
		}
	}
	return actors
}
