package request

// Operator console payloads. The console is JSON-driven tooling, unlike the
// form-posting public pages.

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

type MovieInfoRequest struct {
	MovieID  int64  `json:"movie_id" validate:"required,min=1"`
	Director string `json:"director" validate:"required,max=200"`
	Actor1   string `json:"actor1" validate:"max=50"`
	Actor2   string `json:"actor2" validate:"max=50"`
	Actor3   string `json:"actor3" validate:"max=50"`
	Actor4   string `json:"actor4" validate:"max=50"`
	Year     int    `json:"year" validate:"required,min=1888,max=2100"`
}

type MovieInfoUpdateRequest struct {
	Director *string `json:"director,omitempty" validate:"omitempty,max=200"`
	Actor1   *string `json:"actor1,omitempty" validate:"omitempty,max=50"`
	Actor2   *string `json:"actor2,omitempty" validate:"omitempty,max=50"`
	Actor3   *string `json:"actor3,omitempty" validate:"omitempty,max=50"`
	Actor4   *string `json:"actor4,omitempty" validate:"omitempty,max=50"`
	Year     *int    `json:"year,omitempty" validate:"omitempty,min=1888,max=2100"`
}
