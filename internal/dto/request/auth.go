package request

type LoginRequest struct {
	Username   string `json:"username" validate:"required,max=150"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Password1 string `json:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}
