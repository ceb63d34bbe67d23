package handler

// Form payloads bound from the HTML forms. Validation tags mirror the
// form-level constraints; messages are produced by the echoValidator.

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type rateForm struct {
	Name    string `form:"name"    validate:"required"`
	MovieID string `form:"movie"   validate:"required"`
	Stars   int    `form:"stars"   validate:"required,min=1,max=5"`
	Remarks string `form:"remarks"`
}

type movieForm struct {
	Title       string `form:"title"       validate:"required"`
	Description string `form:"description" validate:"required"`
}
