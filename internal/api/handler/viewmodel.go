package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/api/flash"
	"github.com/cinerate/rating-system/internal/api/middleware"
	"github.com/cinerate/rating-system/internal/core/domain"
)

// View models handed to the template collaborator. Handlers own these
// types so the templates stay decoupled from domain entities.

type page struct {
	Title string
	User  string
	Role  string
	Flash *flash.Message
}

type indexView struct {
	page
	Movies []*domain.Movie
}

type loginView struct {
	page
	Error    string
	Username string
}

type rateView struct {
	page
	Movies  []*domain.Movie
	Ratings []*domain.Rating
	Errors  string
	Form    rateForm
}

type manageView struct {
	page
	Movies []*domain.Movie
}

type movieFormView struct {
	page
	Action string
	Errors string
	Form   movieForm
}

type ratingsView struct {
	page
	Ratings []*domain.Rating
}

// newPage assembles the fragment shared by every view model: page title,
// the session identity for the navigation bar, and the pending flash.
func newPage(c echo.Context, title string) page {
	p := page{Title: title}
	p.User, _ = c.Get(middleware.CtxUser).(string)
	p.Role, _ = c.Get(middleware.CtxRole).(string)
	if msg, ok := flash.Pop(c); ok {
		p.Flash = &msg
	}
	return p
}
