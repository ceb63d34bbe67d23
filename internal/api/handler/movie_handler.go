package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/api/flash"
	"github.com/cinerate/rating-system/internal/api/metrics"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// MovieHandler serves the admin movie-management routes. Role gating is
// applied by the router via middleware.RequireRole(domain.RoleAdmin);
// unknown movie ids surface as errors that the central error handler maps
// to the 404 page.
type MovieHandler struct {
	movies ports.MovieService
}

func NewMovieHandler(movies ports.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// Manage handles GET /manage.
func (h *MovieHandler) Manage(c echo.Context) error {
	movies, err := h.movies.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "manage", manageView{page: newPage(c, "Manage Movies"), Movies: movies})
}

// ShowAdd handles GET /add_movie.
func (h *MovieHandler) ShowAdd(c echo.Context) error {
	view := movieFormView{page: newPage(c, "Add Movie"), Action: "/add_movie"}
	return c.Render(http.StatusOK, "movie_form", view)
}

// Add handles POST /add_movie.
func (h *MovieHandler) Add(c echo.Context) error {
	var form movieForm
	if err := c.Bind(&form); err != nil {
		return h.formError(c, "Add Movie", "/add_movie", form, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return h.formError(c, "Add Movie", "/add_movie", form, err.Error())
	}

	if _, err := h.movies.Create(c.Request().Context(), ports.MovieInput{Title: form.Title, Description: form.Description}); err != nil {
		return err
	}

	metrics.MovieMutationsTotal.WithLabelValues("add").Inc()
	flash.Set(c, flash.Success, "Movie added successfully!")
	return c.Redirect(http.StatusSeeOther, "/manage")
}

// ShowEdit handles GET /edit_movie/:id and pre-populates the form.
func (h *MovieHandler) ShowEdit(c echo.Context) error {
	movie, err := h.movies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	view := movieFormView{
		page:   newPage(c, "Edit Movie"),
		Action: "/edit_movie/" + movie.ID,
		Form:   movieForm{Title: movie.Title, Description: movie.Description},
	}
	return c.Render(http.StatusOK, "movie_form", view)
}

// Edit handles POST /edit_movie/:id.
func (h *MovieHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	action := "/edit_movie/" + id

	var form movieForm
	if err := c.Bind(&form); err != nil {
		return h.formError(c, "Edit Movie", action, form, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return h.formError(c, "Edit Movie", action, form, err.Error())
	}

	if _, err := h.movies.Update(c.Request().Context(), id, ports.MovieInput{Title: form.Title, Description: form.Description}); err != nil {
		return err
	}

	metrics.MovieMutationsTotal.WithLabelValues("edit").Inc()
	flash.Set(c, flash.Success, "Movie updated!")
	return c.Redirect(http.StatusSeeOther, "/manage")
}

// Delete handles GET /delete_movie/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.movies.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.MovieMutationsTotal.WithLabelValues("delete").Inc()
	flash.Set(c, flash.Info, "Movie deleted!")
	return c.Redirect(http.StatusSeeOther, "/manage")
}

func (h *MovieHandler) formError(c echo.Context, title, action string, form movieForm, msg string) error {
	view := movieFormView{page: newPage(c, title), Action: action, Errors: msg, Form: form}
	return c.Render(http.StatusOK, "movie_form", view)
}
