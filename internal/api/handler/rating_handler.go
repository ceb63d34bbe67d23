package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/api/flash"
	"github.com/cinerate/rating-system/internal/api/metrics"
	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// RatingHandler serves the public home and rate routes plus the
// viewer-only ratings listing.
type RatingHandler struct {
	ratings ports.RatingService
	movies  ports.MovieService
}

func NewRatingHandler(ratings ports.RatingService, movies ports.MovieService) *RatingHandler {
	return &RatingHandler{ratings: ratings, movies: movies}
}

// Index handles GET /: all movies, open to everyone.
func (h *RatingHandler) Index(c echo.Context) error {
	movies, err := h.movies.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", indexView{page: newPage(c, "Home"), Movies: movies})
}

// ShowRate handles GET /rate: the rate form plus existing ratings,
// newest first. No session is required.
func (h *RatingHandler) ShowRate(c echo.Context) error {
	return h.renderRate(c, rateForm{}, "")
}

// Rate handles POST /rate. A valid submission persists exactly one rating
// and redirects back to /rate so a browser refresh cannot resubmit.
func (h *RatingHandler) Rate(c echo.Context) error {
	var form rateForm
	if err := c.Bind(&form); err != nil {
		return h.renderRate(c, form, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderRate(c, form, err.Error())
	}

	_, err := h.ratings.Submit(c.Request().Context(), ports.RatingInput{
		Name:    form.Name,
		MovieID: form.MovieID,
		Stars:   form.Stars,
		Remarks: form.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieNotFound):
			return h.renderRate(c, form, "selected movie no longer exists")
		case errors.Is(err, domain.ErrInvalidRating):
			return h.renderRate(c, form, "stars must be between 1 and 5")
		}
		return err
	}

	metrics.RatingsSubmittedTotal.Inc()
	flash.Set(c, flash.Success, "Rating submitted successfully!")
	return c.Redirect(http.StatusSeeOther, "/rate")
}

// ViewAll handles GET /view: every rating; the router enforces the
// viewer role.
func (h *RatingHandler) ViewAll(c echo.Context) error {
	ratings, err := h.ratings.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "view", ratingsView{page: newPage(c, "All Ratings"), Ratings: ratings})
}

func (h *RatingHandler) renderRate(c echo.Context, form rateForm, errMsg string) error {
	movies, err := h.movies.List(c.Request().Context())
	if err != nil {
		return err
	}
	ratings, err := h.ratings.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}
	view := rateView{
		page:    newPage(c, "Rate a Movie"),
		Movies:  movies,
		Ratings: ratings,
		Errors:  errMsg,
		Form:    form,
	}
	return c.Render(http.StatusOK, "rate", view)
}
