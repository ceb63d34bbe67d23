package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
	"github.com/cinerate/rating-system/internal/infrastructure/view"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = NewValidator()
	return e
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubSessionStore struct {
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Set(_ context.Context, id string, sess domain.Session) error {
	s.sessions[id] = sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type stubMovieService struct {
	listFn   func(ctx context.Context) ([]*domain.Movie, error)
	getFn    func(ctx context.Context, id string) (*domain.Movie, error)
	createFn func(ctx context.Context, in ports.MovieInput) (*domain.Movie, error)
	updateFn func(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubMovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubMovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.getFn(ctx, id)
}

func (s *stubMovieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, in)
}

func (s *stubMovieService) Update(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubMovieService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubRatingService struct {
	submitFn     func(ctx context.Context, in ports.RatingInput) (*domain.Rating, error)
	listRecentFn func(ctx context.Context) ([]*domain.Rating, error)
	listAllFn    func(ctx context.Context) ([]*domain.Rating, error)
}

func (s *stubRatingService) Submit(ctx context.Context, in ports.RatingInput) (*domain.Rating, error) {
	return s.submitFn(ctx, in)
}

func (s *stubRatingService) ListRecent(ctx context.Context) ([]*domain.Rating, error) {
	if s.listRecentFn == nil {
		return nil, nil
	}
	return s.listRecentFn(ctx)
}

func (s *stubRatingService) ListAll(ctx context.Context) ([]*domain.Rating, error) {
	if s.listAllFn == nil {
		return nil, nil
	}
	return s.listAllFn(ctx)
}
