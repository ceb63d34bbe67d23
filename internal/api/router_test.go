package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/service"
	mongodb "github.com/cinerate/rating-system/internal/infrastructure/db/mongo"
)

type memUserRepo struct {
	users map[string]*domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	u := *user
	u.ID = fmt.Sprintf("u%d", len(r.users)+1)
	r.users[u.Username] = &u
	return &u, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type memMovieRepo struct {
	movies map[string]*domain.Movie
	next   int
}

func (r *memMovieRepo) Create(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	r.next++
	m := *movie
	m.ID = fmt.Sprintf("m%d", r.next)
	r.movies[m.ID] = &m
	return &m, nil
}

func (r *memMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	copy := *m
	return &copy, nil
}

func (r *memMovieRepo) FindAll(_ context.Context) ([]*domain.Movie, error) {
	out := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		copy := *m
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memMovieRepo) Update(_ context.Context, movie *domain.Movie) error {
	m, ok := r.movies[movie.ID]
	if !ok {
		return domain.ErrMovieNotFound
	}
	m.Title = movie.Title
	m.Description = movie.Description
	m.UpdatedAt = movie.UpdatedAt
	return nil
}

func (r *memMovieRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

type memRatingRepo struct {
	ratings []*domain.Rating
	next    int
}

func (r *memRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.next++
	rt := *rating
	rt.ID = fmt.Sprintf("r%d", r.next)
	r.ratings = append(r.ratings, &rt)
	return &rt, nil
}

func (r *memRatingRepo) FindAll(_ context.Context) ([]*domain.Rating, error) {
	return append([]*domain.Rating(nil), r.ratings...), nil
}

func (r *memRatingRepo) FindAllByCreatedDesc(_ context.Context) ([]*domain.Rating, error) {
	out := append([]*domain.Rating(nil), r.ratings...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRatingRepo) DeleteByMovieID(_ context.Context, movieID string) (int64, error) {
	kept := r.ratings[:0]
	var removed int64
	for _, rt := range r.ratings {
		if rt.MovieID == movieID {
			removed++
			continue
		}
		kept = append(kept, rt)
	}
	r.ratings = kept
	return removed, nil
}

type memSessionStore struct {
	sessions map[string]domain.Session
}

func (s *memSessionStore) Set(_ context.Context, id string, sess domain.Session) error {
	s.sessions[id] = sess
	return nil
}

func (s *memSessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memSessionStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// browser drives the server through ServeHTTP while carrying cookies
// between requests, the way a real user agent would.
type browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func (b *browser) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.request(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.request(http.MethodPost, path, form)
}

func mustRedirect(t *testing.T, rec *httptest.ResponseRecorder, target string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != target {
		t.Fatalf("expected redirect to %s, got %q", target, loc)
	}
}

func TestServer_FullScenario(t *testing.T) {
	users := &memUserRepo{users: make(map[string]*domain.User)}
	movies := &memMovieRepo{movies: make(map[string]*domain.Movie)}
	ratings := &memRatingRepo{}
	sessions := &memSessionStore{sessions: make(map[string]domain.Session)}

	// Bootstrap an empty store; running it twice must not duplicate accounts.
	for i := 0; i < 2; i++ {
		if err := mongodb.Seed(context.Background(), users, zerolog.Nop()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if len(users.users) != 2 {
		t.Fatalf("expected exactly admin and viewer, got %d users", len(users.users))
	}
	if u := users.users["admin"]; u == nil || u.Role != domain.RoleAdmin {
		t.Fatalf("expected seeded admin account")
	}
	if u := users.users["viewer"]; u == nil || u.Role != domain.RoleViewer {
		t.Fatalf("expected seeded viewer account")
	}
	if !service.CheckPassword(users.users["admin"].PasswordHash, "admin123") {
		t.Fatalf("seeded admin password must verify")
	}

	e, err := newRouter(routerDeps{
		users:    users,
		movies:   movies,
		ratings:  ratings,
		sessions: sessions,
		secret:   "test-secret",
		ttl:      time.Hour,
		log:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	admin := &browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}

	// Anonymous home page.
	if rec := admin.get("/"); rec.Code != http.StatusOK {
		t.Fatalf("home: expected 200, got %d", rec.Code)
	}

	// Anonymous visitors cannot reach the admin area.
	mustRedirect(t, admin.get("/manage"), "/")

	// Wrong password keeps the login page and creates no session.
	rec := admin.post("/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("expected login failure page, got %d", rec.Code)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("failed login must not create a session")
	}

	// Admin login lands on movie management.
	mustRedirect(t, admin.post("/login", url.Values{"username": {"admin"}, "password": {"admin123"}}), "/manage")
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session after login, got %d", len(sessions.sessions))
	}

	rec = admin.get("/manage")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Login successful!") {
		t.Fatalf("manage after login: %d", rec.Code)
	}

	// Admin adds a movie.
	mustRedirect(t, admin.post("/add_movie", url.Values{"title": {"Heat"}, "description": {"Crime drama"}}), "/manage")
	all, _ := movies.FindAll(context.Background())
	if len(all) != 1 || all[0].Title != "Heat" {
		t.Fatalf("expected one movie named Heat, got %+v", all)
	}
	movieID := all[0].ID

	// Admin edits it.
	mustRedirect(t, admin.post("/edit_movie/"+movieID, url.Values{"title": {"Heat (1995)"}, "description": {"Crime drama"}}), "/manage")
	updated, _ := movies.FindByID(context.Background(), movieID)
	if updated.Title != "Heat (1995)" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}

	// Editing an unknown movie is a terminal 404, not a redirect.
	rec = admin.get("/edit_movie/ghost")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Movie not found") {
		t.Fatalf("expected 404 page, got %d: %s", rec.Code, rec.Body.String())
	}

	// The viewer area is closed to admins.
	mustRedirect(t, admin.get("/view"), "/")
	rec = admin.get("/")
	if !strings.Contains(rec.Body.String(), "Access denied.") {
		t.Fatalf("expected access denied flash on home page")
	}

	// Rating submission needs no session; use a separate anonymous browser.
	anon := &browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
	form := url.Values{"name": {"Alice"}, "movie": {movieID}, "stars": {"5"}, "remarks": {"classic"}}
	mustRedirect(t, anon.post("/rate", form), "/rate")
	if len(ratings.ratings) != 1 {
		t.Fatalf("expected one rating, got %d", len(ratings.ratings))
	}
	if got := ratings.ratings[0]; got.MovieID != movieID || got.MovieTitle != "Heat (1995)" || got.Stars != 5 {
		t.Fatalf("unexpected rating: %+v", got)
	}
	rec = anon.get("/rate")
	if !strings.Contains(rec.Body.String(), "Rating submitted successfully!") {
		t.Fatalf("expected submission flash on rate page")
	}

	// Admin logout ends the session.
	mustRedirect(t, admin.get("/logout"), "/")
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected sessions cleared after logout, got %d", len(sessions.sessions))
	}
	mustRedirect(t, admin.get("/manage"), "/")

	// Viewer login lands on the ratings view.
	viewer := &browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
	mustRedirect(t, viewer.post("/login", url.Values{"username": {"viewer"}, "password": {"viewer123"}}), "/view")

	rec = viewer.get("/view")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Alice") {
		t.Fatalf("expected ratings view with Alice, got %d", rec.Code)
	}

	// The admin area is closed to viewers.
	mustRedirect(t, viewer.get("/manage"), "/")
	mustRedirect(t, viewer.get("/delete_movie/"+movieID), "/")
	if len(movies.movies) != 1 {
		t.Fatalf("viewer must not be able to delete movies")
	}

	// Admin deletes the movie; its ratings go with it.
	admin2 := &browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
	mustRedirect(t, admin2.post("/login", url.Values{"username": {"admin"}, "password": {"admin123"}}), "/manage")
	mustRedirect(t, admin2.get("/delete_movie/"+movieID), "/manage")
	if len(movies.movies) != 0 {
		t.Fatalf("expected movie deleted")
	}
	if len(ratings.ratings) != 0 {
		t.Fatalf("expected ratings cascade-deleted, got %d", len(ratings.ratings))
	}
}
