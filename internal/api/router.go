package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinerate/rating-system/internal/api/handler"
	"github.com/cinerate/rating-system/internal/api/middleware"
	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
	"github.com/cinerate/rating-system/internal/core/service"
	"github.com/cinerate/rating-system/internal/infrastructure/config"
	mongodb "github.com/cinerate/rating-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cinerate/rating-system/internal/infrastructure/db/redis"
	"github.com/cinerate/rating-system/internal/infrastructure/view"
)

// routerDeps gathers the collaborators the router wires together. Tests
// construct it directly with in-memory implementations.
type routerDeps struct {
	users    ports.UserRepository
	movies   ports.MovieRepository
	ratings  ports.RatingRepository
	sessions ports.SessionStore
	secret   string
	ttl      time.Duration
	ready    echo.HandlerFunc
	log      zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered, backed by
// the MongoDB repositories and the Redis session store.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	return newRouter(routerDeps{
		users:    mongodb.NewUserRepository(db),
		movies:   mongodb.NewMovieRepository(db),
		ratings:  mongodb.NewRatingRepository(db),
		sessions: redisdb.NewSessionStore(rdb, cfg.SessionTTL),
		secret:   cfg.SessionSecret,
		ttl:      cfg.SessionTTL,
		ready:    handler.NewReadinessHandler(db, rdb).Readiness,
		log:      log,
	})
}

func newRouter(deps routerDeps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("movierating"))
	e.Use(middleware.Session(deps.sessions, deps.secret))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.users, deps.log)
	movieService := service.NewMovieService(deps.movies, deps.ratings, deps.log)
	ratingService := service.NewRatingService(deps.ratings, deps.movies, deps.log)

	authHandler := handler.NewAuthHandler(authService, deps.sessions, deps.secret, deps.ttl)
	movieHandler := handler.NewMovieHandler(movieService)
	ratingHandler := handler.NewRatingHandler(ratingService, movieService)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	viewerOnly := middleware.RequireRole(domain.RoleViewer)

	// --- Public routes ---
	e.GET("/", ratingHandler.Index)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/rate", ratingHandler.ShowRate)
	e.POST("/rate", ratingHandler.Rate)

	// --- Admin routes ---
	e.GET("/manage", movieHandler.Manage, adminOnly)
	e.GET("/add_movie", movieHandler.ShowAdd, adminOnly)
	e.POST("/add_movie", movieHandler.Add, adminOnly)
	e.GET("/edit_movie/:id", movieHandler.ShowEdit, adminOnly)
	e.POST("/edit_movie/:id", movieHandler.Edit, adminOnly)
	e.GET("/delete_movie/:id", movieHandler.Delete, adminOnly)

	// --- Viewer routes ---
	e.GET("/view", ratingHandler.ViewAll, viewerOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.ready != nil {
		e.GET("/health/ready", deps.ready)
	}
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
