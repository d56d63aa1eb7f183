package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minitweet/api/internal/api/handler"
	"github.com/minitweet/api/internal/api/middleware"
	"github.com/minitweet/api/internal/core/ports"
)

// Deps carries everything the router needs. DB and Redis are only used by
// the readiness probe; the probe is skipped when either is absent.
type Deps struct {
	Users     ports.UserService
	Tweets    ports.TweetService
	DB        *sqlx.DB
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("minitweet"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Users)
	userHandler := handler.NewUserHandler(d.Users)
	socialHandler := handler.NewSocialHandler(d.Users)
	tweetHandler := handler.NewTweetHandler(d.Tweets)
	healthHandler := handler.NewHealthHandler()
	authGate := middleware.Auth(d.JWTSecret)

	// --- Open routes ---
	e.GET("/ping", healthHandler.Ping)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/users/:user_id", userHandler.Get)
	e.GET("/timeline/:user_id", tweetHandler.PublicTimeline)

	if d.DB != nil && d.Redis != nil {
		readiness := handler.NewReadinessHandler(d.DB, d.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	// --- Token-gated routes ---
	e.POST("/tweet", tweetHandler.Post, authGate)
	e.POST("/follow", socialHandler.Follow, authGate)
	e.POST("/unfollow", socialHandler.Unfollow, authGate)
	e.GET("/timeline", tweetHandler.OwnTimeline, authGate)

	return e
}
