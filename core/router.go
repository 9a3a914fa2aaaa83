package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps aggregates the collaborators the router needs; tests wire in-memory
// fakes behind the same types.
type Deps struct {
	Auth   AuthService
	Tokens *TokenService
	Songs  *SongService
}

// NewRouter constructs the Gin engine with routes wired.
// Middleware order: request id -> logging -> origin/CORS -> token gate ->
// access policy. The gate runs on every request before any handler; the
// policy middleware is the only place authentication is enforced.
func NewRouter(cfg Config, logger zerolog.Logger, deps Deps) *gin.Engine {
	setupValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(OriginMiddleware(cfg))
	r.Use(TokenGate(deps.Tokens))
	r.Use(EnforcePolicy(DefaultPolicy()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAuthRoutes(r.Group("/auth"), deps)
	registerSongRoutes(r.Group("/api/songs"), deps)

	return r
}
