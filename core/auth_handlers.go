package core

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type authRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

func registerAuthRoutes(g *gin.RouterGroup, deps Deps) {
	g.POST("/register", func(c *gin.Context) {
		var req authRequest
		if !bindJSON(c, &req) {
			return
		}

		if err := deps.Auth.Register(c.Request.Context(), req.Username, req.Password); err != nil {
			if errors.Is(err, ErrDuplicateUsername) {
				respondError(c, http.StatusConflict, "DUPLICATE_USERNAME", "Username already exists")
				return
			}
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	})

	g.POST("/login", func(c *gin.Context) {
		var req authRequest
		if !bindJSON(c, &req) {
			return
		}

		principal, err := deps.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			// Unknown usernames and wrong passwords produce the same response.
			if errors.Is(err, ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
				return
			}
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
			return
		}

		token, err := deps.Tokens.Issue(principal.Username)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	// /auth is public at the policy level, so this handler checks the
	// principal itself.
	g.GET("/me", func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": p.Username})
	})
}
