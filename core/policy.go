package core

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessLevel is the authentication a route requires.
type AccessLevel int

const (
	// LevelPublic routes are reachable with or without a principal.
	LevelPublic AccessLevel = iota
	// LevelAuthenticated routes require a principal established by the gate.
	LevelAuthenticated
)

// PolicyRule maps a route pattern to a required access level. A pattern
// ending in "/" matches as a prefix; anything else matches exactly.
type PolicyRule struct {
	Pattern string
	Level   AccessLevel
}

// AccessPolicy is an ordered rule set evaluated per request; the first
// matching rule wins and unmatched routes require authentication. It is
// built once at startup and never mutated.
type AccessPolicy struct {
	rules []PolicyRule
}

func NewAccessPolicy(rules ...PolicyRule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// DefaultPolicy mirrors the route table: health and auth endpoints are
// public, everything else needs a valid token.
func DefaultPolicy() *AccessPolicy {
	return NewAccessPolicy(
		PolicyRule{Pattern: "/healthz", Level: LevelPublic},
		PolicyRule{Pattern: "/auth/", Level: LevelPublic},
	)
}

// LevelFor returns the access level required for path.
func (p *AccessPolicy) LevelFor(path string) AccessLevel {
	for _, r := range p.rules {
		if strings.HasSuffix(r.Pattern, "/") {
			if strings.HasPrefix(path, r.Pattern) {
				return r.Level
			}
			continue
		}
		if path == r.Pattern {
			return r.Level
		}
	}
	return LevelAuthenticated
}

// EnforcePolicy rejects requests to protected routes that carry no
// principal. The body is the same whether the token was missing, invalid,
// or expired.
func EnforcePolicy(policy *AccessPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.LevelFor(c.Request.URL.Path) == LevelPublic {
			c.Next()
			return
		}
		if _, ok := CurrentPrincipal(c); !ok {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}
