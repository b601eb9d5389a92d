// Package auth guards admin routes with bearer tokens and role permissions.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/tastyhub/dashboard-manager/internal/auth/jwt"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/dto"
	gerr "github.com/tastyhub/dashboard-manager/internal/errors"
	"github.com/tastyhub/dashboard-manager/internal/permission"
)

// Config contains the configuration for the auth middleware.
type Config struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTTTL    string `mapstructure:"jwt_ttl"`
}

type Server struct {
	JwtAuth     *jwtauth.JWTAuth
	jwtTTL      time.Duration
	permissions dependency.Permissions
}

// New creates a new auth server.
func New(c *Config, perms dependency.Permissions) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	ttl := 24 * time.Hour
	if c.JWTTTL != "" {
		var err error
		ttl, err = time.ParseDuration(c.JWTTTL)
		if err != nil {
			return nil, fmt.Errorf("can't parse jwt ttl %q: %w", c.JWTTTL, err)
		}
	}
	return &Server{
		JwtAuth:     jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:      ttl,
		permissions: perms,
	}, nil
}

// IssueToken mints a token for subject holding roles. A zero ttl uses the configured one.
func (s *Server) IssueToken(subject string, roles []string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.jwtTTL
	}
	return jwt.NewTokenWithRoles(s.JwtAuth, ttl, subject, roles)
}

// WithAuth verifies the bearer token and stores the caller's permission set
// in the request context. Permissions are loaded once per request.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := jwtauth.TokenFromHeader(r)
		if token == "" {
			render.Render(w, r, dto.ErrUnauthorized(fmt.Errorf("%w: missing bearer token", gerr.ErrUnauthorized)))
			return
		}
		claims, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			render.Render(w, r, dto.ErrUnauthorized(fmt.Errorf("%w: %w", gerr.ErrUnauthorized, err)))
			return
		}

		rows, err := s.permissions.PermissionsByRoles(ctx, claims.Roles)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't load permissions",
				slog.String("subject", claims.Subject),
				slog.String("err", err.Error()),
			)
			render.Render(w, r, dto.ErrInternalServerError("Error loading permissions", err))
			return
		}

		ctx = permission.NewContext(ctx, permission.NewSet(claims.Roles, rows))
		ctx = WithSubject(ctx, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require rejects requests whose permission set lacks subject/module/action.
func Require(subject, module, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !permission.FromContext(r.Context()).Has(subject, module, action) {
				render.Render(w, r, dto.ErrForbidden(fmt.Errorf("%w: %s/%s/%s", gerr.ErrForbidden, subject, module, action)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
