package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const rolesClaim = "roles"

// Claims are the admin identity carried by a dashboard token.
type Claims struct {
	Subject string
	Roles   []string
}

// VerifyToken checks signature and expiry and returns the subject and roles.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	c := &Claims{Subject: t.Subject()}
	raw, ok := t.Get(rolesClaim)
	if !ok {
		return c, nil
	}
	switch v := raw.(type) {
	case []string:
		c.Roles = v
	case []interface{}:
		for _, r := range v {
			s, ok := r.(string)
			if !ok {
				return nil, fmt.Errorf("roles claim holds %T", r)
			}
			c.Roles = append(c.Roles, s)
		}
	case string:
		c.Roles = []string{v}
	default:
		return nil, fmt.Errorf("roles claim holds %T", raw)
	}
	return c, nil
}

// NewTokenWithRoles creates a JWT for subject holding roles. Subject is used
// for activity log attribution.
func NewTokenWithRoles(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string, roles []string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if len(roles) > 0 {
		claims[rolesClaim] = roles
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
