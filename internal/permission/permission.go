// Package permission resolves role grants into a lookup set.
package permission

import (
	"context"

	"github.com/tastyhub/dashboard-manager/internal/entity"
	"golang.org/x/exp/slices"
)

type grant struct {
	subject, module, action string
}

// Set is the union of permissions granted to a caller's roles.
type Set struct {
	roles  []string
	grants map[grant]struct{}
}

// NewSet builds a Set from role permission rows.
func NewSet(roles []string, rows []entity.RolePermission) *Set {
	s := &Set{
		roles:  slices.Clone(roles),
		grants: make(map[grant]struct{}, len(rows)),
	}
	for _, r := range rows {
		if !slices.Contains(roles, r.Role) {
			continue
		}
		s.grants[grant{r.Subject, r.Module, r.Action}] = struct{}{}
	}
	return s
}

// Has reports whether any grant covers subject/module/action. A "*" in a
// grant matches any value in that position.
func (s *Set) Has(subject, module, action string) bool {
	if s == nil {
		return false
	}
	for _, sub := range []string{subject, entity.Wildcard} {
		for _, mod := range []string{module, entity.Wildcard} {
			for _, act := range []string{action, entity.Wildcard} {
				if _, ok := s.grants[grant{sub, mod, act}]; ok {
					return true
				}
			}
		}
	}
	return false
}

// Roles returns a copy of the caller's roles.
func (s *Set) Roles() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.roles)
}

type ctxKey struct{}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Set) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the Set stored in ctx, or nil.
func FromContext(ctx context.Context) *Set {
	s, _ := ctx.Value(ctxKey{}).(*Set)
	return s
}
