package auth

import "context"

// Role claim values. These are the verbatim strings the system of record
// stores in the rol column and the token carries as the role claim; the
// ordinal prefixes are part of the value.
const (
	RoleAdministrator        = "1 - Administrador"
	RoleUser                 = "2 - Usuario"
	RoleUserZendesk          = "3 - Usuario Zendesk"
	RoleAdministratorZendesk = "4 - Administrador Zendesk"
)

// UserTierRoles is every role allowed on read endpoints. AdministratorTier
// is the subset allowed to mutate complaints.
var (
	UserTierRoles          = []string{RoleAdministrator, RoleAdministratorZendesk, RoleUser, RoleUserZendesk}
	AdministratorTierRoles = []string{RoleAdministrator, RoleAdministratorZendesk}
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// Claims is the per-request principal. Built from a verified token or the
// master bypass, discarded at request end.
type Claims struct {
	Subject  string
	Name     string
	LastName string
	Email    string
	Roles    []string
	JWTID    string
}

func (c Claims) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(claimsKey).(Claims); ok {
		return v
	}
	return Claims{}
}

func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}
