package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"claimscore/internal/config"
	"claimscore/internal/models"
)

// Issue signs a bearer token for the credential. Lifetime is cfg.TokenTTL
// (24h unless overridden); the expiry is returned alongside the token so the
// login response can echo it.
func Issue(cfg config.Config, cred models.Credential) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(cfg.TokenTTL)
	claims := jwt.MapClaims{
		"jti":       uuid.NewString(),
		"nameid":    cred.ID,
		"nombre":    cred.Name,
		"apellidos": cred.LastName,
		"email":     cred.Mail,
		"role":      cred.Role,
		"iss":       cfg.JWTIssuer,
		"aud":       cfg.JWTAudience,
		"nbf":       now.Unix(),
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature, issuer, audience and lifetime. Failures collapse
// into one opaque error; callers must not reveal which check failed.
func Verify(cfg config.Config, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	c := Claims{}
	c.Subject, _ = mapc["nameid"].(string)
	c.Name, _ = mapc["nombre"].(string)
	c.LastName, _ = mapc["apellidos"].(string)
	c.Email, _ = mapc["email"].(string)
	c.JWTID, _ = mapc["jti"].(string)
	switch v := mapc["role"].(type) {
	case string:
		c.Roles = []string{v}
	case []interface{}:
		for _, r := range v {
			if s, ok := r.(string); ok {
				c.Roles = append(c.Roles, s)
			}
		}
	}
	return c, nil
}

// MasterClaims is the fixed super-user principal installed by the bypass
// path. It holds all four roles so it authorizes against both tiers.
func MasterClaims() Claims {
	return Claims{
		Subject: "super_user_from_master_token",
		Name:    "Super Usuario",
		Roles: []string{
			RoleAdministrator,
			RoleAdministratorZendesk,
			RoleUser,
			RoleUserZendesk,
		},
	}
}
