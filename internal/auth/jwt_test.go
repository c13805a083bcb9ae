package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"claimscore/internal/config"
	"claimscore/internal/models"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "claims-api",
		JWTAudience: "claims-clients",
		TokenTTL:    24 * time.Hour,
	}
}

func testCredential() models.Credential {
	return models.Credential{
		ID:       "6f1b0c1e-8a62-4a0e-9a13-54b0a1f6a001",
		User:     "jdoe",
		Name:     "Juan",
		LastName: "Doe",
		Mail:     "jdoe@example.com",
		Role:     RoleUser,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	cfg := testConfig()
	cred := testCredential()

	token, exp, err := Issue(cfg, cred)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// expiry is wall clock + TTL; allow a small skew window
	require.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), exp, 30*time.Second)

	claims, err := Verify(cfg, token)
	require.NoError(t, err)
	require.Equal(t, cred.ID, claims.Subject)
	require.Equal(t, cred.Name, claims.Name)
	require.Equal(t, cred.LastName, claims.LastName)
	require.Equal(t, cred.Mail, claims.Email)
	require.Equal(t, []string{RoleUser}, claims.Roles)
	require.NotEmpty(t, claims.JWTID)
}

func TestIssueFreshTokenIDs(t *testing.T) {
	cfg := testConfig()
	t1, _, err := Issue(cfg, testCredential())
	require.NoError(t, err)
	t2, _, err := Issue(cfg, testCredential())
	require.NoError(t, err)

	c1, err := Verify(cfg, t1)
	require.NoError(t, err)
	c2, err := Verify(cfg, t2)
	require.NoError(t, err)
	require.NotEqual(t, c1.JWTID, c2.JWTID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	token, _, err := Issue(cfg, testCredential())
	require.NoError(t, err)

	other := cfg
	other.JWTSecret = "another-secret"
	_, err = Verify(other, token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuerOrAudience(t *testing.T) {
	cfg := testConfig()
	token, _, err := Issue(cfg, testCredential())
	require.NoError(t, err)

	badIss := cfg
	badIss.JWTIssuer = "someone-else"
	_, err = Verify(badIss, token)
	require.Error(t, err)

	badAud := cfg
	badAud.JWTAudience = "other-clients"
	_, err = Verify(badAud, token)
	require.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"jti":    "expired",
		"nameid": "x",
		"role":   RoleUser,
		"iss":    cfg.JWTIssuer,
		"aud":    cfg.JWTAudience,
		"nbf":    now.Add(-2 * time.Hour).Unix(),
		"exp":    now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = Verify(cfg, token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify(testConfig(), "not-a-jwt-at-all")
	require.Error(t, err)
}

func TestMasterClaims(t *testing.T) {
	c := MasterClaims()
	require.Equal(t, "super_user_from_master_token", c.Subject)
	require.Equal(t, "Super Usuario", c.Name)
	require.True(t, c.HasAnyRole(UserTierRoles...))
	require.True(t, c.HasAnyRole(AdministratorTierRoles...))
}

func TestHasAnyRole(t *testing.T) {
	c := Claims{Roles: []string{RoleUserZendesk}}
	require.True(t, c.HasAnyRole(UserTierRoles...))
	require.False(t, c.HasAnyRole(AdministratorTierRoles...))
	require.False(t, Claims{}.HasAnyRole(UserTierRoles...))
}
