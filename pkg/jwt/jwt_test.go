package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:          "test-secret-key-for-unit-tests",
	Issuer:          "talento-hr-test",
	Audience:        "talento-hr-test-clients",
	ExpirationHours: 24,
}

var testIdentity = pkgjwt.Identity{
	UserID:   42,
	FullName: "Ana Torres",
	Email:    "ana.torres@example.com",
	RoleName: "HR Manager",
	RoleID:   3,
	StatusID: 1,
}

// Generate y Parse deben ser inversos: todos los claims de identidad vuelven
// intactos.
func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)

	id, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

// El token jamás transporta permisos: la lista se resuelve por request contra
// la base. Aquí se decodifica el payload y se verifica que no exista el claim.
func TestJWT_TokenSinClaimDePermisos(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, testIdentity)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &claims))
	assert.NotContains(t, claims, "permissions")
	assert.Contains(t, claims, "sub")
	assert.Contains(t, claims, "exp")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	cfg := testCfg
	cfg.ExpirationHours = -1 // emitido ya vencido

	tok, err := pkgjwt.Generate(cfg, testIdentity)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(cfg, tok)
	assert.Error(t, err, "token expirado debe rechazarse sin tolerancia de reloj")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, testIdentity)
	require.NoError(t, err)

	otherCfg := testCfg
	otherCfg.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(otherCfg, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_FirmaAlterada_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, testIdentity)
	require.NoError(t, err)

	// Alterar el último carácter de la firma
	last := tok[len(tok)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := tok[:len(tok)-1] + string(replacement)
	require.NotEqual(t, tok, tampered)

	_, err = pkgjwt.Parse(testCfg, tampered)
	assert.Error(t, err, "un bit cambiado en la firma debe invalidar el token")
}

func TestJWT_EmisorIncorrecto_RetornaError(t *testing.T) {
	cfg := testCfg
	cfg.Issuer = "otro-emisor"
	tok, err := pkgjwt.Generate(cfg, testIdentity)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.Error(t, err, "el issuer debe coincidir exactamente")
}

func TestJWT_AudienciaIncorrecta_RetornaError(t *testing.T) {
	cfg := testCfg
	cfg.Audience = "otra-audiencia"
	tok, err := pkgjwt.Generate(cfg, testIdentity)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.Error(t, err, "la audience debe coincidir exactamente")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d", "token.invalido.aqui"} {
		_, err := pkgjwt.Parse(testCfg, tok)
		assert.Error(t, err, "token %q debe rechazarse", tok)
	}
}

func TestJWT_SecretVacio_NoEmite(t *testing.T) {
	cfg := testCfg
	cfg.Secret = ""
	_, err := pkgjwt.Generate(cfg, testIdentity)
	assert.Error(t, err)
}

// Dos tokens emitidos para la misma identidad comparten estructura (tres
// segmentos) y verifican con el mismo secret.
func TestJWT_EstructuraDeTresSegmentos(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, testIdentity)
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)
}
