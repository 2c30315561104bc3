package password_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/pkg/password"
)

// El digest debe ser determinístico: la base compara digest contra digest, y
// eso solo funciona si el mismo texto produce siempre los mismos bytes.
func TestDigest_Deterministico(t *testing.T) {
	a := password.Digest("Secreta#2024")
	b := password.Digest("Secreta#2024")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32, "SHA-256 produce 32 bytes")
}

func TestDigest_UnCaracterCambiaTodo(t *testing.T) {
	a := password.Digest("Secreta#2024")
	b := password.Digest("secreta#2024")
	assert.NotEqual(t, a, b, "cambiar un carácter debe cambiar el digest")
}

func TestDigest_VacioTambienDigiere(t *testing.T) {
	// El password vacío se rechaza antes, en el caso de uso; el digest en sí
	// no valida entrada.
	assert.Len(t, password.Digest(""), 32)
}

func TestDigestHex_CoincideConDigest(t *testing.T) {
	plain := "Temporal!123"
	assert.Equal(t, hex.EncodeToString(password.Digest(plain)), password.DigestHex(plain))
}

func TestGenerateTemporary_LongitudYClases(t *testing.T) {
	pw, err := password.GenerateTemporary()
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	assert.True(t, hasUpper, "debe incluir mayúscula")
	assert.True(t, hasLower, "debe incluir minúscula")
	assert.True(t, hasDigit, "debe incluir dígito")
	assert.True(t, hasSymbol, "debe incluir símbolo")
}

func TestGenerateTemporary_SinCaracteresAmbiguos(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := password.GenerateTemporary()
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(pw, "0O1lI"),
			"no debe contener caracteres ambiguos: %q", pw)
	}
}

func TestGenerateTemporary_NoRepiteValores(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pw, err := password.GenerateTemporary()
		require.NoError(t, err)
		assert.False(t, seen[pw], "password temporal repetido: %q", pw)
		seen[pw] = true
	}
}
