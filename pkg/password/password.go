package password

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Digest calcula el digest SHA-256 del password en texto plano.
// El digest es determinístico a propósito: la comparación la hace el
// procedimiento almacenado (digest contra digest), nunca la aplicación y
// nunca texto plano contra texto plano.
func Digest(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return sum[:]
}

// DigestHex devuelve el digest en hexadecimal minúsculas (para logs de depuración
// de datos NO sensibles, p. ej. seeds de prueba; nunca registrar el texto plano).
func DigestHex(plaintext string) string {
	return hex.EncodeToString(Digest(plaintext))
}

// Caracteres permitidos en passwords temporales: evita ambiguos (0/O, 1/l/I).
const (
	tempLength   = 12
	upperChars   = "ABCDEFGHJKMNPQRSTUVWXYZ"
	lowerChars   = "abcdefghjkmnpqrstuvwxyz"
	digitChars   = "23456789"
	symbolChars  = "!@#$%&*"
	allTempChars = upperChars + lowerChars + digitChars + symbolChars
)

// GenerateTemporary genera un password temporal aleatorio de 12 caracteres con
// al menos una mayúscula, una minúscula, un dígito y un símbolo. Se usa al
// provisionar cuentas: el password viaja por correo y expira a los 3 meses.
func GenerateTemporary() (string, error) {
	buf := make([]byte, tempLength)

	// Garantizar una de cada clase en las primeras posiciones
	classes := []string{upperChars, lowerChars, digitChars, symbolChars}
	for i, class := range classes {
		ch, err := randomChar(class)
		if err != nil {
			return "", err
		}
		buf[i] = ch
	}
	for i := len(classes); i < tempLength; i++ {
		ch, err := randomChar(allTempChars)
		if err != nil {
			return "", err
		}
		buf[i] = ch
	}

	// Barajar para que las clases no queden siempre al inicio
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func randomChar(charset string) (byte, error) {
	idx, err := randomIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[idx], nil
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("password: fuente aleatoria: %w", err)
	}
	return int(v.Int64()), nil
}
