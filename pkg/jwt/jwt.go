package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config parámetros de emisión/validación de tokens. El secret llega desde la
// configuración del proceso (pkg/config lo exige en el arranque).
type Config struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

// Identity datos del usuario autenticado que viajan dentro del token.
type Identity struct {
	UserID   int
	FullName string
	Email    string
	RoleName string
	RoleID   int
	StatusID int
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Los permisos NO se incluyen: se consultan frescos en cada request para que un
// cambio de rol/permiso surta efecto sin re-login.
type Claims struct {
	jwt.RegisteredClaims
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	RoleName string `json:"role"`
	RoleID   int    `json:"role_id"`
	StatusID int    `json:"status_id"`
}

// UserID devuelve el Subject como id numérico de usuario.
func (c *Claims) UserID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, fmt.Errorf("jwt: subject no numérico: %w", err)
	}
	return id, nil
}

// Identity reconstruye la identidad embebida en los claims.
func (c *Claims) Identity() (Identity, error) {
	id, err := c.UserID()
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:   id,
		FullName: c.FullName,
		Email:    c.Email,
		RoleName: c.RoleName,
		RoleID:   c.RoleID,
		StatusID: c.StatusID,
	}, nil
}

// Generate genera un token JWT HS256 firmado con la identidad dada.
// La expiración es siempre emisión + duración configurada; nunca se extiende por uso.
func Generate(cfg Config, id Identity) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   strconv.Itoa(id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpirationHours) * time.Hour)),
		},
		FullName: id.FullName,
		Email:    id.Email,
		RoleName: id.RoleName,
		RoleID:   id.RoleID,
		StatusID: id.StatusID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma, emisor, audiencia y expiración, y devuelve los claims.
// La expiración se valida sin tolerancia de reloj (leeway cero): un token
// vencido por un segundo ya es inválido.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
