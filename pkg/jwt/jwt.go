package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores tipados para que el middleware distinga expiración de manipulación.
var (
	ErrExpired = errors.New("token expirado")
	ErrInvalid = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role y Email viajan en el token para que las respuestas de sesión no requieran
// una segunda consulta; la visibilidad de datos siempre se recalcula contra la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Role   string `json:"role"` // "user" | "admin" | "superadmin"
	Email  string `json:"email"`
}

// Service firma y verifica tokens. El secret vacío es un error de arranque,
// no un error por petición.
type Service struct {
	secret       string
	issuer       string
	expiration   time.Duration
	rememberLife time.Duration
}

// New construye el servicio. Falla si el secret está vacío.
func New(secret, issuer string, expirationDays, rememberDays int) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: JWT_SECRET no está definido")
	}
	if expirationDays <= 0 {
		expirationDays = 30
	}
	if rememberDays <= expirationDays {
		rememberDays = expirationDays * 3
	}
	return &Service{
		secret:       secret,
		issuer:       issuer,
		expiration:   time.Duration(expirationDays) * 24 * time.Hour,
		rememberLife: time.Duration(rememberDays) * 24 * time.Hour,
	}, nil
}

// Generate genera un token JWT firmado con id, role y email.
// Con rememberMe la vigencia se extiende a RememberDays.
func (s *Service) Generate(userID, role, email string, rememberMe bool) (string, error) {
	now := time.Now()
	life := s.expiration
	if rememberMe {
		life = s.rememberLife
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(life)),
		},
		UserID: userID,
		Role:   role,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Parse valida el token y devuelve los claims.
// Retorna ErrExpired si venció y ErrInvalid si está malformado o la firma no coincide.
// Un token válido de un usuario ya eliminado NO es error aquí: eso lo detecta el
// middleware al no encontrar el usuario.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	if claims.UserID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
