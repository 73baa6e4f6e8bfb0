package jwt_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/djengua/ecommerce-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "admin@test.com"
	testIssuer = "djengua-test"
)

func newService(t *testing.T) *pkgjwt.Service {
	t.Helper()
	svc, err := pkgjwt.New(testSecret, testIssuer, 30, 90)
	require.NoError(t, err)
	return svc
}

func TestJWT_SecretVacio_FallaAlConstruir(t *testing.T) {
	_, err := pkgjwt.New("", testIssuer, 30, 90)
	assert.Error(t, err, "sin secret el servicio no debe arrancar")
}

func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	svc := newService(t)

	tok, err := svc.Generate(testUserID, "admin", testEmail, false)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testEmail, claims.Email)
}

func TestJWT_RememberMe_ExtiendeVigencia(t *testing.T) {
	svc := newService(t)

	corto, err := svc.Generate(testUserID, "user", testEmail, false)
	require.NoError(t, err)
	largo, err := svc.Generate(testUserID, "user", testEmail, true)
	require.NoError(t, err)

	claimsCorto, err := svc.Parse(corto)
	require.NoError(t, err)
	claimsLargo, err := svc.Parse(largo)
	require.NoError(t, err)

	assert.True(t, claimsLargo.ExpiresAt.Time.After(claimsCorto.ExpiresAt.Time),
		"el token con recuérdame debe vencer estrictamente después que el normal")
}

func TestJWT_TokenExpirado_RetornaErrExpired(t *testing.T) {
	svc := newService(t)

	// Token firmado con el mismo secret pero ya vencido.
	claims := pkgjwt.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: testUserID,
		Role:   "admin",
		Email:  testEmail,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Parse(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestJWT_TokenManipulado_RetornaErrInvalid(t *testing.T) {
	svc := newService(t)

	_, err := svc.Parse("token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

func TestJWT_SecretIncorrecto_RetornaErrInvalid(t *testing.T) {
	svc := newService(t)
	tok, err := svc.Generate(testUserID, "admin", testEmail, false)
	require.NoError(t, err)

	otro, err := pkgjwt.New("otro-secret-completamente-distinto", testIssuer, 30, 90)
	require.NoError(t, err)

	_, err = otro.Parse(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid, "secret incorrecto debe invalidar el token")
}

func TestJWT_RolVacioEsValido_PeroSinUserIDNo(t *testing.T) {
	svc := newService(t)

	// El rol vacío pasa el parseo; la autorización lo rechaza después.
	tok, err := svc.Generate(testUserID, "", testEmail, false)
	require.NoError(t, err)
	claims, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)

	// Sin id el token no identifica a nadie.
	tok, err = svc.Generate("", "admin", testEmail, false)
	require.NoError(t, err)
	_, err = svc.Parse(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}
