package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testTenantID = "00000000-0000-0000-0000-000000000002"
)

// El token generado debe poder parsearse y devolver los mismos claims.
func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testTenantID, "admin", "talento-test", 60)
	require.NoError(t, err, "debe generarse un token válido")
	require.NotEmpty(t, tok)

	userID, tenantID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testTenantID, tenantID)
	assert.Equal(t, "admin", role)
}

// Un token firmado con otro secret debe rechazarse.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testTenantID, "employee", "talento-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "la firma con otro secret debe ser inválida")
}

// Un token expirado debe rechazarse.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", "talento-test", -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token con expiración pasada debe ser inválido")
}

// Generar sin secret debe fallar (nunca firmar con clave vacía).
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testTenantID, "admin", "talento-test", 60)
	assert.Error(t, err)
}
