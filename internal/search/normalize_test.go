package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djengua/ecommerce-api/internal/search"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "arbol de navidad", search.Fold("  Árbol de Navidad "))
	assert.Equal(t, "nino", search.Fold("NIÑO"))
	assert.Equal(t, "", search.Fold("   "))
}

func TestNormalizeSKU_FormaCanonica(t *testing.T) {
	assert.Equal(t, "CAFE-001", search.NormalizeSKU(" café-001 "))
	assert.Equal(t, "ABC123", search.NormalizeSKU("abc 123"))
}
