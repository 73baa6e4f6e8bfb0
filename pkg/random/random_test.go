package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djengua/ecommerce-api/pkg/random"
)

func TestText_LongitudYAlfabeto(t *testing.T) {
	s := random.Text(8)
	assert.Len(t, s, 8)
	for _, r := range s {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "carácter fuera del alfabeto: %q", r)
	}
}

func TestText_LongitudInvalidaUsaDefault(t *testing.T) {
	assert.Len(t, random.Text(0), 8)
	assert.Len(t, random.Text(-3), 8)
}

// Con muestreo por rechazo ningún carácter debería aparecer con una frecuencia
// muy por encima de la uniforme; el umbral es laxo para no hacer flaky el test.
func TestText_DistribucionSinSesgo(t *testing.T) {
	counts := map[rune]int{}
	const muestras = 2000
	for i := 0; i < muestras; i++ {
		for _, r := range random.Text(32) {
			counts[r]++
		}
	}
	total := muestras * 32
	esperado := float64(total) / 62
	for r, c := range counts {
		assert.Less(t, float64(c), esperado*1.15, "carácter %q sobre-representado", r)
	}
}
