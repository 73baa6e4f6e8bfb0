package random

import "crypto/rand"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxByte es el múltiplo de len(alphabet) más alto que cabe en un byte; los
// valores por encima se descartan para no sesgar hacia los primeros caracteres.
const maxByte = 256 - 256%len(alphabet)

// Text genera una cadena aleatoria de n caracteres alfanuméricos,
// usada para contraseñas temporales generadas por el administrador.
func Text(n int) string {
	if n <= 0 {
		n = 8
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			// rand.Read sobre el CSPRNG del sistema no falla en la práctica
			panic("random: " + err.Error())
		}
		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
