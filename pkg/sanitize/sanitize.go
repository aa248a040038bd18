package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// maxPasses limita el desanidado de entidades codificadas varias veces (&amp;lt;...).
const maxPasses = 4

// Text elimina todo el HTML de un texto libre (descripción, observación) y recorta espacios.
// Las entidades se decodifican antes de sanitizar, hasta que el texto queda estable, para que
// "&lt;script&gt;" no reaparezca como etiqueta. El resultado se guarda sin entidades.
func Text(s string) string {
	plain := html.UnescapeString(s)
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(plain))
		if next == plain {
			return strings.TrimSpace(plain)
		}
		plain = next
	}
	return strings.TrimSpace(strict.Sanitize(plain))
}
