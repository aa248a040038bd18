package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/pkg/sanitize"
)

func TestText_EliminaHTML(t *testing.T) {
	assert.Equal(t, "Caixa com 100", sanitize.Text(`<b>Caixa</b> com <script>alert(1)</script>100`))
}

func TestText_ConservaTextoPlano(t *testing.T) {
	assert.Equal(t, "Parafuso 3/8 & porca", sanitize.Text("  Parafuso 3/8 & porca  "))
}

func TestText_Vacio(t *testing.T) {
	assert.Equal(t, "", sanitize.Text(""))
}

func TestText_EntidadesNoReviven(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"escapado", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"numerico", "&#60;img src=x onerror=alert(1)&#62;"},
		{"doble", "&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitize.Text(tt.in)
			assert.NotContains(t, got, "<script")
			assert.NotContains(t, got, "<img")
		})
	}
}

func TestText_Idempotente(t *testing.T) {
	in := `Caixa &lt;b&gt;grande&lt;/b&gt; "azul" & verde`
	once := sanitize.Text(in)
	assert.Equal(t, `Caixa grande "azul" & verde`, once)
	assert.Equal(t, once, sanitize.Text(once))
}
