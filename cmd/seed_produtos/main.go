// seed_produtos genera un script SQL para poblar el catálogo de productos
// a partir de un CSV separado por ';' (nome;descricao;estoque_minimo;unidade).
//
// Uso: go run ./cmd/seed_produtos --input produtos.csv [--output seed.sql] [--encoding auto|latin1|utf8]
// El stock nunca se siembra: todo producto nace con estoque_atual = 0 y solo cambia vía movimientos.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/sanitize"
)

type seedProduct struct {
	nome          string
	descricao     string
	estoqueMinimo int
	unidade       string
}

func main() {
	input := pflag.StringP("input", "i", "produtos.csv", "CSV de entrada")
	output := pflag.StringP("output", "o", "-", "archivo SQL de salida (- = stdout)")
	encoding := pflag.String("encoding", "auto", "codificación del CSV: auto, latin1 o utf8")
	pflag.Parse()

	raw, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	r, err := decoderFor(*encoding, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Codificación: %v\n", err)
		os.Exit(1)
	}

	products, lineErrs := parseCatalog(r)
	for _, e := range lineErrs {
		fmt.Fprintf(os.Stderr, "Ignorada: %v\n", e)
	}

	var out io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := writeSQL(out, products); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d productos, %d líneas ignoradas\n", len(products), len(lineErrs))
}

// decoderFor devuelve un reader UTF-8. En modo auto, un archivo que no es UTF-8 válido se trata como ISO-8859-1.
func decoderFor(encoding string, raw []byte) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "utf8", "utf-8":
		return bytes.NewReader(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))), nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()), nil
	case "auto", "":
		if utf8.Valid(raw) {
			return decoderFor("utf8", raw)
		}
		return decoderFor("latin1", raw)
	}
	return nil, fmt.Errorf("codificación desconocida %q", encoding)
}

// parseCatalog lee el CSV; las líneas inválidas se devuelven como errores y no detienen la carga.
// Nombres repetidos conservan la primera aparición.
func parseCatalog(r io.Reader) ([]seedProduct, []error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		products []seedProduct
		errs     []error
		seen     = make(map[string]bool)
	)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", line, err))
			continue
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nome") {
			continue
		}
		p, err := parseRecord(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", line, err))
			continue
		}
		if seen[p.nome] {
			errs = append(errs, fmt.Errorf("línea %d: nome %q repetido", line, p.nome))
			continue
		}
		seen[p.nome] = true
		products = append(products, p)
	}
	return products, errs
}

func parseRecord(rec []string) (seedProduct, error) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	p := seedProduct{
		nome:          field(0),
		descricao:     sanitize.Text(field(1)),
		estoqueMinimo: entity.EstoqueMinimoPadrao,
		unidade:       field(3),
	}
	if p.nome == "" {
		return p, errors.New("nome vacío")
	}
	if utf8.RuneCountInString(p.nome) > 100 {
		return p, errors.New("nome con más de 100 caracteres")
	}
	if s := field(2); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return p, fmt.Errorf("estoque_minimo inválido %q", s)
		}
		p.estoqueMinimo = n
	}
	if p.unidade == "" {
		p.unidade = entity.UnidadePadrao
	}
	if utf8.RuneCountInString(p.unidade) > 20 {
		return p, errors.New("unidade con más de 20 caracteres")
	}
	return p, nil
}

func writeSQL(w io.Writer, products []seedProduct) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de productos (generado por seed_produtos)\n")
	b.WriteString("-- estoque_atual queda en 0: el stock entra solo vía movimentacoes\n\n")
	if len(products) == 0 {
		b.WriteString("-- sin productos\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO produtos (nome, descricao, estoque_minimo, unidade_medida) VALUES\n")
	for i, p := range products {
		fmt.Fprintf(&b, "  ('%s', '%s', %d, '%s')", escapeSQL(p.nome), escapeSQL(p.descricao), p.estoqueMinimo, escapeSQL(p.unidade))
		if i < len(products)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (nome) DO NOTHING;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
