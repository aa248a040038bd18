package entity

import (
	"strings"
	"time"
)

// Categorías de movimiento.
const (
	MovementInbound  = "INBOUND"  // entrada
	MovementOutbound = "OUTBOUND" // salida
)

// NormalizeCategory acepta la categoría canónica o los alias ENTRADA/SAIDA.
// Devuelve "" si el valor no es reconocido.
func NormalizeCategory(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case MovementInbound, "ENTRADA":
		return MovementInbound
	case MovementOutbound, "SAIDA", "SAÍDA":
		return MovementOutbound
	}
	return ""
}

// Movement registro inmutable de entrada o salida de stock de un producto.
// Quantity siempre es positiva; el signo lo determina Category.
type Movement struct {
	ID        int64
	ProductID int64
	Category  string
	Quantity  int
	Date      time.Time // asignada por el servidor
	UserID    int64
	Note      string
}

// SignedQuantity devuelve la cantidad con signo según la categoría.
func (m *Movement) SignedQuantity() int {
	if m.Category == MovementOutbound {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementDetail movimiento con los datos de producto y usuario usados en listados.
type MovementDetail struct {
	Movement
	ProductName     string
	UserDisplayName string
}
