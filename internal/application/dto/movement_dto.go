package dto

import "time"

// CreateMovementRequest body para POST /api/movimentacoes/.
// usuario y data_movimentacao los completa el servidor.
type CreateMovementRequest struct {
	Produto    int64  `json:"produto" validate:"required,gt=0"`
	Categoria  string `json:"categoria_movimentacao" validate:"required"`
	Quantidade int    `json:"quantidade_movimentacao" validate:"required,gt=0,max=2147483647"`
	Observacao string `json:"observacao_movimentacao"`
}

// MovementResponse salida de un movimiento. AlertaEstoque solo se informa en salidas
// que dejan el producto en o por debajo del stock mínimo; no se persiste.
type MovementResponse struct {
	ID            int64     `json:"id"`
	Produto       int64     `json:"produto"`
	ProdutoNome   string    `json:"produto_nome"`
	Categoria     string    `json:"categoria_movimentacao"`
	Quantidade    int       `json:"quantidade_movimentacao"`
	Data          time.Time `json:"data_movimentacao"`
	Usuario       int64     `json:"usuario"`
	UsuarioNome   string    `json:"usuario_nome"`
	Observacao    string    `json:"observacao_movimentacao"`
	AlertaEstoque string    `json:"alerta_estoque,omitempty"`
}

// MovementListQuery filtros opcionales del listado (?produto=, ?categoria=).
type MovementListQuery struct {
	Produto   int64
	Categoria string
}
