package dto

// CreateProductRequest entrada para crear un producto.
// EstoqueAtual es el stock inicial: se registra como una entrada en el ledger, nunca se escribe directo.
type CreateProductRequest struct {
	Nome          string `json:"nome_produto" validate:"required,min=1,max=100"`
	Descricao     string `json:"descricao_produto"`
	EstoqueAtual  int    `json:"estoque_atual_produto" validate:"min=0,max=2147483647"`
	EstoqueMinimo *int   `json:"estoque_minimo_produto" validate:"omitempty,min=0,max=2147483647"`
	Unidade       string `json:"unidade_medida_produto" validate:"max=20"`
}

// UpdateProductRequest entrada para PUT/PATCH. En PUT el nombre es obligatorio (lo valida el caso de uso).
// El stock actual no se acepta: solo cambia vía movimientos.
type UpdateProductRequest struct {
	Nome          *string `json:"nome_produto" validate:"omitempty,min=1,max=100"`
	Descricao     *string `json:"descricao_produto"`
	EstoqueMinimo *int    `json:"estoque_minimo_produto" validate:"omitempty,min=0,max=2147483647"`
	Unidade       *string `json:"unidade_medida_produto" validate:"omitempty,max=20"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64  `json:"id"`
	Nome          string `json:"nome_produto"`
	Descricao     string `json:"descricao_produto"`
	EstoqueAtual  int    `json:"estoque_atual_produto"`
	EstoqueMinimo int    `json:"estoque_minimo_produto"`
	Unidade       string `json:"unidade_medida_produto"`
}

// ProductListQuery filtros del listado (?busca=, ?estoque_baixo=).
type ProductListQuery struct {
	Busca        string
	EstoqueBaixo bool
}
