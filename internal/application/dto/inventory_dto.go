package dto

// ReplenishmentSuggestion sugerencia de reposición para un producto en o bajo el stock mínimo.
type ReplenishmentSuggestion struct {
	Produto            int64  `json:"produto"`
	ProdutoNome        string `json:"produto_nome"`
	Unidade            string `json:"unidade_medida_produto"`
	EstoqueAtual       int    `json:"estoque_atual_produto"`
	EstoqueMinimo      int    `json:"estoque_minimo_produto"`
	EstoqueIdeal       int    `json:"estoque_ideal"`       // ceil(mínimo * 1,5)
	QuantidadeSugerida int    `json:"quantidade_sugerida"` // ideal - atual
	Prioridade         int    `json:"prioridade"`          // 1 = más urgente
}
