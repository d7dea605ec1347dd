package models

// Promotion types accepted by the API.
var TiposPromocao = []string{"desconto", "combo", "novidade", "fidelidade"}

// MaxPromocoesAtivas caps how many promotions may be active at once.
const MaxPromocoesAtivas = 3

// Promocao is a time-bounded offer. DataValidade is a plain "YYYY-MM-DD"
// string; the expiry sweep keeps promotions through their expiry date and
// removes them the day after. At most one active promotion may hold
// prioridade 1.
type Promocao struct {
	ID           int    `json:"id"`
	Titulo       string `json:"titulo"`
	Descricao    string `json:"descricao"`
	DataValidade string `json:"data_validade"`
	Prioridade   int    `json:"prioridade"`
	Tipo         string `json:"tipo"`
	Ativa        bool   `json:"ativa"`
}
