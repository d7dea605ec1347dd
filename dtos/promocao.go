package dtos

// AddPromocaoRequest validates a new promotion. DataValidade is a plain
// calendar date; expiry is inclusive (kept through that day).
type AddPromocaoRequest struct {
	Titulo       string `json:"titulo" binding:"required,min=1,max=200"`
	Descricao    string `json:"descricao" binding:"required,min=1,max=500"`
	DataValidade string `json:"data_validade" binding:"required,datetime=2006-01-02"`
	Prioridade   int    `json:"prioridade" binding:"required,min=1,max=5"`
	Tipo         string `json:"tipo" binding:"required,oneof=desconto combo novidade fidelidade"`
}
