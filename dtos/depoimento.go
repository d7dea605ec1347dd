package dtos

// AddDepoimentoRequest validates a visitor-submitted review.
type AddDepoimentoRequest struct {
	NomeCliente string `json:"nome_cliente" binding:"required,min=1,max=100"`
	Texto       string `json:"texto" binding:"required,min=1,max=300"`
	Avaliacao   int    `json:"avaliacao" binding:"required,min=1,max=5"`
}

// UpdateDepoimentoStatusRequest validates a moderation decision.
type UpdateDepoimentoStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendente aprovado rejeitado"`
}
