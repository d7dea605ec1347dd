package models

import "time"

// Moderation statuses for testimonials. New entries always start pendente.
const (
	DepoimentoPendente  = "pendente"
	DepoimentoAprovado  = "aprovado"
	DepoimentoRejeitado = "rejeitado"
)

// Depoimento is a customer review. Only aprovado entries count toward the
// profile's average rating; pendente and rejeitado remain stored but are
// excluded from the computation.
type Depoimento struct {
	ID          int       `json:"id"`
	NomeCliente string    `json:"nome_cliente"`
	Texto       string    `json:"texto"`
	Avaliacao   int       `json:"avaliacao"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
