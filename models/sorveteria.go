package models

import (
	"time"
)

// Operating status values. StatusAbrindoEmBreve is never produced by the
// recompute routine and is not accepted on any payload; it only exists on
// profiles constructed directly with it.
const (
	StatusAberto         = "aberto"
	StatusFechado        = "fechado"
	StatusAbrindoEmBreve = "abrindo-em-breve"
)

// Sorveteria is the singleton shop profile. At most one instance exists;
// its ID is fixed at 1 on first creation.
type Sorveteria struct {
	ID                   int               `json:"id"`
	Nome                 string            `json:"nome"`
	Logo                 string            `json:"logo"`
	Slogan               string            `json:"slogan,omitempty"`
	Historia             string            `json:"historia"`
	AnoFundacao          int               `json:"ano_fundacao"`
	Diferenciais         []string          `json:"diferenciais"`
	Fundadores           string            `json:"fundadores"`
	HorarioFuncionamento HorarioSemanal    `json:"horario_funcionamento"`
	HorariosEspeciais    []HorarioEspecial `json:"horarios_especiais"`
	StatusFuncionamento  string            `json:"status_funcionamento"`
	Fotos                []Foto            `json:"fotos"`
	Depoimentos          []Depoimento      `json:"depoimentos"`
	AvaliacaoMedia       *float64          `json:"avaliacao_media"`
	TotalAvaliacoes      int               `json:"total_avaliacoes"`
	Promocoes            []Promocao        `json:"promocoes"`
	MissaoVisao          string            `json:"missao_visao,omitempty"`
	Valores              []string          `json:"valores"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
