package dtos

import "sorveteria-backend/models"

// DiaHorarioRequest validates a single day's opening window.
// datetime=15:04 pins the zero-padded HH:MM format.
type DiaHorarioRequest struct {
	Abre    string `json:"abre" binding:"required,datetime=15:04"`
	Fecha   string `json:"fecha" binding:"required,datetime=15:04"`
	Fechado bool   `json:"fechado"`
}

// HorarioSemanalRequest requires all seven day keys.
type HorarioSemanalRequest struct {
	Segunda DiaHorarioRequest `json:"segunda" binding:"required"`
	Terca   DiaHorarioRequest `json:"terca" binding:"required"`
	Quarta  DiaHorarioRequest `json:"quarta" binding:"required"`
	Quinta  DiaHorarioRequest `json:"quinta" binding:"required"`
	Sexta   DiaHorarioRequest `json:"sexta" binding:"required"`
	Sabado  DiaHorarioRequest `json:"sabado" binding:"required"`
	Domingo DiaHorarioRequest `json:"domingo" binding:"required"`
}

// HorarioEspecialRequest validates a special-date override.
type HorarioEspecialRequest struct {
	Data      string `json:"data" binding:"required,datetime=2006-01-02"`
	Abre      string `json:"abre" binding:"omitempty,datetime=15:04"`
	Fecha     string `json:"fecha" binding:"omitempty,datetime=15:04"`
	Fechado   bool   `json:"fechado"`
	Descricao string `json:"descricao" binding:"omitempty,max=100"`
}

// CreateSorveteriaRequest is the full create-or-update payload. The
// ano_fundacao upper bound (current year) and the history/differentiator
// keyword rules are enforced by the service, since they are not
// expressible as static tags.
type CreateSorveteriaRequest struct {
	Nome                 string                   `json:"nome" binding:"required,min=1,max=200"`
	Logo                 string                   `json:"logo" binding:"required,url"`
	Slogan               string                   `json:"slogan" binding:"omitempty,max=50"`
	Historia             string                   `json:"historia" binding:"required,min=200,max=800"`
	AnoFundacao          int                      `json:"ano_fundacao" binding:"required,min=1900"`
	Diferenciais         []string                 `json:"diferenciais" binding:"required,min=3,max=6,dive,max=100"`
	Fundadores           string                   `json:"fundadores" binding:"required,max=200"`
	HorarioFuncionamento *HorarioSemanalRequest   `json:"horario_funcionamento" binding:"required"`
	HorariosEspeciais    []HorarioEspecialRequest `json:"horarios_especiais" binding:"omitempty,dive"`
	MissaoVisao          string                   `json:"missao_visao" binding:"omitempty,max=200"`
	Valores              []string                 `json:"valores" binding:"omitempty,max=5,dive,max=50"`
}

// UpdateSorveteriaRequest carries the same field bounds with everything
// optional; nil means "leave unchanged".
type UpdateSorveteriaRequest struct {
	Nome                 *string                  `json:"nome" binding:"omitempty,min=1,max=200"`
	Logo                 *string                  `json:"logo" binding:"omitempty,url"`
	Slogan               *string                  `json:"slogan" binding:"omitempty,max=50"`
	Historia             *string                  `json:"historia" binding:"omitempty,min=200,max=800"`
	AnoFundacao          *int                     `json:"ano_fundacao" binding:"omitempty,min=1900"`
	Diferenciais         []string                 `json:"diferenciais" binding:"omitempty,min=3,max=6,dive,max=100"`
	Fundadores           *string                  `json:"fundadores" binding:"omitempty,max=200"`
	HorarioFuncionamento *HorarioSemanalRequest   `json:"horario_funcionamento" binding:"omitempty"`
	HorariosEspeciais    []HorarioEspecialRequest `json:"horarios_especiais" binding:"omitempty,dive"`
	MissaoVisao          *string                  `json:"missao_visao" binding:"omitempty,max=200"`
	Valores              []string                 `json:"valores" binding:"omitempty,max=5,dive,max=50"`
}

func (d DiaHorarioRequest) ToModel() models.DiaHorario {
	return models.DiaHorario{Abre: d.Abre, Fecha: d.Fecha, Fechado: d.Fechado}
}

func (h HorarioSemanalRequest) ToModel() models.HorarioSemanal {
	return models.HorarioSemanal{
		Segunda: h.Segunda.ToModel(),
		Terca:   h.Terca.ToModel(),
		Quarta:  h.Quarta.ToModel(),
		Quinta:  h.Quinta.ToModel(),
		Sexta:   h.Sexta.ToModel(),
		Sabado:  h.Sabado.ToModel(),
		Domingo: h.Domingo.ToModel(),
	}
}

func (e HorarioEspecialRequest) ToModel() models.HorarioEspecial {
	return models.HorarioEspecial{
		Data:      e.Data,
		Abre:      e.Abre,
		Fecha:     e.Fecha,
		Fechado:   e.Fechado,
		Descricao: e.Descricao,
	}
}

// HorariosEspeciaisToModel converts an override list.
func HorariosEspeciaisToModel(in []HorarioEspecialRequest) []models.HorarioEspecial {
	out := make([]models.HorarioEspecial, 0, len(in))
	for _, e := range in {
		out = append(out, e.ToModel())
	}
	return out
}
