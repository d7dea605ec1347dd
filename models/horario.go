package models

import "time"

// DiaHorario is one day's opening window. Abre and Fecha are zero-padded
// "HH:MM" strings, so plain string comparison orders them correctly.
type DiaHorario struct {
	Abre    string `json:"abre"`
	Fecha   string `json:"fecha"`
	Fechado bool   `json:"fechado"`
}

// HorarioSemanal is the weekly schedule, one fixed key per day of week.
type HorarioSemanal struct {
	Segunda DiaHorario `json:"segunda"`
	Terca   DiaHorario `json:"terca"`
	Quarta  DiaHorario `json:"quarta"`
	Quinta  DiaHorario `json:"quinta"`
	Sexta   DiaHorario `json:"sexta"`
	Sabado  DiaHorario `json:"sabado"`
	Domingo DiaHorario `json:"domingo"`
}

// Dia returns the schedule entry for a weekday.
func (h HorarioSemanal) Dia(wd time.Weekday) DiaHorario {
	switch wd {
	case time.Monday:
		return h.Segunda
	case time.Tuesday:
		return h.Terca
	case time.Wednesday:
		return h.Quarta
	case time.Thursday:
		return h.Quinta
	case time.Friday:
		return h.Sexta
	case time.Saturday:
		return h.Sabado
	default:
		return h.Domingo
	}
}

// HorarioEspecial overrides the weekly schedule on a specific calendar date.
// Data is a plain "YYYY-MM-DD" string with no time zone.
type HorarioEspecial struct {
	Data      string `json:"data"`
	Abre      string `json:"abre,omitempty"`
	Fecha     string `json:"fecha,omitempty"`
	Fechado   bool   `json:"fechado"`
	Descricao string `json:"descricao,omitempty"`
}
