package handlers

import (
	"net/http"
	"time"

	"sorveteria-backend/models"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the public display page from the same data the API
// serves. Pure view: no mutations besides the status recompute that every
// profile read performs.
type PageHandler struct {
	Service *services.Service
}

type diaLinha struct {
	Nome    string
	Abre    string
	Fecha   string
	Fechado bool
}

// Show renders the profile page, or an empty-state page before the first
// create call.
func (h *PageHandler) Show(c *gin.Context) {
	perfil, err := h.Service.GetSorveteria()
	if err != nil {
		c.HTML(http.StatusOK, "perfil.html", gin.H{"Perfil": nil})
		return
	}

	c.HTML(http.StatusOK, "perfil.html", gin.H{
		"Perfil":      perfil,
		"Dias":        diasDaSemana(perfil.HorarioFuncionamento),
		"Depoimentos": depoimentosAprovados(perfil.Depoimentos),
		"Promocoes":   promocoesVisiveis(perfil.Promocoes, h.Service.Store.Now()),
	})
}

func diasDaSemana(h models.HorarioSemanal) []diaLinha {
	nomes := []struct {
		rotulo string
		dia    models.DiaHorario
	}{
		{"Segunda", h.Segunda},
		{"Terça", h.Terca},
		{"Quarta", h.Quarta},
		{"Quinta", h.Quinta},
		{"Sexta", h.Sexta},
		{"Sábado", h.Sabado},
		{"Domingo", h.Domingo},
	}

	linhas := make([]diaLinha, 0, len(nomes))
	for _, n := range nomes {
		linhas = append(linhas, diaLinha{Nome: n.rotulo, Abre: n.dia.Abre, Fecha: n.dia.Fecha, Fechado: n.dia.Fechado})
	}
	return linhas
}

func depoimentosAprovados(deps []models.Depoimento) []models.Depoimento {
	aprovados := make([]models.Depoimento, 0, len(deps))
	for _, d := range deps {
		if d.Status == models.DepoimentoAprovado {
			aprovados = append(aprovados, d)
		}
	}
	return aprovados
}

// promocoesVisiveis hides promotions that already expired but have not been
// swept yet, so the page never shows stale offers.
func promocoesVisiveis(promos []models.Promocao, now time.Time) []models.Promocao {
	hoje := now.Format("2006-01-02")
	visiveis := make([]models.Promocao, 0, len(promos))
	for _, p := range promos {
		if p.Ativa && p.DataValidade >= hoje {
			visiveis = append(visiveis, p)
		}
	}
	return visiveis
}
