package services

import (
	"fmt"
	"strings"

	"sorveteria-backend/dtos"
	"sorveteria-backend/models"
	"sorveteria-backend/store"
)

// Terms the profile content must mention. The history text must contain
// all of termosHistoria; the differentiators, taken together, must cover
// all of termosDiferenciais. Matching is lowercase substring.
var (
	termosHistoria     = []string{"origem", "tradição", "qualidade"}
	termosDiferenciais = []string{"qualidade", "tradição", "atendimento"}
)

// Service enforces the business rules the store does not: content keyword
// requirements, capacity limits and priority uniqueness. It translates
// store outcomes into typed failures.
type Service struct {
	Store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{Store: st}
}

// GetSorveteria returns the profile with a freshly computed operating status.
func (s *Service) GetSorveteria() (*models.Sorveteria, *Error) {
	if _, ok := s.Store.RecomputeStatus(); !ok {
		return nil, notFound("Sorveteria não cadastrada")
	}
	perfil, _ := s.Store.Get()
	return perfil, nil
}

// CreateOrUpdate validates the full payload, applies the content rules and
// stores the profile: first call creates it with ID 1, later calls
// overwrite every supplied field. The operating status is recomputed after
// the write.
func (s *Service) CreateOrUpdate(req dtos.CreateSorveteriaRequest) (*models.Sorveteria, *Error) {
	var details []FieldError

	if ano := s.Store.Now().Year(); req.AnoFundacao > ano {
		details = append(details, FieldError{
			Field:   "ano_fundacao",
			Message: fmt.Sprintf("deve estar entre 1900 e %d", ano),
		})
	}

	historia := strings.ToLower(req.Historia)
	for _, termo := range termosHistoria {
		if !strings.Contains(historia, termo) {
			details = append(details, FieldError{
				Field:   "historia",
				Message: fmt.Sprintf("deve mencionar %q", termo),
			})
		}
	}

	for _, termo := range termosDiferenciais {
		if !diferenciaisContem(req.Diferenciais, termo) {
			details = append(details, FieldError{
				Field:   "diferenciais",
				Message: fmt.Sprintf("devem incluir %q", termo),
			})
		}
	}

	if len(details) > 0 {
		return nil, validation("Dados da sorveteria inválidos", details)
	}

	perfil := s.Store.SetFull(req)
	s.Store.RecomputeStatus()
	return perfil, nil
}

// UpdatePartial merges the provided fields. Field bounds were already
// checked by the request schema; the keyword rules only apply to full
// creates.
func (s *Service) UpdatePartial(req dtos.UpdateSorveteriaRequest) (*models.Sorveteria, *Error) {
	var details []FieldError
	if req.AnoFundacao != nil {
		if ano := s.Store.Now().Year(); *req.AnoFundacao > ano {
			details = append(details, FieldError{
				Field:   "ano_fundacao",
				Message: fmt.Sprintf("deve estar entre 1900 e %d", ano),
			})
		}
	}
	if len(details) > 0 {
		return nil, validation("Dados da sorveteria inválidos", details)
	}

	perfil, ok := s.Store.UpdatePartial(req)
	if !ok {
		return nil, notFound("Sorveteria não cadastrada")
	}
	s.Store.RecomputeStatus()
	return perfil, nil
}

// AddFoto appends a gallery photo, capped at models.MaxFotos. The cap is
// enforced by the store under its lock.
func (s *Service) AddFoto(req dtos.AddFotoRequest) (*models.Foto, *Error) {
	foto, err := s.Store.AddFoto(req)
	switch err {
	case nil:
		return foto, nil
	case store.ErrFotoLimit:
		return nil, limitExceeded(fmt.Sprintf("Limite de %d fotos atingido", models.MaxFotos))
	default:
		return nil, notFound("Sorveteria não cadastrada")
	}
}

// RemoveFoto deletes a photo by ID.
func (s *Service) RemoveFoto(id int) *Error {
	if !s.Store.RemoveFoto(id) {
		return notFound("Foto não encontrada")
	}
	return nil
}

// AddDepoimento stores a visitor review in pendente state.
func (s *Service) AddDepoimento(req dtos.AddDepoimentoRequest) (*models.Depoimento, *Error) {
	dep, ok := s.Store.AddDepoimento(req)
	if !ok {
		return nil, notFound("Sorveteria não cadastrada")
	}
	return dep, nil
}

// UpdateDepoimentoStatus applies a moderation decision.
func (s *Service) UpdateDepoimentoStatus(id int, status string) (*models.Depoimento, *Error) {
	dep, ok := s.Store.UpdateDepoimentoStatus(id, status)
	if !ok {
		return nil, notFound("Depoimento não encontrado")
	}
	return dep, nil
}

// AddPromocao appends a promotion. The active cap and the priority-1
// uniqueness invariant are enforced by the store under its lock, cap first.
func (s *Service) AddPromocao(req dtos.AddPromocaoRequest) (*models.Promocao, *Error) {
	promo, err := s.Store.AddPromocao(req)
	switch err {
	case nil:
		return promo, nil
	case store.ErrPromocaoLimit:
		return nil, limitExceeded(fmt.Sprintf("Limite de %d promoções ativas atingido", models.MaxPromocoesAtivas))
	case store.ErrPriorityTaken:
		return nil, priorityConflict("Já existe uma promoção ativa com prioridade 1")
	default:
		return nil, notFound("Sorveteria não cadastrada")
	}
}

// RemoveExpiredPromocoes runs the expiry sweep. Always succeeds; returns
// how many promotions were dropped.
func (s *Service) RemoveExpiredPromocoes() int {
	return s.Store.RemoveExpiredPromocoes()
}

// RecomputeStatus recomputes the operating status. Always succeeds; the
// returned string is empty when no profile exists yet.
func (s *Service) RecomputeStatus() string {
	status, _ := s.Store.RecomputeStatus()
	return status
}

func diferenciaisContem(diferenciais []string, termo string) bool {
	for _, d := range diferenciais {
		if strings.Contains(strings.ToLower(d), termo) {
			return true
		}
	}
	return false
}
