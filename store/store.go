package store

import (
	"errors"
	"math"
	"sync"
	"time"

	"sorveteria-backend/dtos"
	"sorveteria-backend/models"
)

// Failures the store reports for rules it enforces under its own lock.
var (
	ErrNoProfile     = errors.New("sorveteria not created")
	ErrFotoLimit     = errors.New("photo limit reached")
	ErrPromocaoLimit = errors.New("active promotion limit reached")
	ErrPriorityTaken = errors.New("an active promotion already holds priority 1")
)

// Store holds the single Sorveteria record in memory along with the three
// monotonic counters that hand out photo, testimonial and promotion IDs.
// One lock guards every mutation so derived-field recomputes always see
// the write that triggered them. Nothing is persisted; a restart starts
// empty.
type Store struct {
	mu     sync.RWMutex
	perfil *models.Sorveteria

	fotoID       int
	depoimentoID int
	promocaoID   int

	// Now is the wall clock used for timestamps, expiry and the
	// operating-status computation. Tests pin it.
	Now func() time.Time
}

func New() *Store {
	return &Store{Now: time.Now}
}

// Get returns a snapshot of the current profile, or false when none has
// been created yet. All exported operations return deep copies so callers
// can read and marshal them after the lock is released while other
// requests mutate the live record.
func (s *Store) Get() (*models.Sorveteria, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.perfil == nil {
		return nil, false
	}
	return s.snapshot(), true
}

// SetFull creates the profile on first call (ID fixed at 1) or overwrites
// every supplied field on later calls. Sub-entity lists and their derived
// fields survive a replace; they are managed by their own operations.
func (s *Store) SetFull(req dtos.CreateSorveteriaRequest) *models.Sorveteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()

	if s.perfil == nil {
		s.perfil = &models.Sorveteria{
			ID:                   1,
			Nome:                 req.Nome,
			Logo:                 req.Logo,
			Slogan:               req.Slogan,
			Historia:             req.Historia,
			AnoFundacao:          req.AnoFundacao,
			Diferenciais:         req.Diferenciais,
			Fundadores:           req.Fundadores,
			HorarioFuncionamento: req.HorarioFuncionamento.ToModel(),
			HorariosEspeciais:    dtos.HorariosEspeciaisToModel(req.HorariosEspeciais),
			StatusFuncionamento:  models.StatusFechado,
			Fotos:                []models.Foto{},
			Depoimentos:          []models.Depoimento{},
			Promocoes:            []models.Promocao{},
			Valores:              valoresOuVazio(req.Valores),
			MissaoVisao:          req.MissaoVisao,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		return s.snapshot()
	}

	p := s.perfil
	p.Nome = req.Nome
	p.Logo = req.Logo
	p.Slogan = req.Slogan
	p.Historia = req.Historia
	p.AnoFundacao = req.AnoFundacao
	p.Diferenciais = req.Diferenciais
	p.Fundadores = req.Fundadores
	p.HorarioFuncionamento = req.HorarioFuncionamento.ToModel()
	p.HorariosEspeciais = dtos.HorariosEspeciaisToModel(req.HorariosEspeciais)
	p.MissaoVisao = req.MissaoVisao
	p.Valores = valoresOuVazio(req.Valores)
	p.UpdatedAt = now
	return s.snapshot()
}

// UpdatePartial merges only the provided fields over the existing profile.
func (s *Store) UpdatePartial(req dtos.UpdateSorveteriaRequest) (*models.Sorveteria, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return nil, false
	}

	p := s.perfil
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Logo != nil {
		p.Logo = *req.Logo
	}
	if req.Slogan != nil {
		p.Slogan = *req.Slogan
	}
	if req.Historia != nil {
		p.Historia = *req.Historia
	}
	if req.AnoFundacao != nil {
		p.AnoFundacao = *req.AnoFundacao
	}
	if req.Diferenciais != nil {
		p.Diferenciais = req.Diferenciais
	}
	if req.Fundadores != nil {
		p.Fundadores = *req.Fundadores
	}
	if req.HorarioFuncionamento != nil {
		p.HorarioFuncionamento = req.HorarioFuncionamento.ToModel()
	}
	if req.HorariosEspeciais != nil {
		p.HorariosEspeciais = dtos.HorariosEspeciaisToModel(req.HorariosEspeciais)
	}
	if req.MissaoVisao != nil {
		p.MissaoVisao = *req.MissaoVisao
	}
	if req.Valores != nil {
		p.Valores = req.Valores
	}
	p.UpdatedAt = s.Now()
	return s.snapshot(), true
}

// AddFoto appends a photo with the next sequential ID, enforcing the
// gallery cap while the lock is held so concurrent adds cannot breach it.
// Ordem is the gallery length + 1 at insertion time and is never
// renumbered, so removals leave gaps.
func (s *Store) AddFoto(req dtos.AddFotoRequest) (*models.Foto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return nil, ErrNoProfile
	}
	if len(s.perfil.Fotos) >= models.MaxFotos {
		return nil, ErrFotoLimit
	}

	s.fotoID++
	foto := models.Foto{
		ID:        s.fotoID,
		URL:       req.URL,
		Descricao: req.Descricao,
		Categoria: req.Categoria,
		Ordem:     len(s.perfil.Fotos) + 1,
	}
	s.perfil.Fotos = append(s.perfil.Fotos, foto)
	s.perfil.UpdatedAt = s.Now()
	return &foto, nil
}

// RemoveFoto deletes a photo by ID. Remaining photos keep their ordem.
func (s *Store) RemoveFoto(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return false
	}

	for i, f := range s.perfil.Fotos {
		if f.ID == id {
			s.perfil.Fotos = append(s.perfil.Fotos[:i], s.perfil.Fotos[i+1:]...)
			s.perfil.UpdatedAt = s.Now()
			return true
		}
	}
	return false
}

// AddDepoimento appends a review in pendente state and recomputes the
// average. It intentionally does not touch the profile's UpdatedAt,
// unlike every other mutator; pending product clarification.
func (s *Store) AddDepoimento(req dtos.AddDepoimentoRequest) (*models.Depoimento, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return nil, false
	}

	s.depoimentoID++
	dep := models.Depoimento{
		ID:          s.depoimentoID,
		NomeCliente: req.NomeCliente,
		Texto:       req.Texto,
		Avaliacao:   req.Avaliacao,
		Status:      models.DepoimentoPendente,
		CreatedAt:   s.Now(),
	}
	s.perfil.Depoimentos = append(s.perfil.Depoimentos, dep)
	s.recomputeAvaliacao()
	return &dep, true
}

// UpdateDepoimentoStatus sets the moderation status and recomputes the
// average over aprovado entries.
func (s *Store) UpdateDepoimentoStatus(id int, status string) (*models.Depoimento, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return nil, false
	}

	for i := range s.perfil.Depoimentos {
		if s.perfil.Depoimentos[i].ID == id {
			s.perfil.Depoimentos[i].Status = status
			s.recomputeAvaliacao()
			dep := s.perfil.Depoimentos[i]
			return &dep, true
		}
	}
	return nil, false
}

// AddPromocao appends an active promotion with the next sequential ID.
// The active cap and the priority-1 uniqueness rule are checked while the
// lock is held; the cap is reported first when both are violated.
func (s *Store) AddPromocao(req dtos.AddPromocaoRequest) (*models.Promocao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return nil, ErrNoProfile
	}

	ativas := 0
	prioridadeUmAtiva := false
	for _, p := range s.perfil.Promocoes {
		if !p.Ativa {
			continue
		}
		ativas++
		if p.Prioridade == 1 {
			prioridadeUmAtiva = true
		}
	}
	if ativas >= models.MaxPromocoesAtivas {
		return nil, ErrPromocaoLimit
	}
	if req.Prioridade == 1 && prioridadeUmAtiva {
		return nil, ErrPriorityTaken
	}

	s.promocaoID++
	promo := models.Promocao{
		ID:           s.promocaoID,
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		DataValidade: req.DataValidade,
		Prioridade:   req.Prioridade,
		Tipo:         req.Tipo,
		Ativa:        true,
	}
	s.perfil.Promocoes = append(s.perfil.Promocoes, promo)
	s.perfil.UpdatedAt = s.Now()
	return &promo, nil
}

// RemoveExpiredPromocoes drops promotions whose expiry date is strictly
// before today and returns how many were removed. A promotion expiring
// today is kept until the day after. Lexical comparison on YYYY-MM-DD
// strings is date-order-correct.
func (s *Store) RemoveExpiredPromocoes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return 0
	}

	hoje := s.Now().Format("2006-01-02")
	kept := s.perfil.Promocoes[:0]
	for _, p := range s.perfil.Promocoes {
		if p.DataValidade >= hoje {
			kept = append(kept, p)
		}
	}
	removed := len(s.perfil.Promocoes) - len(kept)
	s.perfil.Promocoes = kept
	if removed > 0 {
		s.perfil.UpdatedAt = s.Now()
	}
	return removed
}

// RecomputeStatus derives aberto/fechado from the clock and the configured
// hours and stores it on the profile. It never yields abrindo-em-breve.
// Returns false when no profile exists.
func (s *Store) RecomputeStatus() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.perfil == nil {
		return "", false
	}

	status := s.statusAgora()
	s.perfil.StatusFuncionamento = status
	return status, true
}

// statusAgora implements the lookup: a special-date entry for today wins
// over the weekly schedule; otherwise today's weekday entry decides.
// Open means current HH:MM in [abre, fecha).
func (s *Store) statusAgora() string {
	now := s.Now()
	hoje := now.Format("2006-01-02")
	hora := now.Format("15:04")

	for _, esp := range s.perfil.HorariosEspeciais {
		if esp.Data != hoje {
			continue
		}
		if esp.Fechado {
			return models.StatusFechado
		}
		if esp.Abre != "" && esp.Fecha != "" && esp.Abre <= hora && hora < esp.Fecha {
			return models.StatusAberto
		}
		return models.StatusFechado
	}

	dia := s.perfil.HorarioFuncionamento.Dia(now.Weekday())
	if dia.Fechado {
		return models.StatusFechado
	}
	if dia.Abre <= hora && hora < dia.Fecha {
		return models.StatusAberto
	}
	return models.StatusFechado
}

// recomputeAvaliacao recalculates the average rating over aprovado
// testimonials, rounded to one decimal. Caller must hold the lock.
func (s *Store) recomputeAvaliacao() {
	var soma, total int
	for _, d := range s.perfil.Depoimentos {
		if d.Status == models.DepoimentoAprovado {
			soma += d.Avaliacao
			total++
		}
	}

	if total == 0 {
		s.perfil.AvaliacaoMedia = nil
		s.perfil.TotalAvaliacoes = 0
		return
	}

	media := math.Round(float64(soma)/float64(total)*10) / 10
	s.perfil.AvaliacaoMedia = &media
	s.perfil.TotalAvaliacoes = total
}

// Reset clears the profile and all counters. Test isolation only.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.perfil = nil
	s.fotoID = 0
	s.depoimentoID = 0
	s.promocaoID = 0
}

// snapshot deep-copies the profile so the caller can use it outside the
// lock. Caller must hold the lock and have checked perfil != nil.
func (s *Store) snapshot() *models.Sorveteria {
	p := *s.perfil
	p.Diferenciais = copySlice(s.perfil.Diferenciais)
	p.HorariosEspeciais = copySlice(s.perfil.HorariosEspeciais)
	p.Fotos = copySlice(s.perfil.Fotos)
	p.Depoimentos = copySlice(s.perfil.Depoimentos)
	p.Promocoes = copySlice(s.perfil.Promocoes)
	p.Valores = copySlice(s.perfil.Valores)
	if s.perfil.AvaliacaoMedia != nil {
		media := *s.perfil.AvaliacaoMedia
		p.AvaliacaoMedia = &media
	}
	return &p
}

// copySlice preserves nil versus empty so JSON output is unchanged.
func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func valoresOuVazio(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
