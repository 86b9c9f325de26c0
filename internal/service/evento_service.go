package service

import (
	"context"
	"time"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

// EventoInput carries the event payload.  DataHora accepts RFC 3339 or
// "2006-01-02 15:04:05".  VisitantesIDs, when present, replaces the
// whole enrollment list; a nil pointer keeps the stored list on update.
type EventoInput struct {
	Nome          string    `json:"nome" validate:"required"`
	Descricao     string    `json:"descricao"`
	DataHora      string    `json:"data_hora" validate:"required"`
	CapacidadeMax int       `json:"capacidade_maxima" validate:"required,gt=0"`
	VisitantesIDs *[]uint64 `json:"visitantes_ids"`
}

// EventoFilters selects at most one listing filter; precedence is
// Nome, the period range (both bounds required), Lotados, Futuros.
type EventoFilters struct {
	Nome       string
	PeriodoDe  string
	PeriodoAte string
	Lotados    bool
	Futuros    bool
}

// EventoService owns event scheduling and the enrollment list, keeping
// the enrolled count within the event capacity.
type EventoService struct {
	eventos    EventoRepository
	visitantes VisitanteRepository
	notifier   Notifier
}

func NewEventoService(eventos EventoRepository, visitantes VisitanteRepository, notifier Notifier) *EventoService {
	return &EventoService{eventos: eventos, visitantes: visitantes, notifier: notifier}
}

var dataHoraLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

func parseDataHora(raw string) (time.Time, error) {
	for _, layout := range dataHoraLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("data_hora deve ter o formato RFC 3339 ou AAAA-MM-DD HH:MM:SS")
}

// resolveVisitantes checks that every id in the enrollment list exists
// and that no id repeats.
func (s *EventoService) resolveVisitantes(ctx context.Context, ids []uint64, capacidade int) error {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return repository.ErrConflict
		}
		seen[id] = struct{}{}
	}
	if len(ids) > capacidade {
		return repository.ErrCapacityExceeded
	}
	found, err := s.visitantes.GetManyByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return repository.ErrVisitanteNotFound
	}
	return nil
}

func (s *EventoService) Create(ctx context.Context, in EventoInput) (*model.Evento, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	dataHora, err := parseDataHora(in.DataHora)
	if err != nil {
		return nil, err
	}
	if !dataHora.After(time.Now()) {
		return nil, invalid("data_hora deve estar no futuro")
	}
	var ids []uint64
	if in.VisitantesIDs != nil {
		ids = *in.VisitantesIDs
	}
	if err := s.resolveVisitantes(ctx, ids, in.CapacidadeMax); err != nil {
		return nil, err
	}
	e := &model.Evento{
		Nome:             in.Nome,
		Descricao:        in.Descricao,
		DataHora:         dataHora,
		CapacidadeMaxima: in.CapacidadeMax,
		DataCadastro:     time.Now(),
	}
	if err := s.eventos.Create(ctx, e, ids); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventoService) GetByID(ctx context.Context, id uint64) (*model.Evento, error) {
	return s.eventos.GetByID(ctx, id)
}

func (s *EventoService) List(ctx context.Context, f EventoFilters) ([]*model.Evento, error) {
	switch {
	case f.Nome != "":
		return s.eventos.ListByNome(ctx, NormalizeNome(f.Nome))
	case f.PeriodoDe != "" && f.PeriodoAte != "":
		inicio, err := parseDataHora(f.PeriodoDe)
		if err != nil {
			return nil, err
		}
		fim, err := parseDataHora(f.PeriodoAte)
		if err != nil {
			return nil, err
		}
		return s.eventos.ListByPeriodo(ctx, inicio, fim)
	case f.Lotados:
		return s.eventos.ListLotados(ctx)
	case f.Futuros:
		return s.eventos.ListFuturos(ctx, time.Now())
	default:
		return s.eventos.ListAll(ctx)
	}
}

// ListVisitantes returns the visitors enrolled in the event.
func (s *EventoService) ListVisitantes(ctx context.Context, eventoID uint64) ([]*model.Visitante, error) {
	if _, err := s.eventos.GetByID(ctx, eventoID); err != nil {
		return nil, err
	}
	return s.eventos.ListVisitantes(ctx, eventoID)
}

// Update merges the payload onto the stored event.  The capacity can
// never drop below the enrolled count, and a replacement enrollment
// list must fit the new capacity.
func (s *EventoService) Update(ctx context.Context, id uint64, in EventoInput) (*model.Evento, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	dataHora, err := parseDataHora(in.DataHora)
	if err != nil {
		return nil, err
	}
	existing, err := s.eventos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Rescheduling must land in the future; keeping the stored
	// datetime is allowed so past events stay editable.
	if !dataHora.Equal(existing.DataHora) && !dataHora.After(time.Now()) {
		return nil, invalid("data_hora deve estar no futuro")
	}
	var ids []uint64
	if in.VisitantesIDs != nil {
		ids = *in.VisitantesIDs
		if err := s.resolveVisitantes(ctx, ids, in.CapacidadeMax); err != nil {
			return nil, err
		}
	} else {
		inscritos, err := s.eventos.CountInscritos(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := CheckCapacityReduction(in.CapacidadeMax, inscritos); err != nil {
			return nil, err
		}
	}
	existing.Nome = in.Nome
	existing.Descricao = in.Descricao
	existing.DataHora = dataHora
	existing.CapacidadeMaxima = in.CapacidadeMax
	if err := s.eventos.Update(ctx, existing, ids); err != nil {
		return nil, err
	}
	return existing, nil
}

// Enroll adds one visitor to the event when there is still room and the
// visitor is not already enrolled.  The repository repeats both checks
// under a row lock before inserting.
func (s *EventoService) Enroll(ctx context.Context, eventoID, visitanteID uint64) error {
	evento, err := s.eventos.GetByID(ctx, eventoID)
	if err != nil {
		return err
	}
	visitante, err := s.visitantes.GetByID(ctx, visitanteID)
	if err != nil {
		return err
	}
	atuais, err := s.eventos.ListVisitantes(ctx, eventoID)
	if err != nil {
		return err
	}
	inscritos := make([]uint64, 0, len(atuais))
	for _, v := range atuais {
		inscritos = append(inscritos, v.ID)
	}
	if err := CheckNoDuplicateEnrollment(inscritos, visitanteID); err != nil {
		return err
	}
	if err := CheckEventCapacity(evento.CapacidadeMaxima, len(inscritos)); err != nil {
		return err
	}
	if err := s.eventos.Enroll(ctx, eventoID, visitanteID); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.EnrollmentConfirmed(ctx, evento, visitante)
	}
	return nil
}

// Withdraw removes one visitor from the event.
func (s *EventoService) Withdraw(ctx context.Context, eventoID, visitanteID uint64) error {
	if _, err := s.eventos.GetByID(ctx, eventoID); err != nil {
		return err
	}
	return s.eventos.Withdraw(ctx, eventoID, visitanteID)
}

// Delete removes the event together with its enrollments.
func (s *EventoService) Delete(ctx context.Context, id uint64) error {
	return s.eventos.Delete(ctx, id)
}
