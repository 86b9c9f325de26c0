package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

func eventoFixture(t *testing.T, capacidade int) (*EventoService, *fakeEventoRepo, *fakeVisitanteRepo, *fakeNotifier, *model.Evento) {
	t.Helper()
	visitantes := newFakeVisitanteRepo()
	eventos := newFakeEventoRepo(visitantes)
	notifier := &fakeNotifier{}
	svc := NewEventoService(eventos, visitantes, notifier)

	ctx := context.Background()
	e := &model.Evento{
		Nome:             "Safári Noturno",
		DataHora:         time.Now().Add(48 * time.Hour),
		CapacidadeMaxima: capacidade,
	}
	require.NoError(t, eventos.Create(ctx, e, nil))
	return svc, eventos, visitantes, notifier, e
}

func novoVisitante(t *testing.T, repo *fakeVisitanteRepo, nome string) *model.Visitante {
	t.Helper()
	v := &model.Visitante{Nome: nome, CPF: "00000000000", DataNascimento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestEventoServiceCreateValidation(t *testing.T) {
	svc, eventos, _, _, _ := eventoFixture(t, 10)
	ctx := context.Background()

	futuro := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	_, err := svc.Create(ctx, EventoInput{Nome: "", DataHora: futuro, CapacidadeMax: 10})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: "amanhã", CapacidadeMax: 10})
	assert.ErrorIs(t, err, ErrValidation)

	passado := time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err = svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: passado, CapacidadeMax: 10})
	assert.ErrorIs(t, err, ErrValidation)

	created, err := svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 10})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// the registration timestamp is stamped before the row is persisted
	stored, err := eventos.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), stored.DataCadastro, 5*time.Second)
}

func TestEventoServiceCreateComLista(t *testing.T) {
	svc, _, visitantes, _, _ := eventoFixture(t, 10)
	ctx := context.Background()
	futuro := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	v1 := novoVisitante(t, visitantes, "Maria")
	v2 := novoVisitante(t, visitantes, "José")

	// list larger than capacity
	ids := []uint64{v1.ID, v2.ID}
	_, err := svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 1, VisitantesIDs: &ids})
	assert.ErrorIs(t, err, repository.ErrCapacityExceeded)

	// repeated id in the list
	dup := []uint64{v1.ID, v1.ID}
	_, err = svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 5, VisitantesIDs: &dup})
	assert.ErrorIs(t, err, repository.ErrConflict)

	// unknown visitor
	ruim := []uint64{v1.ID, 999}
	_, err = svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 5, VisitantesIDs: &ruim})
	assert.ErrorIs(t, err, repository.ErrVisitanteNotFound)

	created, err := svc.Create(ctx, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 5, VisitantesIDs: &ids})
	require.NoError(t, err)
	inscritos, err := svc.ListVisitantes(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, inscritos, 2)
}

func TestEventoServiceEnroll(t *testing.T) {
	svc, _, visitantes, notifier, evento := eventoFixture(t, 2)
	ctx := context.Background()

	v1 := novoVisitante(t, visitantes, "Maria")
	v2 := novoVisitante(t, visitantes, "José")
	v3 := novoVisitante(t, visitantes, "Ana")

	require.NoError(t, svc.Enroll(ctx, evento.ID, v1.ID))
	require.NoError(t, svc.Enroll(ctx, evento.ID, v2.ID))

	// full event
	assert.ErrorIs(t, svc.Enroll(ctx, evento.ID, v3.ID), repository.ErrCapacityExceeded)

	// already enrolled
	assert.ErrorIs(t, svc.Enroll(ctx, evento.ID, v1.ID), repository.ErrConflict)

	// unknown event and unknown visitor
	assert.ErrorIs(t, svc.Enroll(ctx, 999, v1.ID), repository.ErrEventoNotFound)
	assert.ErrorIs(t, svc.Enroll(ctx, evento.ID, 999), repository.ErrVisitanteNotFound)

	require.Len(t, notifier.inscricoes, 2)
	assert.Equal(t, [2]uint64{evento.ID, v1.ID}, notifier.inscricoes[0])
}

func TestEventoServiceWithdrawFreesSeat(t *testing.T) {
	svc, _, visitantes, _, evento := eventoFixture(t, 1)
	ctx := context.Background()

	v1 := novoVisitante(t, visitantes, "Maria")
	v2 := novoVisitante(t, visitantes, "José")

	require.NoError(t, svc.Enroll(ctx, evento.ID, v1.ID))
	assert.ErrorIs(t, svc.Enroll(ctx, evento.ID, v2.ID), repository.ErrCapacityExceeded)

	require.NoError(t, svc.Withdraw(ctx, evento.ID, v1.ID))
	assert.NoError(t, svc.Enroll(ctx, evento.ID, v2.ID))

	assert.ErrorIs(t, svc.Withdraw(ctx, evento.ID, v1.ID), repository.ErrEnrollmentNotFound)
}

func TestEventoServiceUpdateCapacityReduction(t *testing.T) {
	svc, _, visitantes, _, evento := eventoFixture(t, 3)
	ctx := context.Background()

	v1 := novoVisitante(t, visitantes, "Maria")
	v2 := novoVisitante(t, visitantes, "José")
	require.NoError(t, svc.Enroll(ctx, evento.ID, v1.ID))
	require.NoError(t, svc.Enroll(ctx, evento.ID, v2.ID))

	futuro := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	_, err := svc.Update(ctx, evento.ID, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 1})
	assert.ErrorIs(t, err, repository.ErrConflict)

	updated, err := svc.Update(ctx, evento.ID, EventoInput{Nome: "Safári", DataHora: futuro, CapacidadeMax: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CapacidadeMaxima)

	// keeping the list untouched: enrollments survive the update
	inscritos, err := svc.ListVisitantes(ctx, evento.ID)
	require.NoError(t, err)
	assert.Len(t, inscritos, 2)

	// rescheduling to the past is rejected
	passado := time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err = svc.Update(ctx, evento.ID, EventoInput{Nome: "Safári", DataHora: passado, CapacidadeMax: 2})
	assert.ErrorIs(t, err, ErrValidation)

}

func TestEventoServiceUpdateKeepsPastDataHora(t *testing.T) {
	svc, eventos, _, _, _ := eventoFixture(t, 3)
	ctx := context.Background()

	antiga, err := time.Parse(time.RFC3339, "2020-01-05T10:00:00Z")
	require.NoError(t, err)
	feira := &model.Evento{Nome: "Feira", DataHora: antiga, CapacidadeMaxima: 2}
	require.NoError(t, eventos.Create(ctx, feira, nil))

	// renaming a past event keeps working while the datetime is unchanged
	updated, err := svc.Update(ctx, feira.ID, EventoInput{
		Nome: "Feira de Inverno", DataHora: "2020-01-05T10:00:00Z", CapacidadeMax: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Feira de Inverno", updated.Nome)

	// but rescheduling it demands a future datetime
	_, err = svc.Update(ctx, feira.ID, EventoInput{
		Nome: "Feira de Inverno", DataHora: "2020-02-01T10:00:00Z", CapacidadeMax: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEventoServiceListFilters(t *testing.T) {
	svc, eventos, _, _, evento := eventoFixture(t, 1)
	ctx := context.Background()

	passado := &model.Evento{Nome: "Feira Antiga", DataHora: time.Now().Add(-72 * time.Hour), CapacidadeMaxima: 5}
	require.NoError(t, eventos.Create(ctx, passado, nil))

	list, err := svc.List(ctx, EventoFilters{Futuros: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, evento.ID, list[0].ID)

	// nome wins over futuros
	list, err = svc.List(ctx, EventoFilters{Nome: "Feira", Futuros: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Feira Antiga", list[0].Nome)
}
