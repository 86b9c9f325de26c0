package service

import (
	"context"
	"strings"
	"time"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

// In-memory repository fakes.  They store entities in maps and apply
// none of the transactional guards, so the tests exercise the service
// rules in isolation.

type fakeHabitatRepo struct {
	seq      uint64
	itens    map[uint64]*model.Habitat
	ocupacao map[uint64]int
}

func newFakeHabitatRepo() *fakeHabitatRepo {
	return &fakeHabitatRepo{itens: map[uint64]*model.Habitat{}, ocupacao: map[uint64]int{}}
}

func (f *fakeHabitatRepo) Create(_ context.Context, h *model.Habitat) error {
	f.seq++
	h.ID = f.seq
	cp := *h
	f.itens[h.ID] = &cp
	return nil
}

func (f *fakeHabitatRepo) GetByID(_ context.Context, id uint64) (*model.Habitat, error) {
	h, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrHabitatNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHabitatRepo) ListAll(_ context.Context) ([]*model.Habitat, error) {
	out := make([]*model.Habitat, 0, len(f.itens))
	for _, h := range f.itens {
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeHabitatRepo) ListByTipo(ctx context.Context, tipo string) ([]*model.Habitat, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Habitat
	for _, h := range all {
		if strings.EqualFold(h.Tipo, tipo) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHabitatRepo) ListByNome(ctx context.Context, nome string) ([]*model.Habitat, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Habitat
	for _, h := range all {
		if strings.Contains(strings.ToLower(h.Nome), strings.ToLower(nome)) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHabitatRepo) CountAnimais(_ context.Context, habitatID uint64) (int, error) {
	return f.ocupacao[habitatID], nil
}

func (f *fakeHabitatRepo) ExistsOutroComNome(_ context.Context, nome string, excludeID uint64) (bool, error) {
	for id, h := range f.itens {
		if id != excludeID && strings.EqualFold(h.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHabitatRepo) Update(_ context.Context, h *model.Habitat) error {
	if _, ok := f.itens[h.ID]; !ok {
		return repository.ErrHabitatNotFound
	}
	cp := *h
	f.itens[h.ID] = &cp
	return nil
}

func (f *fakeHabitatRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrHabitatNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeEspecieRepo struct {
	seq   uint64
	itens map[uint64]*model.Especie
	refs  map[uint64]int
}

func newFakeEspecieRepo() *fakeEspecieRepo {
	return &fakeEspecieRepo{itens: map[uint64]*model.Especie{}, refs: map[uint64]int{}}
}

func (f *fakeEspecieRepo) Create(_ context.Context, e *model.Especie) error {
	f.seq++
	e.ID = f.seq
	cp := *e
	f.itens[e.ID] = &cp
	return nil
}

func (f *fakeEspecieRepo) GetByID(_ context.Context, id uint64) (*model.Especie, error) {
	e, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrEspecieNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEspecieRepo) ListAll(_ context.Context) ([]*model.Especie, error) {
	out := make([]*model.Especie, 0, len(f.itens))
	for _, e := range f.itens {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEspecieRepo) ListByNome(ctx context.Context, nome string) ([]*model.Especie, error) {
	return f.filtro(ctx, func(e *model.Especie) bool { return strings.EqualFold(e.Nome, nome) })
}

func (f *fakeEspecieRepo) ListByFamilia(ctx context.Context, familia string) ([]*model.Especie, error) {
	return f.filtro(ctx, func(e *model.Especie) bool { return strings.EqualFold(e.Familia, familia) })
}

func (f *fakeEspecieRepo) ListByOrdem(ctx context.Context, ordem string) ([]*model.Especie, error) {
	return f.filtro(ctx, func(e *model.Especie) bool { return strings.EqualFold(e.Ordem, ordem) })
}

func (f *fakeEspecieRepo) ListByClasse(ctx context.Context, classe string) ([]*model.Especie, error) {
	return f.filtro(ctx, func(e *model.Especie) bool { return strings.EqualFold(e.Classe, classe) })
}

func (f *fakeEspecieRepo) filtro(ctx context.Context, keep func(*model.Especie) bool) ([]*model.Especie, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Especie
	for _, e := range all {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEspecieRepo) CountAnimais(_ context.Context, especieID uint64) (int, error) {
	return f.refs[especieID], nil
}

func (f *fakeEspecieRepo) ExistsOutroComNome(_ context.Context, nome string, excludeID uint64) (bool, error) {
	for id, e := range f.itens {
		if id != excludeID && strings.EqualFold(e.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEspecieRepo) Update(_ context.Context, e *model.Especie) error {
	if _, ok := f.itens[e.ID]; !ok {
		return repository.ErrEspecieNotFound
	}
	cp := *e
	f.itens[e.ID] = &cp
	return nil
}

func (f *fakeEspecieRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrEspecieNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeCuidadorRepo struct {
	seq   uint64
	itens map[uint64]*model.Cuidador
}

func newFakeCuidadorRepo() *fakeCuidadorRepo {
	return &fakeCuidadorRepo{itens: map[uint64]*model.Cuidador{}}
}

func (f *fakeCuidadorRepo) Create(_ context.Context, c *model.Cuidador) error {
	f.seq++
	c.ID = f.seq
	cp := *c
	f.itens[c.ID] = &cp
	return nil
}

func (f *fakeCuidadorRepo) GetByID(_ context.Context, id uint64) (*model.Cuidador, error) {
	c, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrCuidadorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCuidadorRepo) ListAll(_ context.Context) ([]*model.Cuidador, error) {
	out := make([]*model.Cuidador, 0, len(f.itens))
	for _, c := range f.itens {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCuidadorRepo) ListByEspecialidade(ctx context.Context, esp string) ([]*model.Cuidador, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Cuidador
	for _, c := range all {
		if strings.EqualFold(c.Especialidade, esp) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCuidadorRepo) ListByTurno(ctx context.Context, turno string) ([]*model.Cuidador, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Cuidador
	for _, c := range all {
		if strings.EqualFold(c.Turno, turno) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCuidadorRepo) ListByNome(ctx context.Context, nome string) ([]*model.Cuidador, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Cuidador
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Nome), strings.ToLower(nome)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCuidadorRepo) Update(_ context.Context, c *model.Cuidador) error {
	if _, ok := f.itens[c.ID]; !ok {
		return repository.ErrCuidadorNotFound
	}
	cp := *c
	f.itens[c.ID] = &cp
	return nil
}

func (f *fakeCuidadorRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrCuidadorNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeAnimalRepo struct {
	seq   uint64
	itens map[uint64]*model.Animal
}

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{itens: map[uint64]*model.Animal{}}
}

func (f *fakeAnimalRepo) Create(_ context.Context, a *model.Animal) error {
	f.seq++
	a.ID = f.seq
	cp := *a
	f.itens[a.ID] = &cp
	return nil
}

func (f *fakeAnimalRepo) GetByID(_ context.Context, id uint64) (*model.Animal, error) {
	a, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrAnimalNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnimalRepo) ListAll(_ context.Context) ([]*model.Animal, error) {
	out := make([]*model.Animal, 0, len(f.itens))
	for _, a := range f.itens {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAnimalRepo) ListByIdade(ctx context.Context, min, max int) ([]*model.Animal, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Animal
	for _, a := range all {
		if a.Idade >= min && a.Idade <= max {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnimalRepo) ListByNome(ctx context.Context, nome string) ([]*model.Animal, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Animal
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Nome), strings.ToLower(nome)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnimalRepo) ListByEspecieNome(ctx context.Context, _ string) ([]*model.Animal, error) {
	return f.ListAll(ctx)
}

func (f *fakeAnimalRepo) Update(_ context.Context, a *model.Animal) error {
	if _, ok := f.itens[a.ID]; !ok {
		return repository.ErrAnimalNotFound
	}
	cp := *a
	f.itens[a.ID] = &cp
	return nil
}

func (f *fakeAnimalRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrAnimalNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeAlimentacaoRepo struct {
	seq   uint64
	itens map[uint64]*model.Alimentacao
}

func newFakeAlimentacaoRepo() *fakeAlimentacaoRepo {
	return &fakeAlimentacaoRepo{itens: map[uint64]*model.Alimentacao{}}
}

func (f *fakeAlimentacaoRepo) Create(_ context.Context, a *model.Alimentacao) error {
	f.seq++
	a.ID = f.seq
	cp := *a
	f.itens[a.ID] = &cp
	return nil
}

func (f *fakeAlimentacaoRepo) GetByID(_ context.Context, id uint64) (*model.Alimentacao, error) {
	a, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrAlimentacaoNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAlimentacaoRepo) ListAll(_ context.Context) ([]*model.Alimentacao, error) {
	out := make([]*model.Alimentacao, 0, len(f.itens))
	for _, a := range f.itens {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAlimentacaoRepo) ListByTipoComida(ctx context.Context, tipo string) ([]*model.Alimentacao, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Alimentacao
	for _, a := range all {
		if strings.EqualFold(a.TipoComida, tipo) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlimentacaoRepo) ListByAnimal(ctx context.Context, animalID uint64) ([]*model.Alimentacao, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Alimentacao
	for _, a := range all {
		if a.AnimalID == animalID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlimentacaoRepo) Update(_ context.Context, a *model.Alimentacao) error {
	if _, ok := f.itens[a.ID]; !ok {
		return repository.ErrAlimentacaoNotFound
	}
	cp := *a
	f.itens[a.ID] = &cp
	return nil
}

func (f *fakeAlimentacaoRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrAlimentacaoNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeVisitanteRepo struct {
	seq   uint64
	itens map[uint64]*model.Visitante
}

func newFakeVisitanteRepo() *fakeVisitanteRepo {
	return &fakeVisitanteRepo{itens: map[uint64]*model.Visitante{}}
}

func (f *fakeVisitanteRepo) Create(_ context.Context, v *model.Visitante) error {
	f.seq++
	v.ID = f.seq
	cp := *v
	f.itens[v.ID] = &cp
	return nil
}

func (f *fakeVisitanteRepo) GetByID(_ context.Context, id uint64) (*model.Visitante, error) {
	v, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrVisitanteNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVisitanteRepo) GetManyByIDs(ctx context.Context, ids []uint64) ([]*model.Visitante, error) {
	var out []*model.Visitante
	for _, id := range ids {
		if v, err := f.GetByID(ctx, id); err == nil {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisitanteRepo) ListAll(_ context.Context) ([]*model.Visitante, error) {
	out := make([]*model.Visitante, 0, len(f.itens))
	for _, v := range f.itens {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVisitanteRepo) ListByNome(ctx context.Context, nome string) ([]*model.Visitante, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Visitante
	for _, v := range all {
		if strings.Contains(strings.ToLower(v.Nome), strings.ToLower(nome)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisitanteRepo) GetByCPF(_ context.Context, cpf string) (*model.Visitante, error) {
	for _, v := range f.itens {
		if v.CPF == cpf {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrVisitanteNotFound
}

func (f *fakeVisitanteRepo) ListByNascimento(ctx context.Context, inicio, fim time.Time) ([]*model.Visitante, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Visitante
	for _, v := range all {
		if !v.DataNascimento.Before(inicio) && !v.DataNascimento.After(fim) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisitanteRepo) ExistsOutroComCPF(_ context.Context, cpf string, excludeID uint64) (bool, error) {
	for id, v := range f.itens {
		if id != excludeID && v.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVisitanteRepo) Update(_ context.Context, v *model.Visitante) error {
	if _, ok := f.itens[v.ID]; !ok {
		return repository.ErrVisitanteNotFound
	}
	cp := *v
	f.itens[v.ID] = &cp
	return nil
}

func (f *fakeVisitanteRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrVisitanteNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeEventoRepo struct {
	seq        uint64
	itens      map[uint64]*model.Evento
	inscricoes map[uint64][]uint64
	visitantes *fakeVisitanteRepo
}

func newFakeEventoRepo(visitantes *fakeVisitanteRepo) *fakeEventoRepo {
	return &fakeEventoRepo{
		itens:      map[uint64]*model.Evento{},
		inscricoes: map[uint64][]uint64{},
		visitantes: visitantes,
	}
}

func (f *fakeEventoRepo) Create(_ context.Context, e *model.Evento, visitanteIDs []uint64) error {
	f.seq++
	e.ID = f.seq
	cp := *e
	f.itens[e.ID] = &cp
	f.inscricoes[e.ID] = append([]uint64(nil), visitanteIDs...)
	return nil
}

func (f *fakeEventoRepo) GetByID(_ context.Context, id uint64) (*model.Evento, error) {
	e, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrEventoNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventoRepo) ListAll(_ context.Context) ([]*model.Evento, error) {
	out := make([]*model.Evento, 0, len(f.itens))
	for _, e := range f.itens {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventoRepo) ListByNome(ctx context.Context, nome string) ([]*model.Evento, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Evento
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Nome), strings.ToLower(nome)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventoRepo) ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]*model.Evento, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Evento
	for _, e := range all {
		if !e.DataHora.Before(inicio) && !e.DataHora.After(fim) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventoRepo) ListLotados(ctx context.Context) ([]*model.Evento, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Evento
	for _, e := range all {
		if len(f.inscricoes[e.ID]) >= e.CapacidadeMaxima {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventoRepo) ListFuturos(ctx context.Context, ref time.Time) ([]*model.Evento, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Evento
	for _, e := range all {
		if e.DataHora.After(ref) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventoRepo) ListVisitantes(ctx context.Context, eventoID uint64) ([]*model.Visitante, error) {
	return f.visitantes.GetManyByIDs(ctx, f.inscricoes[eventoID])
}

func (f *fakeEventoRepo) CountInscritos(_ context.Context, eventoID uint64) (int, error) {
	return len(f.inscricoes[eventoID]), nil
}

func (f *fakeEventoRepo) Update(_ context.Context, e *model.Evento, visitanteIDs []uint64) error {
	if _, ok := f.itens[e.ID]; !ok {
		return repository.ErrEventoNotFound
	}
	cp := *e
	f.itens[e.ID] = &cp
	if visitanteIDs != nil {
		f.inscricoes[e.ID] = append([]uint64(nil), visitanteIDs...)
	}
	return nil
}

func (f *fakeEventoRepo) Enroll(_ context.Context, eventoID, visitanteID uint64) error {
	if _, ok := f.itens[eventoID]; !ok {
		return repository.ErrEventoNotFound
	}
	f.inscricoes[eventoID] = append(f.inscricoes[eventoID], visitanteID)
	return nil
}

func (f *fakeEventoRepo) Withdraw(_ context.Context, eventoID, visitanteID uint64) error {
	ids := f.inscricoes[eventoID]
	for i, id := range ids {
		if id == visitanteID {
			f.inscricoes[eventoID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return repository.ErrEnrollmentNotFound
}

func (f *fakeEventoRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrEventoNotFound
	}
	delete(f.itens, id)
	delete(f.inscricoes, id)
	return nil
}

type fakeFuncionarioRepo struct {
	seq   uint64
	itens map[uint64]*model.Funcionario
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{itens: map[uint64]*model.Funcionario{}}
}

func (f *fakeFuncionarioRepo) Create(_ context.Context, fu *model.Funcionario) error {
	f.seq++
	fu.ID = f.seq
	cp := *fu
	f.itens[fu.ID] = &cp
	return nil
}

func (f *fakeFuncionarioRepo) GetByID(_ context.Context, id uint64) (*model.Funcionario, error) {
	fu, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrFuncionarioNotFound
	}
	cp := *fu
	return &cp, nil
}

func (f *fakeFuncionarioRepo) ListAll(_ context.Context) ([]*model.Funcionario, error) {
	out := make([]*model.Funcionario, 0, len(f.itens))
	for _, fu := range f.itens {
		cp := *fu
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeFuncionarioRepo) ListByCargo(ctx context.Context, cargo string) ([]*model.Funcionario, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Funcionario
	for _, fu := range all {
		if strings.EqualFold(fu.Cargo, cargo) {
			out = append(out, fu)
		}
	}
	return out, nil
}

func (f *fakeFuncionarioRepo) ListByNome(ctx context.Context, nome string) ([]*model.Funcionario, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Funcionario
	for _, fu := range all {
		if strings.Contains(strings.ToLower(fu.Nome), strings.ToLower(nome)) {
			out = append(out, fu)
		}
	}
	return out, nil
}

func (f *fakeFuncionarioRepo) ExistsOutroComCPF(_ context.Context, cpf string, excludeID uint64) (bool, error) {
	for id, fu := range f.itens {
		if id != excludeID && fu.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFuncionarioRepo) Update(_ context.Context, fu *model.Funcionario) error {
	if _, ok := f.itens[fu.ID]; !ok {
		return repository.ErrFuncionarioNotFound
	}
	cp := *fu
	f.itens[fu.ID] = &cp
	return nil
}

func (f *fakeFuncionarioRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrFuncionarioNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeVeterinarioRepo struct {
	seq   uint64
	itens map[uint64]*model.Veterinario
}

func newFakeVeterinarioRepo() *fakeVeterinarioRepo {
	return &fakeVeterinarioRepo{itens: map[uint64]*model.Veterinario{}}
}

func (f *fakeVeterinarioRepo) Create(_ context.Context, v *model.Veterinario) error {
	f.seq++
	v.ID = f.seq
	cp := *v
	f.itens[v.ID] = &cp
	return nil
}

func (f *fakeVeterinarioRepo) GetByID(_ context.Context, id uint64) (*model.Veterinario, error) {
	v, ok := f.itens[id]
	if !ok {
		return nil, repository.ErrVeterinarioNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVeterinarioRepo) ListAll(_ context.Context) ([]*model.Veterinario, error) {
	out := make([]*model.Veterinario, 0, len(f.itens))
	for _, v := range f.itens {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVeterinarioRepo) ListByEspecialidade(ctx context.Context, esp string) ([]*model.Veterinario, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Veterinario
	for _, v := range all {
		if strings.EqualFold(v.Especialidade, esp) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVeterinarioRepo) ListByNome(ctx context.Context, nome string) ([]*model.Veterinario, error) {
	all, _ := f.ListAll(ctx)
	var out []*model.Veterinario
	for _, v := range all {
		if strings.Contains(strings.ToLower(v.Nome), strings.ToLower(nome)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVeterinarioRepo) ExistsOutroComCRMV(_ context.Context, crmv string, excludeID uint64) (bool, error) {
	for id, v := range f.itens {
		if id != excludeID && v.CRMV == crmv {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVeterinarioRepo) Update(_ context.Context, v *model.Veterinario) error {
	if _, ok := f.itens[v.ID]; !ok {
		return repository.ErrVeterinarioNotFound
	}
	cp := *v
	f.itens[v.ID] = &cp
	return nil
}

func (f *fakeVeterinarioRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrVeterinarioNotFound
	}
	delete(f.itens, id)
	return nil
}

type fakeUserRepo struct {
	seq   uint64
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, username, passwordHash string, roles []string) (uint64, error) {
	if _, ok := f.users[username]; ok {
		return 0, repository.ErrDuplicateKey
	}
	f.seq++
	f.users[username] = &model.User{
		ID:           f.seq,
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        append([]string(nil), roles...),
	}
	return f.seq, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// fakeNotifier records published events.
type fakeNotifier struct {
	registrados []uint64
	inscricoes  [][2]uint64
}

func (f *fakeNotifier) VisitanteRegistered(_ context.Context, v *model.Visitante) {
	f.registrados = append(f.registrados, v.ID)
}

func (f *fakeNotifier) EnrollmentConfirmed(_ context.Context, e *model.Evento, v *model.Visitante) {
	f.inscricoes = append(f.inscricoes, [2]uint64{e.ID, v.ID})
}
