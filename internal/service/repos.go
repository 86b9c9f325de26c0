package service

import (
	"context"
	"time"

	"zoo-api/internal/model"
)

// The interfaces below mirror the concrete repositories in
// internal/repository.  Declaring them here keeps the services
// decoupled from *sql.DB and lets the tests substitute in-memory
// fakes.

type HabitatRepository interface {
	Create(ctx context.Context, h *model.Habitat) error
	GetByID(ctx context.Context, id uint64) (*model.Habitat, error)
	ListAll(ctx context.Context) ([]*model.Habitat, error)
	ListByTipo(ctx context.Context, tipo string) ([]*model.Habitat, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Habitat, error)
	CountAnimais(ctx context.Context, habitatID uint64) (int, error)
	ExistsOutroComNome(ctx context.Context, nome string, excludeID uint64) (bool, error)
	Update(ctx context.Context, h *model.Habitat) error
	Delete(ctx context.Context, id uint64) error
}

type EspecieRepository interface {
	Create(ctx context.Context, e *model.Especie) error
	GetByID(ctx context.Context, id uint64) (*model.Especie, error)
	ListAll(ctx context.Context) ([]*model.Especie, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Especie, error)
	ListByFamilia(ctx context.Context, familia string) ([]*model.Especie, error)
	ListByOrdem(ctx context.Context, ordem string) ([]*model.Especie, error)
	ListByClasse(ctx context.Context, classe string) ([]*model.Especie, error)
	CountAnimais(ctx context.Context, especieID uint64) (int, error)
	ExistsOutroComNome(ctx context.Context, nome string, excludeID uint64) (bool, error)
	Update(ctx context.Context, e *model.Especie) error
	Delete(ctx context.Context, id uint64) error
}

type AnimalRepository interface {
	Create(ctx context.Context, a *model.Animal) error
	GetByID(ctx context.Context, id uint64) (*model.Animal, error)
	ListAll(ctx context.Context) ([]*model.Animal, error)
	ListByIdade(ctx context.Context, min, max int) ([]*model.Animal, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Animal, error)
	ListByEspecieNome(ctx context.Context, especie string) ([]*model.Animal, error)
	Update(ctx context.Context, a *model.Animal) error
	Delete(ctx context.Context, id uint64) error
}

type AlimentacaoRepository interface {
	Create(ctx context.Context, a *model.Alimentacao) error
	GetByID(ctx context.Context, id uint64) (*model.Alimentacao, error)
	ListAll(ctx context.Context) ([]*model.Alimentacao, error)
	ListByTipoComida(ctx context.Context, tipo string) ([]*model.Alimentacao, error)
	ListByAnimal(ctx context.Context, animalID uint64) ([]*model.Alimentacao, error)
	Update(ctx context.Context, a *model.Alimentacao) error
	Delete(ctx context.Context, id uint64) error
}

type CuidadorRepository interface {
	Create(ctx context.Context, c *model.Cuidador) error
	GetByID(ctx context.Context, id uint64) (*model.Cuidador, error)
	ListAll(ctx context.Context) ([]*model.Cuidador, error)
	ListByEspecialidade(ctx context.Context, especialidade string) ([]*model.Cuidador, error)
	ListByTurno(ctx context.Context, turno string) ([]*model.Cuidador, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Cuidador, error)
	Update(ctx context.Context, c *model.Cuidador) error
	Delete(ctx context.Context, id uint64) error
}

type VeterinarioRepository interface {
	Create(ctx context.Context, v *model.Veterinario) error
	GetByID(ctx context.Context, id uint64) (*model.Veterinario, error)
	ListAll(ctx context.Context) ([]*model.Veterinario, error)
	ListByEspecialidade(ctx context.Context, especialidade string) ([]*model.Veterinario, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Veterinario, error)
	ExistsOutroComCRMV(ctx context.Context, crmv string, excludeID uint64) (bool, error)
	Update(ctx context.Context, v *model.Veterinario) error
	Delete(ctx context.Context, id uint64) error
}

type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	GetByID(ctx context.Context, id uint64) (*model.Funcionario, error)
	ListAll(ctx context.Context) ([]*model.Funcionario, error)
	ListByCargo(ctx context.Context, cargo string) ([]*model.Funcionario, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Funcionario, error)
	ExistsOutroComCPF(ctx context.Context, cpf string, excludeID uint64) (bool, error)
	Update(ctx context.Context, f *model.Funcionario) error
	Delete(ctx context.Context, id uint64) error
}

type VisitanteRepository interface {
	Create(ctx context.Context, v *model.Visitante) error
	GetByID(ctx context.Context, id uint64) (*model.Visitante, error)
	GetManyByIDs(ctx context.Context, ids []uint64) ([]*model.Visitante, error)
	ListAll(ctx context.Context) ([]*model.Visitante, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Visitante, error)
	GetByCPF(ctx context.Context, cpf string) (*model.Visitante, error)
	ListByNascimento(ctx context.Context, inicio, fim time.Time) ([]*model.Visitante, error)
	ExistsOutroComCPF(ctx context.Context, cpf string, excludeID uint64) (bool, error)
	Update(ctx context.Context, v *model.Visitante) error
	Delete(ctx context.Context, id uint64) error
}

type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento, visitanteIDs []uint64) error
	GetByID(ctx context.Context, id uint64) (*model.Evento, error)
	ListAll(ctx context.Context) ([]*model.Evento, error)
	ListByNome(ctx context.Context, nome string) ([]*model.Evento, error)
	ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]*model.Evento, error)
	ListLotados(ctx context.Context) ([]*model.Evento, error)
	ListFuturos(ctx context.Context, ref time.Time) ([]*model.Evento, error)
	ListVisitantes(ctx context.Context, eventoID uint64) ([]*model.Visitante, error)
	CountInscritos(ctx context.Context, eventoID uint64) (int, error)
	Update(ctx context.Context, e *model.Evento, visitanteIDs []uint64) error
	Enroll(ctx context.Context, eventoID, visitanteID uint64) error
	Withdraw(ctx context.Context, eventoID, visitanteID uint64) error
	Delete(ctx context.Context, id uint64) error
}

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, roles []string) (uint64, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
}
