package service

import (
	"context"

	"zoo-api/internal/model"
)

type CuidadorInput struct {
	Nome          string  `json:"nome" validate:"required"`
	Especialidade string  `json:"especialidade" validate:"required"`
	Turno         string  `json:"turno"`
	Email         string  `json:"email" validate:"omitempty,email"`
	FuncionarioID *uint64 `json:"funcionario_id"`
}

// CuidadorFilters selects at most one listing filter; precedence is
// Especialidade, Turno, Nome.
type CuidadorFilters struct {
	Especialidade string
	Turno         string
	Nome          string
}

type CuidadorService struct {
	cuidadores   CuidadorRepository
	funcionarios FuncionarioRepository
}

func NewCuidadorService(cuidadores CuidadorRepository, funcionarios FuncionarioRepository) *CuidadorService {
	return &CuidadorService{cuidadores: cuidadores, funcionarios: funcionarios}
}

func (s *CuidadorService) resolveFuncionario(ctx context.Context, id *uint64) error {
	if id == nil {
		return nil
	}
	_, err := s.funcionarios.GetByID(ctx, *id)
	return err
}

func (s *CuidadorService) Create(ctx context.Context, in CuidadorInput) (*model.Cuidador, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Especialidade = NormalizeNome(in.Especialidade)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	if err := s.resolveFuncionario(ctx, in.FuncionarioID); err != nil {
		return nil, err
	}
	cu := &model.Cuidador{
		Nome:          in.Nome,
		Especialidade: in.Especialidade,
		Turno:         NormalizeNome(in.Turno),
		Email:         NormalizeNome(in.Email),
		FuncionarioID: in.FuncionarioID,
	}
	if err := s.cuidadores.Create(ctx, cu); err != nil {
		return nil, err
	}
	return cu, nil
}

func (s *CuidadorService) GetByID(ctx context.Context, id uint64) (*model.Cuidador, error) {
	return s.cuidadores.GetByID(ctx, id)
}

func (s *CuidadorService) List(ctx context.Context, f CuidadorFilters) ([]*model.Cuidador, error) {
	switch {
	case f.Especialidade != "":
		return s.cuidadores.ListByEspecialidade(ctx, NormalizeNome(f.Especialidade))
	case f.Turno != "":
		return s.cuidadores.ListByTurno(ctx, NormalizeNome(f.Turno))
	case f.Nome != "":
		return s.cuidadores.ListByNome(ctx, NormalizeNome(f.Nome))
	default:
		return s.cuidadores.ListAll(ctx)
	}
}

func (s *CuidadorService) Update(ctx context.Context, id uint64, in CuidadorInput) (*model.Cuidador, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Especialidade = NormalizeNome(in.Especialidade)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.cuidadores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveFuncionario(ctx, in.FuncionarioID); err != nil {
		return nil, err
	}
	existing.Nome = in.Nome
	existing.Especialidade = in.Especialidade
	existing.Turno = NormalizeNome(in.Turno)
	existing.Email = NormalizeNome(in.Email)
	existing.FuncionarioID = in.FuncionarioID
	if err := s.cuidadores.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses to remove a keeper still assigned to animals.
func (s *CuidadorService) Delete(ctx context.Context, id uint64) error {
	return s.cuidadores.Delete(ctx, id)
}
