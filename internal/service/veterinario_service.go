package service

import (
	"context"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

type VeterinarioInput struct {
	Nome          string  `json:"nome" validate:"required"`
	CRMV          string  `json:"crmv" validate:"required"`
	Especialidade string  `json:"especialidade"`
	FuncionarioID *uint64 `json:"funcionario_id"`
}

// VeterinarioFilters selects at most one listing filter; Especialidade
// wins over Nome.
type VeterinarioFilters struct {
	Especialidade string
	Nome          string
}

// VeterinarioService keeps the CRMV registration unique across
// veterinarians.
type VeterinarioService struct {
	veterinarios VeterinarioRepository
	funcionarios FuncionarioRepository
}

func NewVeterinarioService(veterinarios VeterinarioRepository, funcionarios FuncionarioRepository) *VeterinarioService {
	return &VeterinarioService{veterinarios: veterinarios, funcionarios: funcionarios}
}

func (s *VeterinarioService) checkCRMVLivre(ctx context.Context, crmv string, excludeID uint64) error {
	dup, err := s.veterinarios.ExistsOutroComCRMV(ctx, crmv, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return repository.ErrDuplicateKey
	}
	return nil
}

func (s *VeterinarioService) Create(ctx context.Context, in VeterinarioInput) (*model.Veterinario, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.CRMV = NormalizeCRMV(in.CRMV)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	if err := s.checkCRMVLivre(ctx, in.CRMV, 0); err != nil {
		return nil, err
	}
	if in.FuncionarioID != nil {
		if _, err := s.funcionarios.GetByID(ctx, *in.FuncionarioID); err != nil {
			return nil, err
		}
	}
	v := &model.Veterinario{
		Nome:          in.Nome,
		CRMV:          in.CRMV,
		Especialidade: NormalizeNome(in.Especialidade),
		FuncionarioID: in.FuncionarioID,
	}
	if err := s.veterinarios.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VeterinarioService) GetByID(ctx context.Context, id uint64) (*model.Veterinario, error) {
	return s.veterinarios.GetByID(ctx, id)
}

func (s *VeterinarioService) List(ctx context.Context, f VeterinarioFilters) ([]*model.Veterinario, error) {
	switch {
	case f.Especialidade != "":
		return s.veterinarios.ListByEspecialidade(ctx, NormalizeNome(f.Especialidade))
	case f.Nome != "":
		return s.veterinarios.ListByNome(ctx, NormalizeNome(f.Nome))
	default:
		return s.veterinarios.ListAll(ctx)
	}
}

func (s *VeterinarioService) Update(ctx context.Context, id uint64, in VeterinarioInput) (*model.Veterinario, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.CRMV = NormalizeCRMV(in.CRMV)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.veterinarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCRMVLivre(ctx, in.CRMV, id); err != nil {
		return nil, err
	}
	if in.FuncionarioID != nil {
		if _, err := s.funcionarios.GetByID(ctx, *in.FuncionarioID); err != nil {
			return nil, err
		}
	}
	existing.Nome = in.Nome
	existing.CRMV = in.CRMV
	existing.Especialidade = NormalizeNome(in.Especialidade)
	existing.FuncionarioID = in.FuncionarioID
	if err := s.veterinarios.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *VeterinarioService) Delete(ctx context.Context, id uint64) error {
	return s.veterinarios.Delete(ctx, id)
}
