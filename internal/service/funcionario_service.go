package service

import (
	"context"
	"strings"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
	"zoo-api/internal/utils"
)

// FuncionarioInput carries the staff payload.  Username and Password
// are only honored on create, where they optionally open a login
// account whose roles follow the cargo; updates never touch credentials.
type FuncionarioInput struct {
	Nome     string  `json:"nome" validate:"required"`
	CPF      string  `json:"cpf" validate:"required"`
	Cargo    string  `json:"cargo" validate:"required"`
	Setor    string  `json:"setor"`
	Salario  float64 `json:"salario" validate:"gte=0"`
	Username string  `json:"username"`
	Password string  `json:"password" validate:"omitempty,min=6"`
}

// FuncionarioFilters selects at most one listing filter; Cargo wins
// over Nome.
type FuncionarioFilters struct {
	Cargo string
	Nome  string
}

type FuncionarioService struct {
	funcionarios FuncionarioRepository
	users        UserRepository
	bcryptCost   int
}

func NewFuncionarioService(funcionarios FuncionarioRepository, users UserRepository, bcryptCost int) *FuncionarioService {
	return &FuncionarioService{funcionarios: funcionarios, users: users, bcryptCost: bcryptCost}
}

// rolesForCargo grants the login account the extra role the cargo
// implies, on top of the base FUNCIONARIO role.
func rolesForCargo(cargo string) []string {
	roles := []string{model.RoleFuncionario}
	c := strings.ToLower(cargo)
	switch {
	case strings.Contains(c, "cuidador"):
		roles = append(roles, model.RoleCuidador)
	case strings.Contains(c, "veterin"):
		roles = append(roles, model.RoleVeterinario)
	}
	return roles
}

func (s *FuncionarioService) checkCPFLivre(ctx context.Context, cpf string, excludeID uint64) error {
	dup, err := s.funcionarios.ExistsOutroComCPF(ctx, cpf, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return repository.ErrDuplicateKey
	}
	return nil
}

func (s *FuncionarioService) Create(ctx context.Context, in FuncionarioInput) (*model.Funcionario, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Username = NormalizeNome(in.Username)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	cpf, err := NormalizeCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	if err := s.checkCPFLivre(ctx, cpf, 0); err != nil {
		return nil, err
	}
	var userID *uint64
	if in.Username != "" {
		if in.Password == "" {
			return nil, invalid("password é obrigatório quando username é informado")
		}
		hash, err := utils.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		id, err := s.users.Create(ctx, in.Username, hash, rolesForCargo(in.Cargo))
		if err != nil {
			return nil, err
		}
		userID = &id
	}
	f := &model.Funcionario{
		Nome:    in.Nome,
		CPF:     cpf,
		Cargo:   NormalizeNome(in.Cargo),
		Setor:   NormalizeNome(in.Setor),
		Salario: in.Salario,
		UserID:  userID,
	}
	if err := s.funcionarios.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FuncionarioService) GetByID(ctx context.Context, id uint64) (*model.Funcionario, error) {
	return s.funcionarios.GetByID(ctx, id)
}

func (s *FuncionarioService) List(ctx context.Context, f FuncionarioFilters) ([]*model.Funcionario, error) {
	switch {
	case f.Cargo != "":
		return s.funcionarios.ListByCargo(ctx, NormalizeNome(f.Cargo))
	case f.Nome != "":
		return s.funcionarios.ListByNome(ctx, NormalizeNome(f.Nome))
	default:
		return s.funcionarios.ListAll(ctx)
	}
}

func (s *FuncionarioService) Update(ctx context.Context, id uint64, in FuncionarioInput) (*model.Funcionario, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	cpf, err := NormalizeCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	existing, err := s.funcionarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCPFLivre(ctx, cpf, id); err != nil {
		return nil, err
	}
	existing.Nome = in.Nome
	existing.CPF = cpf
	existing.Cargo = NormalizeNome(in.Cargo)
	existing.Setor = NormalizeNome(in.Setor)
	existing.Salario = in.Salario
	if err := s.funcionarios.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the staff record and its login account; it fails when
// a keeper or veterinarian still points at the record.
func (s *FuncionarioService) Delete(ctx context.Context, id uint64) error {
	return s.funcionarios.Delete(ctx, id)
}
