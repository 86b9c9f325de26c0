package service

import (
	"context"
	"errors"
	"time"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
	"zoo-api/internal/utils"
)

const dateLayout = "2006-01-02"

// VisitanteInput carries the visitor payload.  Registration opens a
// login account with the VISITANTE role, so Username and Password are
// required on create; updates ignore both.
type VisitanteInput struct {
	Nome           string `json:"nome" validate:"required"`
	CPF            string `json:"cpf" validate:"required"`
	DataNascimento string `json:"data_nascimento" validate:"required"`
	Telefone       string `json:"telefone"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// VisitanteFilters selects at most one listing filter; precedence is
// Nome, CPF, then the birth date range (both bounds required).
type VisitanteFilters struct {
	Nome          string
	CPF           string
	NascimentoDe  string
	NascimentoAte string
}

type VisitanteService struct {
	visitantes VisitanteRepository
	users      UserRepository
	notifier   Notifier
	bcryptCost int
}

func NewVisitanteService(visitantes VisitanteRepository, users UserRepository, notifier Notifier, bcryptCost int) *VisitanteService {
	return &VisitanteService{visitantes: visitantes, users: users, notifier: notifier, bcryptCost: bcryptCost}
}

func parseNascimento(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, invalid("data_nascimento deve ter o formato AAAA-MM-DD")
	}
	if !t.Before(time.Now()) {
		return time.Time{}, invalid("data_nascimento deve estar no passado")
	}
	return t, nil
}

// Register creates the visitor and its login account in one step.  The
// registration event is published after the commit; a broker failure is
// logged and never bubbles up.
func (s *VisitanteService) Register(ctx context.Context, in VisitanteInput) (*model.Visitante, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Username = NormalizeNome(in.Username)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	if in.Username == "" || len(in.Password) < 6 {
		return nil, invalid("username e password (mínimo 6 caracteres) são obrigatórios")
	}
	cpf, err := NormalizeCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	nascimento, err := parseNascimento(in.DataNascimento)
	if err != nil {
		return nil, err
	}
	dup, err := s.visitantes.ExistsOutroComCPF(ctx, cpf, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	userID, err := s.users.Create(ctx, in.Username, hash, []string{model.RoleVisitante})
	if err != nil {
		return nil, err
	}
	v := &model.Visitante{
		Nome:           in.Nome,
		CPF:            cpf,
		DataNascimento: nascimento,
		Telefone:       NormalizeNome(in.Telefone),
		DataCadastro:   time.Now(),
		UserID:         &userID,
	}
	if err := s.visitantes.Create(ctx, v); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.VisitanteRegistered(ctx, v)
	}
	return v, nil
}

func (s *VisitanteService) GetByID(ctx context.Context, id uint64) (*model.Visitante, error) {
	return s.visitantes.GetByID(ctx, id)
}

func (s *VisitanteService) List(ctx context.Context, f VisitanteFilters) ([]*model.Visitante, error) {
	switch {
	case f.Nome != "":
		return s.visitantes.ListByNome(ctx, NormalizeNome(f.Nome))
	case f.CPF != "":
		cpf, err := NormalizeCPF(f.CPF)
		if err != nil {
			return nil, err
		}
		v, err := s.visitantes.GetByCPF(ctx, cpf)
		if err != nil {
			if errors.Is(err, repository.ErrVisitanteNotFound) {
				return []*model.Visitante{}, nil
			}
			return nil, err
		}
		return []*model.Visitante{v}, nil
	case f.NascimentoDe != "" && f.NascimentoAte != "":
		inicio, err := time.Parse(dateLayout, f.NascimentoDe)
		if err != nil {
			return nil, invalid("nascimento_de deve ter o formato AAAA-MM-DD")
		}
		fim, err := time.Parse(dateLayout, f.NascimentoAte)
		if err != nil {
			return nil, invalid("nascimento_ate deve ter o formato AAAA-MM-DD")
		}
		return s.visitantes.ListByNascimento(ctx, inicio, fim)
	default:
		return s.visitantes.ListAll(ctx)
	}
}

func (s *VisitanteService) Update(ctx context.Context, id uint64, in VisitanteInput) (*model.Visitante, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	cpf, err := NormalizeCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	nascimento, err := parseNascimento(in.DataNascimento)
	if err != nil {
		return nil, err
	}
	existing, err := s.visitantes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dup, err := s.visitantes.ExistsOutroComCPF(ctx, cpf, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	existing.Nome = in.Nome
	existing.CPF = cpf
	existing.DataNascimento = nascimento
	existing.Telefone = NormalizeNome(in.Telefone)
	if err := s.visitantes.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the visitor and its login account; it fails when the
// visitor is still enrolled in events.
func (s *VisitanteService) Delete(ctx context.Context, id uint64) error {
	return s.visitantes.Delete(ctx, id)
}
