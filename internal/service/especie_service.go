package service

import (
	"context"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

type EspecieInput struct {
	Nome           string `json:"nome" validate:"required"`
	Descricao      string `json:"descricao"`
	NomeCientifico string `json:"nome_cientifico"`
	Familia        string `json:"familia"`
	Ordem          string `json:"ordem"`
	Classe         string `json:"classe"`
}

// EspecieFilters selects at most one listing filter; precedence is
// Nome, Familia, Ordem, Classe.
type EspecieFilters struct {
	Nome    string
	Familia string
	Ordem   string
	Classe  string
}

type EspecieService struct {
	especies EspecieRepository
}

func NewEspecieService(especies EspecieRepository) *EspecieService {
	return &EspecieService{especies: especies}
}

func (s *EspecieService) Create(ctx context.Context, in EspecieInput) (*model.Especie, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	dup, err := s.especies.ExistsOutroComNome(ctx, in.Nome, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	e := &model.Especie{
		Nome:           in.Nome,
		Descricao:      in.Descricao,
		NomeCientifico: NormalizeNome(in.NomeCientifico),
		Familia:        NormalizeNome(in.Familia),
		Ordem:          NormalizeNome(in.Ordem),
		Classe:         NormalizeNome(in.Classe),
	}
	if err := s.especies.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EspecieService) GetByID(ctx context.Context, id uint64) (*model.Especie, error) {
	return s.especies.GetByID(ctx, id)
}

func (s *EspecieService) List(ctx context.Context, f EspecieFilters) ([]*model.Especie, error) {
	switch {
	case f.Nome != "":
		return s.especies.ListByNome(ctx, NormalizeNome(f.Nome))
	case f.Familia != "":
		return s.especies.ListByFamilia(ctx, NormalizeNome(f.Familia))
	case f.Ordem != "":
		return s.especies.ListByOrdem(ctx, NormalizeNome(f.Ordem))
	case f.Classe != "":
		return s.especies.ListByClasse(ctx, NormalizeNome(f.Classe))
	default:
		return s.especies.ListAll(ctx)
	}
}

func (s *EspecieService) Update(ctx context.Context, id uint64, in EspecieInput) (*model.Especie, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.especies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dup, err := s.especies.ExistsOutroComNome(ctx, in.Nome, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	existing.Nome = in.Nome
	existing.Descricao = in.Descricao
	existing.NomeCientifico = NormalizeNome(in.NomeCientifico)
	existing.Familia = NormalizeNome(in.Familia)
	existing.Ordem = NormalizeNome(in.Ordem)
	existing.Classe = NormalizeNome(in.Classe)
	if err := s.especies.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses to remove a species still referenced by animals.
func (s *EspecieService) Delete(ctx context.Context, id uint64) error {
	refs, err := s.especies.CountAnimais(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return repository.ErrConflict
	}
	return s.especies.Delete(ctx, id)
}
