package service

import (
	"context"

	"zoo-api/internal/model"
)

type AlimentacaoInput struct {
	TipoComida       string  `json:"tipo_comida" validate:"required"`
	QuantidadeDiaria float64 `json:"quantidade_diaria" validate:"required,gt=0"`
	AnimalID         uint64  `json:"animal_id" validate:"required"`
}

// AlimentacaoFilters selects at most one listing filter; TipoComida
// wins over AnimalID.
type AlimentacaoFilters struct {
	TipoComida string
	AnimalID   uint64
}

// AlimentacaoService keeps each animal's feeding plan free of duplicate
// food types.
type AlimentacaoService struct {
	alimentacoes AlimentacaoRepository
	animais      AnimalRepository
}

func NewAlimentacaoService(alimentacoes AlimentacaoRepository, animais AnimalRepository) *AlimentacaoService {
	return &AlimentacaoService{alimentacoes: alimentacoes, animais: animais}
}

// checkTipoLivre loads the animal's existing records and rejects a
// repeated (case-insensitive) food type.  The UNIQUE(animal_id,
// tipo_comida) index is the final arbiter on commit.
func (s *AlimentacaoService) checkTipoLivre(ctx context.Context, animalID uint64, tipo string, excludeID uint64) error {
	existentes, err := s.alimentacoes.ListByAnimal(ctx, animalID)
	if err != nil {
		return err
	}
	return CheckNoDuplicateFeedingType(existentes, tipo, excludeID)
}

func (s *AlimentacaoService) Create(ctx context.Context, in AlimentacaoInput) (*model.Alimentacao, error) {
	in.TipoComida = NormalizeNome(in.TipoComida)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	if _, err := s.animais.GetByID(ctx, in.AnimalID); err != nil {
		return nil, err
	}
	if err := s.checkTipoLivre(ctx, in.AnimalID, in.TipoComida, 0); err != nil {
		return nil, err
	}
	a := &model.Alimentacao{
		TipoComida:       in.TipoComida,
		QuantidadeDiaria: in.QuantidadeDiaria,
		AnimalID:         in.AnimalID,
	}
	if err := s.alimentacoes.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AlimentacaoService) GetByID(ctx context.Context, id uint64) (*model.Alimentacao, error) {
	return s.alimentacoes.GetByID(ctx, id)
}

func (s *AlimentacaoService) List(ctx context.Context, f AlimentacaoFilters) ([]*model.Alimentacao, error) {
	switch {
	case f.TipoComida != "":
		return s.alimentacoes.ListByTipoComida(ctx, NormalizeNome(f.TipoComida))
	case f.AnimalID != 0:
		return s.alimentacoes.ListByAnimal(ctx, f.AnimalID)
	default:
		return s.alimentacoes.ListAll(ctx)
	}
}

func (s *AlimentacaoService) Update(ctx context.Context, id uint64, in AlimentacaoInput) (*model.Alimentacao, error) {
	in.TipoComida = NormalizeNome(in.TipoComida)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.alimentacoes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.animais.GetByID(ctx, in.AnimalID); err != nil {
		return nil, err
	}
	if err := s.checkTipoLivre(ctx, in.AnimalID, in.TipoComida, id); err != nil {
		return nil, err
	}
	existing.TipoComida = in.TipoComida
	existing.QuantidadeDiaria = in.QuantidadeDiaria
	existing.AnimalID = in.AnimalID
	if err := s.alimentacoes.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *AlimentacaoService) Delete(ctx context.Context, id uint64) error {
	return s.alimentacoes.Delete(ctx, id)
}
