package service

import (
	"context"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

// HabitatInput carries the full habitat payload.  Updates take the same
// shape as creates: every field is required and re-validated.
type HabitatInput struct {
	Nome             string `json:"nome" validate:"required"`
	Tipo             string `json:"tipo" validate:"required"`
	CapacidadeAnimal int    `json:"capacidade_animal" validate:"required,gt=0"`
}

// HabitatFilters selects at most one listing filter; when several are
// set, Tipo wins over Nome.
type HabitatFilters struct {
	Tipo string
	Nome string
}

// HabitatService owns the habitat lifecycle: name uniqueness, capacity
// floor checks on update and occupancy checks on delete.
type HabitatService struct {
	habitats HabitatRepository
}

func NewHabitatService(habitats HabitatRepository) *HabitatService {
	return &HabitatService{habitats: habitats}
}

func (s *HabitatService) Create(ctx context.Context, in HabitatInput) (*model.Habitat, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Tipo = NormalizeNome(in.Tipo)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	dup, err := s.habitats.ExistsOutroComNome(ctx, in.Nome, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	h := &model.Habitat{
		Nome:             in.Nome,
		Tipo:             in.Tipo,
		CapacidadeAnimal: in.CapacidadeAnimal,
	}
	if err := s.habitats.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitatService) GetByID(ctx context.Context, id uint64) (*model.Habitat, error) {
	return s.habitats.GetByID(ctx, id)
}

func (s *HabitatService) List(ctx context.Context, f HabitatFilters) ([]*model.Habitat, error) {
	switch {
	case f.Tipo != "":
		return s.habitats.ListByTipo(ctx, NormalizeNome(f.Tipo))
	case f.Nome != "":
		return s.habitats.ListByNome(ctx, NormalizeNome(f.Nome))
	default:
		return s.habitats.ListAll(ctx)
	}
}

// Update merges the payload onto the stored habitat.  Shrinking the
// capacity below the current animal count is rejected; the repository
// repeats the check under a row lock before persisting.
func (s *HabitatService) Update(ctx context.Context, id uint64, in HabitatInput) (*model.Habitat, error) {
	in.Nome = NormalizeNome(in.Nome)
	in.Tipo = NormalizeNome(in.Tipo)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.habitats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dup, err := s.habitats.ExistsOutroComNome(ctx, in.Nome, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, repository.ErrDuplicateKey
	}
	ocupantes, err := s.habitats.CountAnimais(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckCapacityReduction(in.CapacidadeAnimal, ocupantes); err != nil {
		return nil, err
	}
	existing.Nome = in.Nome
	existing.Tipo = in.Tipo
	existing.CapacidadeAnimal = in.CapacidadeAnimal
	if err := s.habitats.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses to remove a habitat that still houses animals.
func (s *HabitatService) Delete(ctx context.Context, id uint64) error {
	ocupantes, err := s.habitats.CountAnimais(ctx, id)
	if err != nil {
		return err
	}
	if ocupantes > 0 {
		return repository.ErrConflict
	}
	return s.habitats.Delete(ctx, id)
}
