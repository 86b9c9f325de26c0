package service

import (
	"context"

	"zoo-api/internal/model"
)

type AnimalInput struct {
	Nome       string `json:"nome" validate:"required"`
	Idade      int    `json:"idade" validate:"gte=0"`
	HabitatID  uint64 `json:"habitat_id" validate:"required"`
	EspecieID  uint64 `json:"especie_id" validate:"required"`
	CuidadorID uint64 `json:"cuidador_id" validate:"required"`
}

// AnimalFilters selects at most one listing filter; the age range wins
// over Nome, which wins over Especie.  The range only applies when both
// bounds are present.
type AnimalFilters struct {
	IdadeMin *int
	IdadeMax *int
	Nome     string
	Especie  string
}

// AnimalService resolves the habitat, species and keeper references and
// enforces habitat capacity before admitting an animal.
type AnimalService struct {
	animais    AnimalRepository
	habitats   HabitatRepository
	especies   EspecieRepository
	cuidadores CuidadorRepository
}

func NewAnimalService(animais AnimalRepository, habitats HabitatRepository, especies EspecieRepository, cuidadores CuidadorRepository) *AnimalService {
	return &AnimalService{animais: animais, habitats: habitats, especies: especies, cuidadores: cuidadores}
}

// resolveRefs loads every referenced entity so a dangling id surfaces
// as the matching not-found error instead of a bare FK failure.
func (s *AnimalService) resolveRefs(ctx context.Context, in AnimalInput) (*model.Habitat, error) {
	if _, err := s.especies.GetByID(ctx, in.EspecieID); err != nil {
		return nil, err
	}
	if _, err := s.cuidadores.GetByID(ctx, in.CuidadorID); err != nil {
		return nil, err
	}
	return s.habitats.GetByID(ctx, in.HabitatID)
}

func (s *AnimalService) Create(ctx context.Context, in AnimalInput) (*model.Animal, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	habitat, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}
	ocupantes, err := s.habitats.CountAnimais(ctx, habitat.ID)
	if err != nil {
		return nil, err
	}
	if err := CheckHabitatCapacity(habitat.CapacidadeAnimal, ocupantes); err != nil {
		return nil, err
	}
	a := &model.Animal{
		Nome:       in.Nome,
		Idade:      in.Idade,
		HabitatID:  in.HabitatID,
		EspecieID:  in.EspecieID,
		CuidadorID: in.CuidadorID,
	}
	if err := s.animais.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnimalService) GetByID(ctx context.Context, id uint64) (*model.Animal, error) {
	return s.animais.GetByID(ctx, id)
}

func (s *AnimalService) List(ctx context.Context, f AnimalFilters) ([]*model.Animal, error) {
	switch {
	case f.IdadeMin != nil && f.IdadeMax != nil:
		return s.animais.ListByIdade(ctx, *f.IdadeMin, *f.IdadeMax)
	case f.Nome != "":
		return s.animais.ListByNome(ctx, NormalizeNome(f.Nome))
	case f.Especie != "":
		return s.animais.ListByEspecieNome(ctx, NormalizeNome(f.Especie))
	default:
		return s.animais.ListAll(ctx)
	}
}

// Update merges the payload onto the stored animal.  When the animal
// moves to another habitat the destination's capacity is checked first;
// the repository repeats the check under a row lock.
func (s *AnimalService) Update(ctx context.Context, id uint64, in AnimalInput) (*model.Animal, error) {
	in.Nome = NormalizeNome(in.Nome)
	if err := checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.animais.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	habitat, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.HabitatID != existing.HabitatID {
		ocupantes, err := s.habitats.CountAnimais(ctx, habitat.ID)
		if err != nil {
			return nil, err
		}
		if err := CheckHabitatCapacity(habitat.CapacidadeAnimal, ocupantes); err != nil {
			return nil, err
		}
	}
	existing.Nome = in.Nome
	existing.Idade = in.Idade
	existing.HabitatID = in.HabitatID
	existing.EspecieID = in.EspecieID
	existing.CuidadorID = in.CuidadorID
	if err := s.animais.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the animal together with its feeding records.
func (s *AnimalService) Delete(ctx context.Context, id uint64) error {
	return s.animais.Delete(ctx, id)
}
