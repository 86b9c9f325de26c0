package service

import (
	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

// The guards below are the pure form of the capacity and uniqueness
// rules.  Services run them before touching the database so callers
// get a precise error without burning a transaction; the repositories
// re-check the same conditions under row locks, so a guard passing
// here is never the final word.

// CheckHabitatCapacity fails when the habitat already holds as many
// animals as it can take.
func CheckHabitatCapacity(capacidade, ocupantes int) error {
	if ocupantes >= capacidade {
		return repository.ErrCapacityExceeded
	}
	return nil
}

// CheckCapacityReduction fails when a habitat or event capacity would
// shrink below its current occupancy.
func CheckCapacityReduction(novaCapacidade, ocupantes int) error {
	if novaCapacidade < ocupantes {
		return repository.ErrConflict
	}
	return nil
}

// CheckEventCapacity fails when the event is already full.
func CheckEventCapacity(capacidade, inscritos int) error {
	if inscritos >= capacidade {
		return repository.ErrCapacityExceeded
	}
	return nil
}

// CheckNoDuplicateEnrollment fails when the visitor already appears in
// the enrollment list.
func CheckNoDuplicateEnrollment(inscritos []uint64, visitanteID uint64) error {
	for _, id := range inscritos {
		if id == visitanteID {
			return repository.ErrConflict
		}
	}
	return nil
}

// CheckNoDuplicateFeedingType fails when the animal already has a
// feeding record with the same (case-insensitive) food type.  excludeID
// skips the record being updated.
func CheckNoDuplicateFeedingType(existentes []*model.Alimentacao, tipo string, excludeID uint64) error {
	for _, a := range existentes {
		if a.ID != excludeID && SameNome(a.TipoComida, tipo) {
			return repository.ErrConflict
		}
	}
	return nil
}
