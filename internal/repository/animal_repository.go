package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrAnimalNotFound is returned when an animal cannot be found.
var ErrAnimalNotFound = errors.New("animal not found")

// AnimalRepo provides CRUD queries for animals.  Inserts and habitat
// moves lock the target habitat row and re-count occupants inside the
// same transaction, so the occupancy <= capacity invariant holds even
// when two requests race for the last slot.
type AnimalRepo struct {
	db *sql.DB
}

func NewAnimalRepo(db *sql.DB) *AnimalRepo {
	return &AnimalRepo{db: db}
}

const animalCols = "id, nome, idade, habitat_id, especie_id, cuidador_id"

func scanAnimal(row interface{ Scan(...any) error }) (*model.Animal, error) {
	var a model.Animal
	err := row.Scan(&a.ID, &a.Nome, &a.Idade, &a.HabitatID, &a.EspecieID, &a.CuidadorID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// lockHabitatCapacity locks the habitat row for the duration of the
// transaction and returns its capacity.
func lockHabitatCapacity(ctx context.Context, tx *sql.Tx, habitatID uint64) (int, error) {
	var cap int
	err := tx.QueryRowContext(ctx,
		"SELECT capacidade_animal FROM habitats WHERE id = ? FOR UPDATE", habitatID).Scan(&cap)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrHabitatNotFound
	}
	return cap, err
}

// Create inserts a new animal after verifying, under lock, that its
// habitat still has a free slot.  Returns ErrCapacityExceeded when full.
func (r *AnimalRepo) Create(ctx context.Context, a *model.Animal) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	capacidade, err := lockHabitatCapacity(ctx, tx, a.HabitatID)
	if err != nil {
		return err
	}
	var ocupantes int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE habitat_id = ?", a.HabitatID).Scan(&ocupantes); err != nil {
		return err
	}
	if ocupantes >= capacidade {
		return ErrCapacityExceeded
	}

	const q = "INSERT INTO animais (nome, idade, habitat_id, especie_id, cuidador_id) VALUES (?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q, a.Nome, a.Idade, a.HabitatID, a.EspecieID, a.CuidadorID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id uint64) (*model.Animal, error) {
	const q = "SELECT " + animalCols + " FROM animais WHERE id = ?"
	a, err := scanAnimal(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AnimalRepo) ListAll(ctx context.Context) ([]*model.Animal, error) {
	return r.list(ctx, "SELECT "+animalCols+" FROM animais ORDER BY id")
}

// ListByIdade returns animals whose age falls in [min, max].
func (r *AnimalRepo) ListByIdade(ctx context.Context, min, max int) ([]*model.Animal, error) {
	const q = "SELECT " + animalCols + " FROM animais WHERE idade BETWEEN ? AND ? ORDER BY id"
	return r.list(ctx, q, min, max)
}

func (r *AnimalRepo) ListByNome(ctx context.Context, nome string) ([]*model.Animal, error) {
	const q = "SELECT " + animalCols + " FROM animais WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

// ListByEspecieNome returns animals whose species name matches exactly
// (case-insensitive).
func (r *AnimalRepo) ListByEspecieNome(ctx context.Context, especie string) ([]*model.Animal, error) {
	const q = `SELECT a.id, a.nome, a.idade, a.habitat_id, a.especie_id, a.cuidador_id
	           FROM animais a
	           JOIN especies e ON e.id = a.especie_id
	           WHERE LOWER(e.nome) = LOWER(?)
	           ORDER BY a.id`
	return r.list(ctx, q, especie)
}

func (r *AnimalRepo) list(ctx context.Context, q string, args ...any) ([]*model.Animal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update merges new values onto an existing animal.  When the habitat
// changes the destination is locked and re-counted, excluding the animal
// itself so it is not double-counted while moving.
func (r *AnimalRepo) Update(ctx context.Context, a *model.Animal) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	capacidade, err := lockHabitatCapacity(ctx, tx, a.HabitatID)
	if err != nil {
		return err
	}
	var ocupantes int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE habitat_id = ? AND id <> ?",
		a.HabitatID, a.ID).Scan(&ocupantes); err != nil {
		return err
	}
	if ocupantes >= capacidade {
		return ErrCapacityExceeded
	}

	const q = `UPDATE animais
	           SET nome = ?, idade = ?, habitat_id = ?, especie_id = ?, cuidador_id = ?
	           WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, a.Nome, a.Idade, a.HabitatID, a.EspecieID, a.CuidadorID, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 for a no-change update, so confirm the
		// row is really gone before reporting not found.
		var exists int
		if scanErr := tx.QueryRowContext(ctx,
			"SELECT 1 FROM animais WHERE id = ?", a.ID).Scan(&exists); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrAnimalNotFound
			}
			return scanErr
		}
	}
	return nil
}

// Delete removes an animal and cascades to its feeding records, which it
// strictly owns.
func (r *AnimalRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM alimentacoes WHERE animal_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM animais WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAnimalNotFound
	}
	return nil
}
