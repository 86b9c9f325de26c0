package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrHabitatNotFound is returned when a habitat cannot be found.
var ErrHabitatNotFound = errors.New("habitat not found")

// HabitatRepo encapsulates all database queries related to habitats.
type HabitatRepo struct {
	db *sql.DB
}

// NewHabitatRepo constructs a HabitatRepo with the provided DB handle.
func NewHabitatRepo(db *sql.DB) *HabitatRepo {
	return &HabitatRepo{db: db}
}

const habitatCols = "id, nome, tipo, capacidade_animal, created_at, updated_at"

func scanHabitat(row interface{ Scan(...any) error }) (*model.Habitat, error) {
	var h model.Habitat
	err := row.Scan(&h.ID, &h.Nome, &h.Tipo, &h.CapacidadeAnimal, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a new habitat.  On success the ID and timestamp fields
// are populated from the stored row.  A name collision surfaces as
// ErrDuplicateKey via the unique constraint.
func (r *HabitatRepo) Create(ctx context.Context, h *model.Habitat) error {
	const qInsert = "INSERT INTO habitats (nome, tipo, capacidade_animal) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, h.Nome, h.Tipo, h.CapacidadeAnimal)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	const qSelect = "SELECT " + habitatCols + " FROM habitats WHERE id = ?"
	stored, err := scanHabitat(r.db.QueryRowContext(ctx, qSelect, h.ID))
	if err != nil {
		return err
	}
	*h = *stored
	return nil
}

// GetByID fetches a habitat by id, returning ErrHabitatNotFound when no
// row exists.
func (r *HabitatRepo) GetByID(ctx context.Context, id uint64) (*model.Habitat, error) {
	const q = "SELECT " + habitatCols + " FROM habitats WHERE id = ?"
	h, err := scanHabitat(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}
	return h, nil
}

// ListAll returns every habitat ordered by id.
func (r *HabitatRepo) ListAll(ctx context.Context) ([]*model.Habitat, error) {
	const q = "SELECT " + habitatCols + " FROM habitats ORDER BY id"
	return r.list(ctx, q)
}

// ListByTipo returns habitats of the given type (exact, case-insensitive).
func (r *HabitatRepo) ListByTipo(ctx context.Context, tipo string) ([]*model.Habitat, error) {
	const q = "SELECT " + habitatCols + " FROM habitats WHERE LOWER(tipo) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, tipo)
}

// ListByNome returns habitats whose name contains the given substring.
func (r *HabitatRepo) ListByNome(ctx context.Context, nome string) ([]*model.Habitat, error) {
	const q = "SELECT " + habitatCols + " FROM habitats WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

func (r *HabitatRepo) list(ctx context.Context, q string, args ...any) ([]*model.Habitat, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Habitat
	for rows.Next() {
		h, err := scanHabitat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAnimais returns the current occupant count of a habitat.
func (r *HabitatRepo) CountAnimais(ctx context.Context, habitatID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE habitat_id = ?", habitatID).Scan(&n)
	return n, err
}

// ExistsOutroComNome reports whether a different habitat already holds
// the (case-insensitive, trimmed) name.  excludeID is 0 on create.
func (r *HabitatRepo) ExistsOutroComNome(ctx context.Context, nome string, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM habitats WHERE LOWER(nome) = LOWER(?) AND id <> ?",
		nome, excludeID).Scan(&n)
	return n > 0, err
}

// Update persists new field values onto an existing habitat.  The update
// runs in a transaction that locks the row and re-counts occupants so a
// capacity reduction below the current occupancy fails with ErrConflict
// even under concurrent animal moves.
func (r *HabitatRepo) Update(ctx context.Context, h *model.Habitat) (err error) {
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

	var current int
	if err = tx.QueryRowContext(ctx,
		"SELECT capacidade_animal FROM habitats WHERE id = ? FOR UPDATE", h.ID).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrHabitatNotFound
		}
		return err
	}
	var ocupantes int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE habitat_id = ?", h.ID).Scan(&ocupantes); err != nil {
		return err
	}
	if h.CapacidadeAnimal < ocupantes {
		return ErrConflict
	}

	const q = `UPDATE habitats
	           SET nome = ?, tipo = ?, capacidade_animal = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err = tx.ExecContext(ctx, q, h.Nome, h.Tipo, h.CapacidadeAnimal, h.ID); err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	return nil
}

// Delete removes a habitat.  The delete is blocked with ErrConflict while
// any animal still lives in it; the check and the delete share one
// transaction so a concurrent move-in cannot slip past the guard.
func (r *HabitatRepo) Delete(ctx context.Context, id uint64) (err error) {
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

	var exists int
	if err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM habitats WHERE id = ? FOR UPDATE", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrHabitatNotFound
		}
		return err
	}
	var ocupantes int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE habitat_id = ?", id).Scan(&ocupantes); err != nil {
		return err
	}
	if ocupantes > 0 {
		return ErrConflict
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM habitats WHERE id = ?", id)
	return err
}
