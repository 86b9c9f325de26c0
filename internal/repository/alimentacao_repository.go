package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrAlimentacaoNotFound is returned when a feeding record lookup fails.
var ErrAlimentacaoNotFound = errors.New("alimentacao not found")

// AlimentacaoRepo provides CRUD queries for feeding records.  The unique
// (animal_id, tipo_comida) constraint keeps an animal from having two
// plans for the same food; a violation surfaces as ErrConflict.
type AlimentacaoRepo struct {
	db *sql.DB
}

func NewAlimentacaoRepo(db *sql.DB) *AlimentacaoRepo {
	return &AlimentacaoRepo{db: db}
}

const alimentacaoCols = "id, tipo_comida, quantidade_diaria, animal_id"

func scanAlimentacao(row interface{ Scan(...any) error }) (*model.Alimentacao, error) {
	var a model.Alimentacao
	err := row.Scan(&a.ID, &a.TipoComida, &a.QuantidadeDiaria, &a.AnimalID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a feeding record.  A duplicate food type for the same
// animal is reported as ErrConflict.
func (r *AlimentacaoRepo) Create(ctx context.Context, a *model.Alimentacao) error {
	const q = "INSERT INTO alimentacoes (tipo_comida, quantidade_diaria, animal_id) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, a.TipoComida, a.QuantidadeDiaria, a.AnimalID)
	if err != nil {
		return asDuplicate(err, ErrConflict)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

func (r *AlimentacaoRepo) GetByID(ctx context.Context, id uint64) (*model.Alimentacao, error) {
	const q = "SELECT " + alimentacaoCols + " FROM alimentacoes WHERE id = ?"
	a, err := scanAlimentacao(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlimentacaoNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AlimentacaoRepo) ListAll(ctx context.Context) ([]*model.Alimentacao, error) {
	return r.list(ctx, "SELECT "+alimentacaoCols+" FROM alimentacoes ORDER BY id")
}

func (r *AlimentacaoRepo) ListByTipoComida(ctx context.Context, tipo string) ([]*model.Alimentacao, error) {
	const q = "SELECT " + alimentacaoCols + " FROM alimentacoes WHERE LOWER(tipo_comida) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, tipo)
}

func (r *AlimentacaoRepo) ListByAnimal(ctx context.Context, animalID uint64) ([]*model.Alimentacao, error) {
	const q = "SELECT " + alimentacaoCols + " FROM alimentacoes WHERE animal_id = ? ORDER BY id"
	return r.list(ctx, q, animalID)
}

func (r *AlimentacaoRepo) list(ctx context.Context, q string, args ...any) ([]*model.Alimentacao, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Alimentacao
	for rows.Next() {
		a, err := scanAlimentacao(rows)
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

// Update merges new values onto an existing feeding record.
func (r *AlimentacaoRepo) Update(ctx context.Context, a *model.Alimentacao) error {
	const q = "UPDATE alimentacoes SET tipo_comida = ?, quantidade_diaria = ?, animal_id = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, a.TipoComida, a.QuantidadeDiaria, a.AnimalID, a.ID)
	if err != nil {
		return asDuplicate(err, ErrConflict)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		scanErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM alimentacoes WHERE id = ?", a.ID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrAlimentacaoNotFound
		}
		return scanErr
	}
	return nil
}

func (r *AlimentacaoRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM alimentacoes WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlimentacaoNotFound
	}
	return nil
}
