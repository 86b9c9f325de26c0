package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrEspecieNotFound is returned when a species lookup fails.
var ErrEspecieNotFound = errors.New("especie not found")

// EspecieRepo provides CRUD and lookup queries for species.
type EspecieRepo struct {
	db *sql.DB
}

func NewEspecieRepo(db *sql.DB) *EspecieRepo {
	return &EspecieRepo{db: db}
}

const especieCols = "id, nome, descricao, nome_cientifico, familia, ordem, classe"

func scanEspecie(row interface{ Scan(...any) error }) (*model.Especie, error) {
	var e model.Especie
	err := row.Scan(&e.ID, &e.Nome, &e.Descricao, &e.NomeCientifico, &e.Familia, &e.Ordem, &e.Classe)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new species.  The unique nome constraint surfaces as
// ErrDuplicateKey.
func (r *EspecieRepo) Create(ctx context.Context, e *model.Especie) error {
	const q = `INSERT INTO especies (nome, descricao, nome_cientifico, familia, ordem, classe)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.Nome, e.Descricao, e.NomeCientifico, e.Familia, e.Ordem, e.Classe)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

func (r *EspecieRepo) GetByID(ctx context.Context, id uint64) (*model.Especie, error) {
	const q = "SELECT " + especieCols + " FROM especies WHERE id = ?"
	e, err := scanEspecie(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEspecieNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EspecieRepo) ListAll(ctx context.Context) ([]*model.Especie, error) {
	return r.list(ctx, "SELECT "+especieCols+" FROM especies ORDER BY id")
}

// ListByNome matches species names by substring, case-insensitively.
func (r *EspecieRepo) ListByNome(ctx context.Context, nome string) ([]*model.Especie, error) {
	const q = "SELECT " + especieCols + " FROM especies WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

func (r *EspecieRepo) ListByFamilia(ctx context.Context, familia string) ([]*model.Especie, error) {
	const q = "SELECT " + especieCols + " FROM especies WHERE LOWER(familia) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, familia)
}

func (r *EspecieRepo) ListByOrdem(ctx context.Context, ordem string) ([]*model.Especie, error) {
	const q = "SELECT " + especieCols + " FROM especies WHERE LOWER(ordem) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, ordem)
}

func (r *EspecieRepo) ListByClasse(ctx context.Context, classe string) ([]*model.Especie, error) {
	const q = "SELECT " + especieCols + " FROM especies WHERE LOWER(classe) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, classe)
}

func (r *EspecieRepo) list(ctx context.Context, q string, args ...any) ([]*model.Especie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Especie
	for rows.Next() {
		e, err := scanEspecie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAnimais returns how many animals reference the species.
func (r *EspecieRepo) CountAnimais(ctx context.Context, especieID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE especie_id = ?", especieID).Scan(&n)
	return n, err
}

// ExistsOutroComNome reports whether another species already holds the
// normalized name.
func (r *EspecieRepo) ExistsOutroComNome(ctx context.Context, nome string, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM especies WHERE LOWER(nome) = LOWER(?) AND id <> ?",
		nome, excludeID).Scan(&n)
	return n > 0, err
}

// Update merges new values onto an existing species row.
func (r *EspecieRepo) Update(ctx context.Context, e *model.Especie) error {
	const q = `UPDATE especies
	           SET nome = ?, descricao = ?, nome_cientifico = ?, familia = ?, ordem = ?, classe = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, e.Nome, e.Descricao, e.NomeCientifico, e.Familia, e.Ordem, e.Classe, e.ID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEspecieNotFound
	}
	return nil
}

// Delete removes a species unless animals still reference it.
func (r *EspecieRepo) Delete(ctx context.Context, id uint64) (err error) {
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
		"SELECT 1 FROM especies WHERE id = ? FOR UPDATE", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEspecieNotFound
		}
		return err
	}
	var referenciada int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE especie_id = ?", id).Scan(&referenciada); err != nil {
		return err
	}
	if referenciada > 0 {
		return ErrConflict
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM especies WHERE id = ?", id)
	return err
}
