package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrCuidadorNotFound is returned when a caretaker lookup fails.
var ErrCuidadorNotFound = errors.New("cuidador not found")

// CuidadorRepo provides CRUD queries for caretakers.
type CuidadorRepo struct {
	db *sql.DB
}

func NewCuidadorRepo(db *sql.DB) *CuidadorRepo {
	return &CuidadorRepo{db: db}
}

const cuidadorCols = "id, nome, especialidade, turno, email, funcionario_id"

func scanCuidador(row interface{ Scan(...any) error }) (*model.Cuidador, error) {
	var c model.Cuidador
	err := row.Scan(&c.ID, &c.Nome, &c.Especialidade, &c.Turno, &c.Email, &c.FuncionarioID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CuidadorRepo) Create(ctx context.Context, c *model.Cuidador) error {
	const q = "INSERT INTO cuidadores (nome, especialidade, turno, email, funcionario_id) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, c.Nome, c.Especialidade, c.Turno, c.Email, c.FuncionarioID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

func (r *CuidadorRepo) GetByID(ctx context.Context, id uint64) (*model.Cuidador, error) {
	const q = "SELECT " + cuidadorCols + " FROM cuidadores WHERE id = ?"
	c, err := scanCuidador(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCuidadorNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CuidadorRepo) ListAll(ctx context.Context) ([]*model.Cuidador, error) {
	return r.list(ctx, "SELECT "+cuidadorCols+" FROM cuidadores ORDER BY id")
}

func (r *CuidadorRepo) ListByEspecialidade(ctx context.Context, especialidade string) ([]*model.Cuidador, error) {
	const q = "SELECT " + cuidadorCols + " FROM cuidadores WHERE LOWER(especialidade) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, especialidade)
}

func (r *CuidadorRepo) ListByTurno(ctx context.Context, turno string) ([]*model.Cuidador, error) {
	const q = "SELECT " + cuidadorCols + " FROM cuidadores WHERE LOWER(turno) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, turno)
}

func (r *CuidadorRepo) ListByNome(ctx context.Context, nome string) ([]*model.Cuidador, error) {
	const q = "SELECT " + cuidadorCols + " FROM cuidadores WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

func (r *CuidadorRepo) list(ctx context.Context, q string, args ...any) ([]*model.Cuidador, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cuidador
	for rows.Next() {
		c, err := scanCuidador(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAnimais returns how many animals the caretaker is responsible for.
func (r *CuidadorRepo) CountAnimais(ctx context.Context, cuidadorID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE cuidador_id = ?", cuidadorID).Scan(&n)
	return n, err
}

func (r *CuidadorRepo) Update(ctx context.Context, c *model.Cuidador) error {
	const q = `UPDATE cuidadores
	           SET nome = ?, especialidade = ?, turno = ?, email = ?, funcionario_id = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Nome, c.Especialidade, c.Turno, c.Email, c.FuncionarioID, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		scanErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM cuidadores WHERE id = ?", c.ID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrCuidadorNotFound
		}
		return scanErr
	}
	return nil
}

// Delete removes a caretaker.  Blocked with ErrConflict while animals
// are still assigned; check and delete share one transaction.
func (r *CuidadorRepo) Delete(ctx context.Context, id uint64) (err error) {
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
		"SELECT 1 FROM cuidadores WHERE id = ? FOR UPDATE", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCuidadorNotFound
		}
		return err
	}
	var responsaveis int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM animais WHERE cuidador_id = ?", id).Scan(&responsaveis); err != nil {
		return err
	}
	if responsaveis > 0 {
		return ErrConflict
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM cuidadores WHERE id = ?", id)
	return err
}
