package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"zoo-api/internal/model"
)

// ErrVisitanteNotFound is returned when a visitor lookup fails.
var ErrVisitanteNotFound = errors.New("visitante not found")

// VisitanteRepo provides CRUD queries for visitors.  CPF is unique,
// stored digits-only.
type VisitanteRepo struct {
	db *sql.DB
}

func NewVisitanteRepo(db *sql.DB) *VisitanteRepo {
	return &VisitanteRepo{db: db}
}

const visitanteCols = "id, nome, cpf, data_nascimento, telefone, data_cadastro, user_id"

func scanVisitante(row interface{ Scan(...any) error }) (*model.Visitante, error) {
	var v model.Visitante
	err := row.Scan(&v.ID, &v.Nome, &v.CPF, &v.DataNascimento, &v.Telefone, &v.DataCadastro, &v.UserID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitanteRepo) Create(ctx context.Context, v *model.Visitante) error {
	const q = `INSERT INTO visitantes (nome, cpf, data_nascimento, telefone, data_cadastro, user_id)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Nome, v.CPF, v.DataNascimento, v.Telefone, v.DataCadastro, v.UserID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

func (r *VisitanteRepo) GetByID(ctx context.Context, id uint64) (*model.Visitante, error) {
	const q = "SELECT " + visitanteCols + " FROM visitantes WHERE id = ?"
	v, err := scanVisitante(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVisitanteNotFound
		}
		return nil, err
	}
	return v, nil
}

// GetManyByIDs loads every visitor in ids.  The result can be shorter
// than ids when some are unknown; callers compare lengths to detect it.
func (r *VisitanteRepo) GetManyByIDs(ctx context.Context, ids []uint64) ([]*model.Visitante, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := "SELECT " + visitanteCols + " FROM visitantes WHERE id IN ("
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			q += ","
		}
		q += "?"
		args = append(args, id)
	}
	q += ") ORDER BY id"
	return r.list(ctx, q, args...)
}

func (r *VisitanteRepo) ListAll(ctx context.Context) ([]*model.Visitante, error) {
	return r.list(ctx, "SELECT "+visitanteCols+" FROM visitantes ORDER BY id")
}

func (r *VisitanteRepo) ListByNome(ctx context.Context, nome string) ([]*model.Visitante, error) {
	const q = "SELECT " + visitanteCols + " FROM visitantes WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

// GetByCPF fetches a visitor by the digits-only CPF.
func (r *VisitanteRepo) GetByCPF(ctx context.Context, cpf string) (*model.Visitante, error) {
	const q = "SELECT " + visitanteCols + " FROM visitantes WHERE cpf = ?"
	v, err := scanVisitante(r.db.QueryRowContext(ctx, q, cpf))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVisitanteNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListByNascimento returns visitors born inside [inicio, fim].
func (r *VisitanteRepo) ListByNascimento(ctx context.Context, inicio, fim time.Time) ([]*model.Visitante, error) {
	const q = "SELECT " + visitanteCols + " FROM visitantes WHERE data_nascimento BETWEEN ? AND ? ORDER BY id"
	return r.list(ctx, q, inicio, fim)
}

func (r *VisitanteRepo) list(ctx context.Context, q string, args ...any) ([]*model.Visitante, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Visitante
	for rows.Next() {
		v, err := scanVisitante(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsOutroComCPF reports whether another visitor already holds the
// digits-only CPF.
func (r *VisitanteRepo) ExistsOutroComCPF(ctx context.Context, cpf string, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visitantes WHERE cpf = ? AND id <> ?",
		cpf, excludeID).Scan(&n)
	return n > 0, err
}

func (r *VisitanteRepo) Update(ctx context.Context, v *model.Visitante) error {
	const q = `UPDATE visitantes
	           SET nome = ?, cpf = ?, data_nascimento = ?, telefone = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Nome, v.CPF, v.DataNascimento, v.Telefone, v.ID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		scanErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM visitantes WHERE id = ?", v.ID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrVisitanteNotFound
		}
		return scanErr
	}
	return nil
}

// Delete removes a visitor and its linked credential record.  Blocked
// with ErrConflict while the visitor is enrolled in any evento.
func (r *VisitanteRepo) Delete(ctx context.Context, id uint64) (err error) {
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

	var userID sql.NullInt64
	if err = tx.QueryRowContext(ctx,
		"SELECT user_id FROM visitantes WHERE id = ? FOR UPDATE", id).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVisitanteNotFound
		}
		return err
	}
	var inscricoes int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM evento_visitantes WHERE visitante_id = ?", id).Scan(&inscricoes); err != nil {
		return err
	}
	if inscricoes > 0 {
		return ErrConflict
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM visitantes WHERE id = ?", id); err != nil {
		return err
	}
	if userID.Valid {
		err = deleteUserTx(ctx, tx, uint64(userID.Int64))
	}
	return err
}
